package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/proctorview/proctorview/config"
)

// AdminClaims is what a verified token proves about the caller.
type AdminClaims struct {
	AdminID uint
	Email   string
}

// JWTManager signs and verifies admin tokens. The secret and TTL come from
// configuration at construction; nothing here is package-global.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(cfg *config.Config) (*JWTManager, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return &JWTManager{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    time.Duration(cfg.Auth.TokenTTL) * time.Hour,
	}, nil
}

// Generate issues an HS256 token bound to the admin's id and email.
func (m *JWTManager) Generate(adminID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"email":    email,
		"exp":      time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning the claims it encodes.
func (m *JWTManager) Verify(tokenString string) (*AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	adminIDFloat, ok := claims["admin_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid admin id in token claims")
	}
	email, _ := claims["email"].(string)

	return &AdminClaims{AdminID: uint(adminIDFloat), Email: email}, nil
}
