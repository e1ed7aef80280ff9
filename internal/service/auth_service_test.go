package service

import (
	"testing"

	"github.com/proctorview/proctorview/config"
	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/auth"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T) *auth.JWTManager {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "testsecret"
	cfg.Auth.TokenTTL = 1
	tokens, err := auth.NewJWTManager(cfg)
	require.NoError(t, err)
	return tokens
}

func TestRegisterOnceThenConflict(t *testing.T) {
	db := newTestDB(t)
	tokens := newTestTokens(t)
	svc := NewAuthService(repository.NewAdminRepository(db), tokens)

	resp, err := svc.Register(ctx(), dto.SignupDTO{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)
	assert.Equal(t, "registered successful", resp.Message)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Register(ctx(), dto.SignupDTO{Name: "A2", Email: "a@x.com", Password: "other1"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLoginReturnsTokenBoundToAdmin(t *testing.T) {
	db := newTestDB(t)
	tokens := newTestTokens(t)
	svc := NewAuthService(repository.NewAdminRepository(db), tokens)

	_, err := svc.Register(ctx(), dto.SignupDTO{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx(), dto.LoginDTO{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Message)
	assert.Equal(t, "a@x.com", resp.Admin.Email)
	assert.NotZero(t, resp.Admin.ID)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, claims.AdminID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewAdminRepository(db), newTestTokens(t))

	_, err := svc.Register(ctx(), dto.SignupDTO{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx(), dto.LoginDTO{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx(), dto.LoginDTO{Email: "missing@x.com", Password: "p1secret"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLoginNeverExposesHash(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewAdminRepository(db), newTestTokens(t))

	_, err := svc.Register(ctx(), dto.SignupDTO{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx(), dto.LoginDTO{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)
	// The profile projection carries id, name, email and nothing else; the
	// stored hash must differ from the plaintext in any case.
	assert.Equal(t, dto.AdminSummaryDTO{ID: resp.Admin.ID, Name: "A", Email: "a@x.com"}, resp.Admin)
}
