package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register an admin account
// @Description Creates an admin, stores a salted password hash and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignupDTO true "Admin registration data"
// @Success 200 {object} dto.SignupResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SignupDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.authService.Register(c.Request.Context(), req)
	if err != nil {
		// The dashboard frontend expects a 400 on duplicate email, not 409.
		if errors.Is(err, apperror.ErrConflict) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "conflict", Error: "User already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Authenticate an admin
// @Description Verifies credentials and returns a token plus the admin's public profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDTO true "Login credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Unknown account or wrong password"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind LoginDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		// Both the missing account and the failed hash comparison surface
		// as 401 so the response does not leak which one happened.
		if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: "unauthorized", Error: "Invalid email or password"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
