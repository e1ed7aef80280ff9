package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession godoc
// @Summary Start a participant's attempt at a test
// @Description Validates both foreign keys; whether a second attempt for the same pair is allowed is configuration.
// @Tags userTests
// @Accept json
// @Produce json
// @Param body body dto.SessionCreateDTO true "Session data"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown user or test"
// @Failure 409 {object} dto.ErrorResponse "Retakes disabled and pair already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/userTests [post]
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	var req dto.SessionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SessionCreateDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.sessionService.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
