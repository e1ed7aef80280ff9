package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
)

type ActivityController struct {
	activityService service.ActivityService
}

func NewActivityController(activityService service.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// CreateActivity godoc
// @Summary Record a flagged event against a session
// @Description time_issue is parsed server-side; an unparsable value is a 400.
// @Tags activities
// @Accept json
// @Produce json
// @Param body body dto.ActivityCreateDTO true "Activity data"
// @Success 200 {object} dto.ActivityResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unparsable time_issue"
// @Failure 404 {object} dto.ErrorResponse "Unknown session"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities [post]
func (ctrl *ActivityController) CreateActivity(c *gin.Context) {
	var req dto.ActivityCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ActivityCreateDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListActivities godoc
// @Summary List recorded activities with their parent sessions
// @Description Optional limit/offset query params bound the result set.
// @Tags activities
// @Produce json
// @Param limit query int false "Max rows to return"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} dto.ActivityResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities [get]
func (ctrl *ActivityController) ListActivities(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	resp, err := ctrl.activityService.ListActivities(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
