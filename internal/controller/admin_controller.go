package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// GetAdmin godoc
// @Summary Get an admin profile with its owned tests
// @Tags admins
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.AdminResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admins/{id} [get]
func (ctrl *AdminController) GetAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.adminService.GetAdmin(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAdmin godoc
// @Summary Provision an admin account directly
// @Tags admins
// @Accept json
// @Produce json
// @Param body body dto.AdminCreateDTO true "Admin data"
// @Success 200 {object} dto.AdminSummaryDTO
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admins [post]
func (ctrl *AdminController) CreateAdmin(c *gin.Context) {
	var req dto.AdminCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AdminCreateDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.adminService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
