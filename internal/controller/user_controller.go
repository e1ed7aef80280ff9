package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser godoc
// @Summary Register a participant
// @Description The id comes from the caller (roster import), not the store.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.UserCreateDTO true "Participant data"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Duplicate id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req dto.UserCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UserCreateDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser godoc
// @Summary Get a participant with all of their sessions
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CountUsers returns {"count": n} over all participants.
func (ctrl *UserController) CountUsers(c *gin.Context) {
	count, err := ctrl.userService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
