package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/middleware"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

// CreateTest godoc
// @Summary Create a test owned by the authenticated admin
// @Description Date, time and isActive=true are set server-side at the creation instant.
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TestCreateDTO true "Test data"
// @Success 201 {object} dto.TestCreatedDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tests [post]
func (ctrl *TestController) CreateTest(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: "unauthorized", Error: "Unauthorized: admin not logged in"})
		return
	}

	var req dto.TestCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind TestCreateDTO")
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.testService.CreateTest(c.Request.Context(), admin.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TestCreatedDTO{Message: "Test created successfully", Test: *resp})
}

// GetTest godoc
// @Summary Get a test with its owning admin and all its sessions
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tests/{id} [get]
func (ctrl *TestController) GetTest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.testService.GetTest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListActiveTests godoc
// @Summary List all active tests
// @Description Optional limit/offset query params bound the result set.
// @Tags tests
// @Produce json
// @Param limit query int false "Max rows to return"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} dto.TestResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tests/activeTests [get]
func (ctrl *TestController) ListActiveTests(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	resp, err := ctrl.testService.ListActive(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CountActiveTests returns {"count": n} over the same set ListActiveTests draws from.
func (ctrl *TestController) CountActiveTests(c *gin.Context) {
	count, err := ctrl.testService.CountActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// ListActiveTestsByAdmin godoc
// @Summary List active tests owned by one admin
// @Tags tests
// @Produce json
// @Param adminId path int true "Admin ID"
// @Success 200 {array} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unparsable admin id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tests/active/{adminId} [get]
func (ctrl *TestController) ListActiveTestsByAdmin(c *gin.Context) {
	adminID, ok := parseIDParam(c, "adminId")
	if !ok {
		return
	}

	resp, err := ctrl.testService.ListActiveByAdmin(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTestUsers godoc
// @Summary List the participants of a test
// @Description One entry per session, in creation order; a user with two attempts appears twice.
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestUsersResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tests/{id}/users [get]
func (ctrl *TestController) ListTestUsers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := ctrl.testService.ListUsersForTest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TestUsersResponseDTO{Users: users})
}

// ListTestAlerts returns every activity flagged across the test's sessions, newest first.
func (ctrl *TestController) ListTestAlerts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}

	alerts, err := ctrl.testService.ListAlerts(c.Request.Context(), id, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
