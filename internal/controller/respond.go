package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/rs/zerolog/log"
)

// respondError maps a service error onto its HTTP status and stable code.
// Unclassified errors are logged server-side before surfacing as 500.
func respondError(c *gin.Context, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(status, dto.ErrorResponse{Code: apperror.Code(err), Error: err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "bad_request", Error: err.Error()})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "bad_request", Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// parsePage reads optional limit/offset query params. Absent params yield the
// zero Page, which preserves the unbounded-list behavior existing clients rely on.
func parsePage(c *gin.Context) (repository.Page, bool) {
	var page repository.Page
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "bad_request", Error: "Invalid limit format"})
			return page, false
		}
		page.Limit = v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "bad_request", Error: "Invalid offset format"})
			return page, false
		}
		page.Offset = v
	}
	return page, true
}
