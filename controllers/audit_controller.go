package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type AuditController struct {
	audit *services.AuditService
}

func NewAuditController(audit *services.AuditService) *AuditController {
	return &AuditController{audit: audit}
}

// GetEvents returns the newest audit entries; ?limit= caps the count
// (default 50).
func (ctl *AuditController) GetEvents(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}
	utils.JSONSuccess(c, http.StatusOK, ctl.audit.Recent(limit))
}
