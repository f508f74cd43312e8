package handler

import (
	"net/http"
	"strconv"

	audit "biztime-backend/internal/services/audit"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	service *audit.Service
}

func NewAuditHandler(service *audit.Service) *AuditHandler {
	return &AuditHandler{service: service}
}

// List returns recent audit rows, newest first. Optional filters:
// ?entity=company and ?limit=n (capped at 200).
func (h *AuditHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	logs, err := h.service.Recent(c.Query("entity"), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit_logs": logs})
}
