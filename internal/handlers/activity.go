package handlers

import (
	"net/http"
	"strconv"

	"TRECGEN/internal/middleware"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activity *services.ActivityLogService
}

func NewActivityHandler(activity *services.ActivityLogService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns the team's recent request audit entries.
func (h *ActivityHandler) List(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	logs, total, err := h.activity.ListByTeam(teamID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":   logs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
