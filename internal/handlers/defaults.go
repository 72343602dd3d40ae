package handlers

import (
	"net/http"

	"TRECGEN/internal/middleware"
	"TRECGEN/internal/models"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

type DefaultsHandler struct {
	defaults *services.DefaultsService
}

func NewDefaultsHandler(defaults *services.DefaultsService) *DefaultsHandler {
	return &DefaultsHandler{defaults: defaults}
}

// Get returns the team's saved defaults; an empty object when none exist yet.
func (h *DefaultsHandler) Get(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	defaults, err := h.defaults.Get(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	if defaults == nil {
		c.JSON(http.StatusOK, gin.H{"defaults": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"defaults": defaults})
}

// Put upserts the team's defaults record.
func (h *DefaultsHandler) Put(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input models.TeamContractDefaults
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	saved, err := h.defaults.Upsert(teamID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"defaults": saved, "message": "Defaults saved successfully"})
}
