package handlers

import (
	"net/http"

	"TRECGEN/internal/middleware"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	credits *services.CreditService
}

func NewCreditHandler(credits *services.CreditService) *CreditHandler {
	return &CreditHandler{credits: credits}
}

// Balance returns the team's current credit balance.
func (h *CreditHandler) Balance(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	balance, err := h.credits.Balance(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credits": balance})
}
