package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"TRECGEN/internal/middleware"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

type BulkHandler struct {
	bulk *services.BulkService
}

func NewBulkHandler(bulk *services.BulkService) *BulkHandler {
	return &BulkHandler{bulk: bulk}
}

// UploadProperties accepts the simple-column CSV and creates Owner/Property
// rows, debiting one credit per row up front.
func (h *BulkHandler) UploadProperties(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .csv files are supported"})
		return
	}

	report, err := h.bulk.UploadProperties(c.Request.Context(), teamID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListProperties returns the team's properties with status and owner.
func (h *BulkHandler) ListProperties(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	properties, err := h.bulk.ListProperties(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GenerateBulk accepts the dot-path-column CSV and generates one contract per
// row, with a single up-front batch debit.
func (h *BulkHandler) GenerateBulk(c *gin.Context) {
	userID, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .csv files are supported"})
		return
	}

	report, err := h.bulk.GenerateBulk(c.Request.Context(), teamID, userID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
