package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"TRECGEN/internal/middleware"
	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	generation *services.GenerationService
	store      services.ObjectStore
}

func NewContractHandler(generation *services.GenerationService, store services.ObjectStore) *ContractHandler {
	return &ContractHandler{generation: generation, store: store}
}

type GenerateResponse struct {
	ContractID    string `json:"contract_id"`
	Filename      string `json:"filename"`
	DownloadURL   string `json:"download_url,omitempty"`
	SkippedFields int    `json:"skipped_fields,omitempty"`
	Warnings      any    `json:"warnings,omitempty"`
	Message       string `json:"message"`
}

// Generate handles one manual submission. With ?download=1 the PDF bytes are
// streamed back directly; otherwise the response carries metadata plus a
// signed URL for the stored copy.
func (h *ContractHandler) Generate(c *gin.Context) {
	userID, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	result, err := h.generation.Generate(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("download") == "1" {
		c.Header("Content-Description", "File Transfer")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
		c.Data(http.StatusOK, "application/pdf", result.PDF)
		return
	}

	downloadURL, err := h.store.GetSignedURL(result.Contract.GCSPath, 15*time.Minute)
	if err != nil {
		// The contract exists either way; the URL is best effort.
		downloadURL = ""
	}

	c.JSON(http.StatusOK, GenerateResponse{
		ContractID:    result.Contract.ID,
		Filename:      result.Filename,
		DownloadURL:   downloadURL,
		SkippedFields: result.SkippedFields,
		Warnings:      result.Warnings,
		Message:       "Contract generated successfully",
	})
}

// List returns the team's generation history.
func (h *ContractHandler) List(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	contracts, err := h.generation.ListContracts(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

// Download streams a previously generated PDF.
func (h *ContractHandler) Download(c *gin.Context) {
	_, teamID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	contractID := c.Param("contractId")
	if contractID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contract ID is required"})
		return
	}

	reader, filename, err := h.generation.GetContractReader(c.Request.Context(), teamID, contractID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/pdf")

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}
