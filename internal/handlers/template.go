package handlers

import (
	"net/http"

	"TRECGEN/internal/services"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	template *services.TemplateService
}

func NewTemplateHandler(template *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{template: template}
}

// Fields lists the loaded template's form fields (name + type). This is what
// the field-map tooling introspects when the template changes.
func (h *TemplateHandler) Fields(c *gin.Context) {
	fields, err := h.template.Fields()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": fields})
}
