package services

import (
	"fmt"
	"os"

	"TRECGEN/internal/pdffill"
)

// TemplateService owns the fixed TREC 1-4 PDF template. The template is read
// once at startup; a missing or malformed template is a deployment failure,
// not something to rediscover per request.
type TemplateService struct {
	path   string
	filler *pdffill.Filler
}

func NewTemplateService(path string) (*TemplateService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	filler, err := pdffill.NewFiller(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	return &TemplateService{path: path, filler: filler}, nil
}

// Filler returns the ready-to-use form filler for the loaded template.
func (s *TemplateService) Filler() *pdffill.Filler {
	return s.filler
}

// Fields lists the template's form fields (name + type) for the field-map
// tooling and the introspection endpoint.
func (s *TemplateService) Fields() ([]pdffill.TemplateField, error) {
	return s.filler.Fields()
}
