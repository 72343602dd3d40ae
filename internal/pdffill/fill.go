package pdffill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"TRECGEN/internal/contract"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// TemplateField describes one interactive form field of the template, as
// exposed to the field-map tooling and the introspection endpoint.
type TemplateField struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Result is one finished fill.
type Result struct {
	PDF           []byte
	SkippedFields []string
}

// Filler fills the fixed TREC 1-4 template. It holds the template bytes for
// the lifetime of the process; the only I/O per fill is in-memory.
type Filler struct {
	template []byte
	conf     *model.Configuration
}

// NewFiller parses the template far enough to confirm it carries an
// interactive form. A template without form fields is a deployment problem,
// not a per-request one.
func NewFiller(template []byte) (*Filler, error) {
	conf := model.NewDefaultConfiguration()
	fields, err := api.FormFields(bytes.NewReader(template), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read template form fields: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("template has no interactive form fields")
	}
	return &Filler{template: template, conf: conf}, nil
}

// Fields returns the template's form field list (name + type).
func (f *Filler) Fields() ([]TemplateField, error) {
	fields, err := api.FormFields(bytes.NewReader(f.template), f.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to list form fields: %w", err)
	}
	out := make([]TemplateField, 0, len(fields))
	for _, fld := range fields {
		out = append(out, TemplateField{
			Name: fieldName(fld),
			ID:   fld.ID,
			Type: fld.Typ.String(),
		})
	}
	return out, nil
}

// Fill writes d onto the template and returns the flattened PDF bytes.
// Field Map entries naming fields absent from the template are skipped and
// reported on the result; everything else is fatal and nothing is returned.
func (f *Filler) Fill(d *contract.ContractData) (*Result, error) {
	values := Project(d)

	fields, err := api.FormFields(bytes.NewReader(f.template), f.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read template form fields: %w", err)
	}
	available := make(map[string]bool, len(fields))
	for _, fld := range fields {
		available[fieldName(fld)] = true
	}

	present, missing := splitByAvailability(values, available)
	if len(missing) > 0 {
		sort.Strings(missing)
		slog.Warn("field map entries missing from template, skipping",
			"count", len(missing),
			"fields", missing,
		)
	}

	formJSON, err := buildFormJSON(present)
	if err != nil {
		return nil, fmt.Errorf("failed to build form data: %w", err)
	}

	var filled bytes.Buffer
	if err := api.FillForm(bytes.NewReader(f.template), bytes.NewReader(formJSON), &filled, f.conf); err != nil {
		return nil, fmt.Errorf("failed to fill form: %w", err)
	}

	// Lock every field so the output is no longer interactively editable.
	var flattened bytes.Buffer
	if err := api.LockFormFields(bytes.NewReader(filled.Bytes()), &flattened, nil, f.conf); err != nil {
		return nil, fmt.Errorf("failed to flatten form: %w", err)
	}

	return &Result{PDF: flattened.Bytes(), SkippedFields: missing}, nil
}

// fieldName prefers the field's name and falls back to its internal ID.
func fieldName(fld form.Field) string {
	if fld.Name != "" {
		return fld.Name
	}
	return fld.ID
}

// The JSON shapes below mirror pdfcpu's form import/export format.
type textFieldJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type checkBoxJSON struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type radioGroupJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type formJSON struct {
	TextFields  []textFieldJSON  `json:"textfield,omitempty"`
	CheckBoxes  []checkBoxJSON   `json:"checkbox,omitempty"`
	RadioGroups []radioGroupJSON `json:"radiobuttongroup,omitempty"`
}

type formGroupJSON struct {
	Forms []formJSON `json:"forms"`
}

func buildFormJSON(values map[string]Value) ([]byte, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var fm formJSON
	for _, name := range names {
		v := values[name]
		switch v.Kind {
		case KindCheckBox:
			fm.CheckBoxes = append(fm.CheckBoxes, checkBoxJSON{Name: name, Value: v.Checked})
		case KindRadio:
			fm.RadioGroups = append(fm.RadioGroups, radioGroupJSON{Name: name, Value: v.Text})
		default:
			fm.TextFields = append(fm.TextFields, textFieldJSON{Name: name, Value: v.Text})
		}
	}

	return json.Marshal(formGroupJSON{Forms: []formJSON{fm}})
}
