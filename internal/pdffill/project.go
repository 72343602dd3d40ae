// Package pdffill projects a contract record onto the TREC 1-4 template's
// AcroForm and produces the finalized, non-editable PDF bytes.
package pdffill

import (
	"TRECGEN/internal/contract"
)

// ValueKind says which AcroForm widget type a projected value targets.
type ValueKind int

const (
	KindText ValueKind = iota
	KindCheckBox
	KindRadio
)

// Value is one projected field value, keyed by PDF field name.
type Value struct {
	Kind    ValueKind
	Text    string
	Checked bool
}

// Project resolves every Field Map entry against d and returns the values to
// write, keyed by the template's field names. Nil leaves produce no entry;
// boolean leaves always produce one (unchecked boxes are written explicitly).
// String and numeric values are written exactly as given, never reformatted.
func Project(d *contract.ContractData) map[string]Value {
	values := make(map[string]Value)
	for _, entry := range contract.FieldMap {
		lf, ok := contract.LeafByPath(entry.Path)
		if !ok {
			continue
		}
		switch lf.Kind {
		case contract.KindBool:
			values[entry.PDFField] = Value{Kind: KindCheckBox, Checked: lf.GetBool(d)}
		case contract.KindEnum:
			v := lf.GetString(d)
			if v == nil {
				continue
			}
			text := *v
			if opts, ok := contract.EnumOptions[entry.Path]; ok {
				if label, ok := opts[*v]; ok {
					text = label
				}
			}
			values[entry.PDFField] = Value{Kind: KindRadio, Text: text}
		default:
			v := lf.GetString(d)
			if v == nil {
				continue
			}
			values[entry.PDFField] = Value{Kind: KindText, Text: *v}
		}
	}
	return values
}

// splitByAvailability separates projected values into those whose field
// exists in the template and those it does not know about. The latter is the
// template/field-map version-skew case: those fields are skipped, not fatal.
func splitByAvailability(values map[string]Value, available map[string]bool) (map[string]Value, []string) {
	present := make(map[string]Value, len(values))
	var missing []string
	for name, v := range values {
		if available[name] {
			present[name] = v
		} else {
			missing = append(missing, name)
		}
	}
	return present, missing
}
