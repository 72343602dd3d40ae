package contract

import "testing"

// Every map entry must point at a registered leaf, and no two leaves may
// share a PDF field.
func TestFieldMapConsistency(t *testing.T) {
	seenPath := make(map[string]bool, len(FieldMap))
	seenField := make(map[string]string, len(FieldMap))

	for _, entry := range FieldMap {
		if _, ok := LeafByPath(entry.Path); !ok {
			t.Errorf("field map path %q is not a registered leaf", entry.Path)
		}
		if seenPath[entry.Path] {
			t.Errorf("path %q mapped twice", entry.Path)
		}
		seenPath[entry.Path] = true

		if prev, ok := seenField[entry.PDFField]; ok {
			t.Errorf("PDF field %q mapped from both %q and %q", entry.PDFField, prev, entry.Path)
		}
		seenField[entry.PDFField] = entry.Path
	}
}

// Every leaf should land somewhere on the form.
func TestEveryLeafIsMapped(t *testing.T) {
	mapped := make(map[string]bool, len(FieldMap))
	for _, entry := range FieldMap {
		mapped[entry.Path] = true
	}
	for _, lf := range Leaves() {
		if !mapped[lf.Path] {
			t.Errorf("leaf %q has no field map entry", lf.Path)
		}
	}
}

// The buyer line in the TREC template carries the name of the preceding
// paragraph fragment, not anything resembling "buyer". The map must preserve
// that exact artifact.
func TestBuyerFieldArtifact(t *testing.T) {
	field, ok := PDFFieldFor("parties.buyer")
	if !ok {
		t.Fatal("parties.buyer missing from field map")
	}
	if field != "Seller and" {
		t.Errorf("parties.buyer maps to %q, want %q", field, "Seller and")
	}
}

func TestPDFFieldForUnknownPath(t *testing.T) {
	if _, ok := PDFFieldFor("no.such.path"); ok {
		t.Error("unknown path resolved")
	}
}

// Enum option tables must cover exactly the declared enum values of their
// leaf, or a valid record would project onto a nonexistent radio option.
func TestEnumOptionsCoverEnumValues(t *testing.T) {
	for path, options := range EnumOptions {
		lf, ok := LeafByPath(path)
		if !ok {
			t.Errorf("enum options for unknown path %q", path)
			continue
		}
		if lf.Kind != KindEnum {
			t.Errorf("enum options for non-enum leaf %q", path)
			continue
		}
		for _, v := range lf.Enum {
			if _, ok := options[v]; !ok {
				t.Errorf("leaf %q value %q has no radio option", path, v)
			}
		}
		if len(options) != len(lf.Enum) {
			t.Errorf("leaf %q has %d options for %d enum values", path, len(options), len(lf.Enum))
		}
	}
}

func TestEveryEnumLeafHasOptions(t *testing.T) {
	for _, lf := range Leaves() {
		if lf.Kind != KindEnum {
			continue
		}
		if _, ok := EnumOptions[lf.Path]; !ok {
			t.Errorf("enum leaf %q has no option table", lf.Path)
		}
	}
}
