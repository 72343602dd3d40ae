package pdffill

import (
	"encoding/json"
	"os"
	"testing"

	"TRECGEN/internal/contract"
)

func strPtr(s string) *string { return &s }

func TestProjectStrings(t *testing.T) {
	d := &contract.ContractData{}
	d.Parties.Buyer = strPtr("Jane Roe")
	d.Parties.Seller = strPtr("John Smith")
	d.Price.SalesPrice = strPtr("350000.00")

	values := Project(d)

	buyer, ok := values["Seller and"]
	if !ok {
		t.Fatal("buyer value missing")
	}
	if buyer.Kind != KindText || buyer.Text != "Jane Roe" {
		t.Errorf("buyer = %+v", buyer)
	}

	price, ok := values["C Sales Price Sum of A and B"]
	if !ok {
		t.Fatal("sales price value missing")
	}
	// Values pass through verbatim, no currency reformatting.
	if price.Text != "350000.00" {
		t.Errorf("sales price = %q", price.Text)
	}

	if _, ok := values["A LAND Lot"]; ok {
		t.Error("nil leaf produced a value")
	}
}

func TestProjectBoolsAlwaysEmitted(t *testing.T) {
	d := &contract.ContractData{}
	d.Financing.ThirdParty = true

	values := Project(d)

	checked, ok := values["Check Box Third Party Financing Addendum"]
	if !ok || checked.Kind != KindCheckBox || !checked.Checked {
		t.Errorf("third party checkbox = %+v, ok=%v", checked, ok)
	}

	// Unset booleans are still written, explicitly unchecked.
	unchecked, ok := values["Check Box Seller Financing Addendum"]
	if !ok || unchecked.Kind != KindCheckBox || unchecked.Checked {
		t.Errorf("seller financing checkbox = %+v, ok=%v", unchecked, ok)
	}
}

func TestProjectEnumUsesOptionLabel(t *testing.T) {
	d := &contract.ContractData{}
	d.Property.HOAStatus = strPtr("mandatory_hoa")
	d.TitlePolicy.Payer = strPtr("buyer")

	values := Project(d)

	hoa, ok := values["Group HOA Membership"]
	if !ok || hoa.Kind != KindRadio {
		t.Fatalf("hoa radio = %+v, ok=%v", hoa, ok)
	}
	if hoa.Text != "is" {
		t.Errorf("hoa option = %q, want %q", hoa.Text, "is")
	}

	payer := values["Group Title Policy Expense"]
	if payer.Text != "Buyers" {
		t.Errorf("payer option = %q, want %q", payer.Text, "Buyers")
	}
}

func TestSplitByAvailability(t *testing.T) {
	values := map[string]Value{
		"known":   {Kind: KindText, Text: "a"},
		"unknown": {Kind: KindText, Text: "b"},
		"box":     {Kind: KindCheckBox, Checked: true},
	}
	available := map[string]bool{"known": true, "box": true}

	present, missing := splitByAvailability(values, available)

	if len(present) != 2 {
		t.Errorf("present = %v", present)
	}
	if _, ok := present["known"]; !ok {
		t.Error("known field dropped")
	}
	if len(missing) != 1 || missing[0] != "unknown" {
		t.Errorf("missing = %v", missing)
	}
}

func TestBuildFormJSON(t *testing.T) {
	values := map[string]Value{
		"Seller and":            {Kind: KindText, Text: "Jane Roe"},
		"Group HOA Membership":  {Kind: KindRadio, Text: "is"},
		"Check Box Fixture":     {Kind: KindCheckBox, Checked: true},
		"Check Box Residential": {Kind: KindCheckBox, Checked: false},
	}

	raw, err := buildFormJSON(values)
	if err != nil {
		t.Fatalf("buildFormJSON: %v", err)
	}

	var parsed struct {
		Forms []struct {
			TextFields []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"textfield"`
			CheckBoxes []struct {
				Name  string `json:"name"`
				Value bool   `json:"value"`
			} `json:"checkbox"`
			RadioGroups []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"radiobuttongroup"`
		} `json:"forms"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Forms) != 1 {
		t.Fatalf("forms = %d, want 1", len(parsed.Forms))
	}

	f := parsed.Forms[0]
	if len(f.TextFields) != 1 || f.TextFields[0].Name != "Seller and" || f.TextFields[0].Value != "Jane Roe" {
		t.Errorf("textfields = %+v", f.TextFields)
	}
	if len(f.CheckBoxes) != 2 {
		t.Errorf("checkboxes = %+v", f.CheckBoxes)
	}
	if len(f.RadioGroups) != 1 || f.RadioGroups[0].Value != "is" {
		t.Errorf("radiogroups = %+v", f.RadioGroups)
	}
}

// Full fill against the real template. Skipped when the template PDF is not
// checked out next to the tests.
func TestFillerAgainstTemplate(t *testing.T) {
	data, err := os.ReadFile("testdata/trec-1-4.pdf")
	if err != nil {
		t.Skipf("template not available: %v", err)
	}

	filler, err := NewFiller(data)
	if err != nil {
		t.Fatalf("NewFiller: %v", err)
	}

	fields, err := filler.Fields()
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if len(fields) == 0 {
		t.Fatal("template reports no fields")
	}

	d := &contract.ContractData{}
	d.Parties.Buyer = strPtr("Jane Roe")
	d.Parties.Seller = strPtr("John Smith")
	d.Property.Address = strPtr("100 Main St")
	d.Financing.ThirdParty = true

	result, err := filler.Fill(d)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(result.PDF) == 0 {
		t.Fatal("empty output PDF")
	}
	if len(result.SkippedFields) > 0 {
		t.Logf("skipped fields (template/map skew): %v", result.SkippedFields)
	}
}
