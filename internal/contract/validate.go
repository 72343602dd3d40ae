package contract

import (
	"fmt"
	"strings"
)

// FieldError is one leaf-level validation finding.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks every leaf of d against its declared type. Absent (nil)
// leaves are always accepted; no field is required at the schema level.
// Validation is pure and may be run repeatedly, including after defaults
// merging or suffixing. An empty result means the record is structurally
// valid.
func Validate(d *ContractData) []FieldError {
	var errs []FieldError
	for _, lf := range leaves {
		if lf.Kind != KindEnum {
			continue
		}
		v := lf.GetString(d)
		if v == nil {
			continue
		}
		if !containsValue(lf.Enum, *v) {
			errs = append(errs, FieldError{
				Path:    lf.Path,
				Message: fmt.Sprintf("invalid value %q, expected one of: %s", *v, strings.Join(lf.Enum, ", ")),
			})
		}
	}
	return errs
}

// PolicyWarnings is the business-rule pass layered above structural
// validation. The schema deliberately does not enforce cross-field rules
// (an as-is-with-repairs draft may legitimately exist before the repairs list
// is agreed), so these surface as non-blocking warnings, never errors.
func PolicyWarnings(d *ContractData) []FieldError {
	var warns []FieldError

	if s := d.PropertyCondition.AcceptanceStatus; s != nil && *s == "as_is_with_repairs" {
		if d.PropertyCondition.RepairsList == nil || strings.TrimSpace(*d.PropertyCondition.RepairsList) == "" {
			warns = append(warns, FieldError{
				Path:    "propertyCondition.repairsList",
				Message: "acceptance is as-is with repairs but no repairs are listed",
			})
		}
	}

	if d.Financing.ThirdParty && !d.Addenda.ThirdPartyFinancing {
		warns = append(warns, FieldError{
			Path:    "addenda.thirdPartyFinancing",
			Message: "third party financing selected without the matching addendum",
		})
	}

	if d.Financing.SellerFinancing && !d.Addenda.SellerFinancing {
		warns = append(warns, FieldError{
			Path:    "addenda.sellerFinancing",
			Message: "seller financing selected without the matching addendum",
		})
	}

	return warns
}

// AndOrAssignsSuffix is appended to the buyer name when the caller requests
// an assignable contract.
const AndOrAssignsSuffix = " and/or assigns"

// ApplyAndOrAssigns appends the suffix to the buyer name. Appending is
// skipped when there is no buyer yet or the name already carries the suffix,
// so re-submitting a draft does not stack suffixes.
func ApplyAndOrAssigns(d *ContractData) {
	if d.Parties.Buyer == nil {
		return
	}
	name := strings.TrimSpace(*d.Parties.Buyer)
	if name == "" || strings.HasSuffix(name, strings.TrimSpace(AndOrAssignsSuffix)) {
		return
	}
	suffixed := name + AndOrAssignsSuffix
	d.Parties.Buyer = &suffixed
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
