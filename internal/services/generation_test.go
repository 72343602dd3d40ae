package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"TRECGEN/internal/contract"
	"TRECGEN/internal/models"
)

func newGenerationFixture(t *testing.T, credits int) (*GenerationService, *fakeFiller, *fakeStore, *CreditService) {
	t.Helper()
	db := newTestDB(t)
	createTeam(t, db, "team-1", credits)

	creditSvc := NewCreditService(db)
	defaultsSvc := NewDefaultsService(db)
	filler := &fakeFiller{}
	store := newFakeStore()
	svc := NewGenerationService(db, creditSvc, defaultsSvc, filler, store)
	return svc, filler, store, creditSvc
}

func TestGenerateSuccess(t *testing.T) {
	svc, filler, store, credits := newGenerationFixture(t, 3)

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")
	data.Property.Address = strPtr("100 Main St")

	result, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Contract == nil || result.Contract.TeamID != "team-1" || result.Contract.UserID != "user-1" {
		t.Errorf("contract record = %+v", result.Contract)
	}
	if !strings.HasSuffix(result.Filename, "-TREC-1-4.pdf") {
		t.Errorf("filename = %q", result.Filename)
	}
	if len(result.PDF) == 0 {
		t.Error("no PDF bytes returned")
	}
	if store.count() != 1 {
		t.Errorf("stored objects = %d, want 1", store.count())
	}
	if filler.calls != 1 {
		t.Errorf("fill calls = %d, want 1", filler.calls)
	}

	balance, _ := credits.Balance("team-1")
	if balance != 2 {
		t.Errorf("balance = %d, want 2", balance)
	}

	contracts, err := svc.ListContracts("team-1")
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(contracts) != 1 || contracts[0].ID != result.Contract.ID {
		t.Errorf("history = %+v", contracts)
	}
}

func TestGenerateAppliesSuffixAndDefaults(t *testing.T) {
	db := newTestDB(t)
	createTeam(t, db, "team-1", 3)

	creditSvc := NewCreditService(db)
	defaultsSvc := NewDefaultsService(db)
	if _, err := defaultsSvc.Upsert("team-1", &models.TeamContractDefaults{
		ListingFirmName: "Lone Star Realty",
	}); err != nil {
		t.Fatalf("Upsert defaults: %v", err)
	}

	filler := &fakeFiller{}
	store := newFakeStore()
	svc := NewGenerationService(db, creditSvc, defaultsSvc, filler, store)

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")

	_, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data, AndOrAssigns: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	filled := filler.last
	if filled.Parties.Buyer == nil || *filled.Parties.Buyer != "Jane Roe and/or assigns" {
		t.Errorf("filled buyer = %v", filled.Parties.Buyer)
	}
	if filled.Brokers.ListingFirmName == nil || *filled.Brokers.ListingFirmName != "Lone Star Realty" {
		t.Errorf("defaults not merged: %v", filled.Brokers.ListingFirmName)
	}
	// The caller's record stays untouched.
	if *data.Parties.Buyer != "Jane Roe" {
		t.Errorf("request data mutated: %q", *data.Parties.Buyer)
	}
}

func TestGenerateValidationFailureCostsNothing(t *testing.T) {
	svc, filler, store, credits := newGenerationFixture(t, 3)

	data := &contract.ContractData{}
	data.Property.HOAStatus = strPtr("bogus")

	_, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data})
	var validationErr *ValidationFailedError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want ValidationFailedError", err)
	}
	if len(validationErr.Errors) != 1 || validationErr.Errors[0].Path != "property.hoaStatus" {
		t.Errorf("field errors = %+v", validationErr.Errors)
	}

	if filler.calls != 0 {
		t.Errorf("fill was called %d times", filler.calls)
	}
	if store.count() != 0 {
		t.Errorf("stored objects = %d", store.count())
	}
	balance, _ := credits.Balance("team-1")
	if balance != 3 {
		t.Errorf("balance = %d, want 3", balance)
	}
}

func TestGenerateInsufficientCredits(t *testing.T) {
	svc, _, store, _ := newGenerationFixture(t, 0)

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")

	_, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data})
	var insufficientErr *InsufficientCreditsError
	if !errors.As(err, &insufficientErr) {
		t.Fatalf("error = %v, want InsufficientCreditsError", err)
	}
	if insufficientErr.Required != 1 || insufficientErr.Available != 0 {
		t.Errorf("error = %+v", insufficientErr)
	}
	if store.count() != 0 {
		t.Errorf("stored objects = %d", store.count())
	}
}

func TestGenerateFillFailureRollsBackDebit(t *testing.T) {
	svc, filler, store, credits := newGenerationFixture(t, 3)
	filler.failErr = errors.New("template broken")

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")

	_, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data})
	if err == nil {
		t.Fatal("expected error")
	}

	balance, _ := credits.Balance("team-1")
	if balance != 3 {
		t.Errorf("balance = %d, want 3 after rollback", balance)
	}
	if store.count() != 0 {
		t.Errorf("stored objects = %d", store.count())
	}

	var contracts []models.Contract
	svc.db.Find(&contracts)
	if len(contracts) != 0 {
		t.Errorf("contract records survived the rollback: %+v", contracts)
	}
}

func TestGenerateUploadFailureRollsBackDebit(t *testing.T) {
	svc, _, store, credits := newGenerationFixture(t, 3)
	store.failUpload = true

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")

	_, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data})
	if err == nil {
		t.Fatal("expected error")
	}
	balance, _ := credits.Balance("team-1")
	if balance != 3 {
		t.Errorf("balance = %d, want 3 after rollback", balance)
	}
}

func TestGenerateMarksProperty(t *testing.T) {
	db := newTestDB(t)
	createTeam(t, db, "team-1", 3)

	property := &models.Property{
		ID:            "prop-1",
		TeamID:        "team-1",
		OwnerID:       "owner-1",
		StreetAddress: "100 Main St",
		Status:        models.PropertyStatusPending,
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}

	creditSvc := NewCreditService(db)
	svc := NewGenerationService(db, creditSvc, NewDefaultsService(db), &fakeFiller{}, newFakeStore())

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")
	propertyID := "prop-1"

	result, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data, PropertyID: &propertyID})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Contract.PropertyID == nil || *result.Contract.PropertyID != "prop-1" {
		t.Errorf("contract property id = %v", result.Contract.PropertyID)
	}

	var updated models.Property
	if err := db.First(&updated, "id = ?", "prop-1").Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if updated.Status != models.PropertyStatusGenerated {
		t.Errorf("property status = %q", updated.Status)
	}
}

func TestGetContractReader(t *testing.T) {
	svc, _, _, _ := newGenerationFixture(t, 3)

	data := &contract.ContractData{}
	data.Parties.Buyer = strPtr("Jane Roe")
	result, err := svc.Generate(context.Background(), "team-1", "user-1", &GenerateRequest{Data: data})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	reader, filename, err := svc.GetContractReader(context.Background(), "team-1", result.Contract.ID)
	if err != nil {
		t.Fatalf("GetContractReader: %v", err)
	}
	reader.Close()
	if filename != result.Filename {
		t.Errorf("filename = %q, want %q", filename, result.Filename)
	}

	// Another team's lookup is a not-found, never a leak.
	if _, _, err := svc.GetContractReader(context.Background(), "team-2", result.Contract.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-team read = %v, want ErrNotFound", err)
	}
}

func TestSuggestedFilename(t *testing.T) {
	tests := []struct {
		name    string
		address *string
		want    string
	}{
		{"plain address", strPtr("100 Main St"), "100-Main-St-TREC-1-4.pdf"},
		{"punctuation collapsed", strPtr("100 Main St., Apt #4"), "100-Main-St-Apt-4-TREC-1-4.pdf"},
		{"no address falls back to id", nil, "contract-123-TREC-1-4.pdf"},
		{"blank address falls back to id", strPtr("   "), "contract-123-TREC-1-4.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &contract.ContractData{}
			d.Property.Address = tt.address
			if got := SuggestedFilename(d, "contract-123"); got != tt.want {
				t.Errorf("SuggestedFilename = %q, want %q", got, tt.want)
			}
		})
	}
}
