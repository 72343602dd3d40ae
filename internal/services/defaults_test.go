package services

import (
	"sync"
	"testing"

	"TRECGEN/internal/models"
)

func TestDefaultsServiceGetAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewDefaultsService(db)

	got, err := svc.Get("team-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for a team without saved defaults", got)
	}
}

func TestDefaultsServiceUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewDefaultsService(db)

	created, err := svc.Upsert("team-1", &models.TeamContractDefaults{
		ListingFirmName: "Lone Star Realty",
		EscrowAgentName: "Alamo Title",
	})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created record has no id")
	}

	updated, err := svc.Upsert("team-1", &models.TeamContractDefaults{
		ListingFirmName: "Hill Country Homes",
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update created a second record: %q vs %q", updated.ID, created.ID)
	}

	got, err := svc.Get("team-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ListingFirmName != "Hill Country Homes" {
		t.Errorf("firm = %q", got.ListingFirmName)
	}
	// A full replace: fields absent from the second save are cleared.
	if got.EscrowAgentName != "" {
		t.Errorf("escrow agent survived the replace: %q", got.EscrowAgentName)
	}
}

// Two concurrent first saves for the same team must both succeed and leave
// exactly one record.
func TestDefaultsServiceUpsertConcurrentFirstSave(t *testing.T) {
	db := newTestDB(t)
	svc := NewDefaultsService(db)

	var wg sync.WaitGroup
	results := make([]error, 2)
	firms := []string{"Lone Star Realty", "Hill Country Homes"}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Upsert("team-1", &models.TeamContractDefaults{
				ListingFirmName: firms[i],
			})
		}(i)
	}
	wg.Wait()

	for i, err := range results {
		if err != nil {
			t.Errorf("save %d failed: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&models.TeamContractDefaults{}).Where("team_id = ?", "team-1").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("records = %d, want 1", count)
	}
}

func TestMergeDefaults(t *testing.T) {
	if MergeDefaults(nil) != nil {
		t.Error("nil record should convert to nil")
	}

	df := MergeDefaults(&models.TeamContractDefaults{
		ListingFirmName: "Lone Star Realty",
		EscrowAgentName: "Alamo Title",
	})
	if df.ListingFirmName != "Lone Star Realty" || df.EscrowAgentName != "Alamo Title" {
		t.Errorf("converted = %+v", df)
	}
}
