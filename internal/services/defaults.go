package services

import (
	"fmt"

	"TRECGEN/internal/contract"
	"TRECGEN/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultsService reads and upserts the single TeamContractDefaults record a
// team owns.
type DefaultsService struct {
	db *gorm.DB
}

func NewDefaultsService(db *gorm.DB) *DefaultsService {
	return &DefaultsService{db: db}
}

// Get returns the team's saved defaults, or nil when none were ever saved.
func (s *DefaultsService) Get(teamID string) (*models.TeamContractDefaults, error) {
	var defaults models.TeamContractDefaults
	err := s.db.First(&defaults, "team_id = ?", teamID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load team defaults: %w", err)
	}
	return &defaults, nil
}

// Upsert writes the team's defaults in a single statement: insert on first
// save, overwrite the saved fields afterwards. The conflict target is the
// unique team_id index, so two concurrent first saves cannot race into a
// duplicate-key failure; one inserts, the other updates.
func (s *DefaultsService) Upsert(teamID string, input *models.TeamContractDefaults) (*models.TeamContractDefaults, error) {
	input.ID = uuid.New().String()
	input.TeamID = teamID

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"listing_firm_name", "listing_firm_license",
			"listing_associate_name", "listing_associate_license",
			"listing_associate_email", "listing_associate_phone",
			"listing_supervisor_name", "listing_supervisor_license",
			"listing_broker_address",
			"other_firm_name", "other_firm_license",
			"other_associate_name", "other_associate_license",
			"escrow_agent_name", "updated_at",
		}),
	}).Create(input).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save team defaults: %w", err)
	}

	// Re-read so the caller sees the stored row; on conflict the original
	// id and created_at survive, not the ones on input.
	return s.Get(teamID)
}

// MergeDefaults converts a stored record to the merge shape used by the
// contract package. A nil record yields a nil Defaults, which merges as a
// no-op.
func MergeDefaults(m *models.TeamContractDefaults) *contract.Defaults {
	if m == nil {
		return nil
	}
	return &contract.Defaults{
		ListingFirmName:          m.ListingFirmName,
		ListingFirmLicense:       m.ListingFirmLicense,
		ListingAssociateName:     m.ListingAssociateName,
		ListingAssociateLicense:  m.ListingAssociateLicense,
		ListingAssociateEmail:    m.ListingAssociateEmail,
		ListingAssociatePhone:    m.ListingAssociatePhone,
		ListingSupervisorName:    m.ListingSupervisorName,
		ListingSupervisorLicense: m.ListingSupervisorLicense,
		ListingBrokerAddress:     m.ListingBrokerAddress,
		OtherFirmName:            m.OtherFirmName,
		OtherFirmLicense:         m.OtherFirmLicense,
		OtherAssociateName:       m.OtherAssociateName,
		OtherAssociateLicense:    m.OtherAssociateLicense,
		EscrowAgentName:          m.EscrowAgentName,
	}
}
