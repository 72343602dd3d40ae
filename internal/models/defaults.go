package models

import (
	"time"
)

// TeamContractDefaults holds the broker/escrow values a team saves once and
// has pre-filled into every new contract. One row per team.
type TeamContractDefaults struct {
	ID     string `gorm:"primaryKey" json:"id"`
	TeamID string `gorm:"uniqueIndex;not null" json:"team_id"`

	ListingFirmName          string `json:"listing_firm_name"`
	ListingFirmLicense       string `json:"listing_firm_license"`
	ListingAssociateName     string `json:"listing_associate_name"`
	ListingAssociateLicense  string `json:"listing_associate_license"`
	ListingAssociateEmail    string `json:"listing_associate_email"`
	ListingAssociatePhone    string `json:"listing_associate_phone"`
	ListingSupervisorName    string `json:"listing_supervisor_name"`
	ListingSupervisorLicense string `json:"listing_supervisor_license"`
	ListingBrokerAddress     string `json:"listing_broker_address"`
	OtherFirmName            string `json:"other_firm_name"`
	OtherFirmLicense         string `json:"other_firm_license"`
	OtherAssociateName       string `json:"other_associate_name"`
	OtherAssociateLicense    string `json:"other_associate_license"`
	EscrowAgentName          string `json:"escrow_agent_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
