package models

import (
	"time"

	"gorm.io/gorm"
)

// Property status values. A property starts pending and moves to generated
// once a contract has been produced for it, or to error if that failed.
const (
	PropertyStatusPending   = "pending"
	PropertyStatusGenerated = "generated"
	PropertyStatusError     = "error"
)

type Owner struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	TeamID         string         `gorm:"not null;index" json:"team_id"`
	FullName       string         `gorm:"not null" json:"full_name"`
	MailingAddress string         `json:"mailing_address"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`
}

type Property struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	TeamID        string         `gorm:"not null;index" json:"team_id"`
	OwnerID       string         `gorm:"not null;index" json:"owner_id"`
	StreetAddress string         `gorm:"not null" json:"street_address"`
	City          string         `json:"city"`
	ZipCode       string         `json:"zip_code"`
	OfferPrice    string         `json:"offer_price"`
	Status        string         `gorm:"default:'pending'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Owner Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
