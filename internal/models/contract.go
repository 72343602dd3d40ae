package models

import (
	"time"
)

// Contract is the record of one successful PDF generation. Rows are
// append-only: written once, read for history listings, never updated.
type Contract struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	TeamID      string    `gorm:"not null;index" json:"team_id"`
	UserID      string    `gorm:"not null" json:"user_id"`
	PropertyID  *string   `gorm:"index" json:"property_id,omitempty"`
	Filename    string    `gorm:"not null" json:"filename"`
	GCSPath     string    `gorm:"not null" json:"gcs_path"`
	FileSize    int64     `json:"file_size"`
	GeneratedAt time.Time `json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
}
