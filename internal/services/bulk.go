package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"TRECGEN/internal/contract"
	"TRECGEN/internal/models"
	"TRECGEN/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BulkService handles the two CSV upload flows: the simple property batch
// (Owner/Property rows) and the richer dot-path batch that generates one
// contract per row.
//
// Both flows debit the whole batch's credits in one step computed from the
// file's row count, before any per-row work. Rows that later fail are
// reported but not refunded; this is a deliberate billing policy, not an
// oversight.
type BulkService struct {
	db         *gorm.DB
	credits    *CreditService
	generation *GenerationService
	defaults   *DefaultsService
	filler     ContractFiller
	store      ObjectStore
}

func NewBulkService(db *gorm.DB, credits *CreditService, generation *GenerationService, defaults *DefaultsService, filler ContractFiller, store ObjectStore) *BulkService {
	return &BulkService{
		db:         db,
		credits:    credits,
		generation: generation,
		defaults:   defaults,
		filler:     filler,
		store:      store,
	}
}

// PropertyBatchReport summarizes one property upload.
type PropertyBatchReport struct {
	PropertiesCreated int                 `json:"properties_created"`
	OwnersCreated     int                 `json:"owners_created"`
	CreditsDebited    int                 `json:"credits_debited"`
	NewBalance        int                 `json:"new_balance"`
	RowErrors         []contract.RowError `json:"row_errors,omitempty"`
	Message           string              `json:"message"`
}

// UploadProperties parses the simple-column CSV and creates one Owner and one
// Property per row. The batch debit equals the file's total row count,
// including rows that fail to parse or insert.
func (s *BulkService) UploadProperties(ctx context.Context, teamID string, r io.Reader) (*PropertyBatchReport, error) {
	rows, rowErrors, err := contract.ParsePropertyRows(r)
	if err != nil {
		return nil, &ValidationFailedError{Errors: []contract.FieldError{{Path: "file", Message: err.Error()}}}
	}

	total := len(rows) + len(rowErrors)
	if total == 0 {
		return nil, &ValidationFailedError{Errors: []contract.FieldError{{Path: "file", Message: "no data rows"}}}
	}

	report := &PropertyBatchReport{CreditsDebited: total, RowErrors: rowErrors}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.credits.Debit(tx, teamID, total); err != nil {
			return err
		}

		for _, row := range rows {
			owner := &models.Owner{
				ID:             uuid.New().String(),
				TeamID:         teamID,
				FullName:       row.OwnerName,
				MailingAddress: row.MailingAddress,
			}
			if err := tx.Create(owner).Error; err != nil {
				report.RowErrors = append(report.RowErrors, contract.RowError{
					Line:    row.Line,
					Message: fmt.Sprintf("failed to save owner: %v", err),
				})
				continue
			}

			property := &models.Property{
				ID:            uuid.New().String(),
				TeamID:        teamID,
				OwnerID:       owner.ID,
				StreetAddress: row.StreetAddress,
				City:          row.City,
				ZipCode:       row.ZipCode,
				OfferPrice:    row.OfferPrice,
				Status:        models.PropertyStatusPending,
			}
			if err := tx.Create(property).Error; err != nil {
				report.RowErrors = append(report.RowErrors, contract.RowError{
					Line:    row.Line,
					Message: fmt.Sprintf("failed to save property: %v", err),
				})
				continue
			}

			report.OwnersCreated++
			report.PropertiesCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The rows are committed; a failed balance read must not turn the
	// finished batch into an error.
	balance, err := s.credits.Balance(teamID)
	if err != nil {
		slog.Warn("failed to read balance after property batch", "team_id", teamID, "error", err)
		report.Message = fmt.Sprintf("Created %d properties.", report.PropertiesCreated)
		return report, nil
	}
	report.NewBalance = balance
	report.Message = fmt.Sprintf("Created %d properties. Your new credit balance is %d.",
		report.PropertiesCreated, balance)

	return report, nil
}

// ListProperties returns the team's properties with their owners.
func (s *BulkService) ListProperties(teamID string) ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Preload("Owner").Where("team_id = ?", teamID).Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// BulkGenerateReport summarizes one direct-to-PDF batch.
type BulkGenerateReport struct {
	Generated      int                 `json:"generated"`
	CreditsDebited int                 `json:"credits_debited"`
	NewBalance     int                 `json:"new_balance"`
	RowErrors      []contract.RowError `json:"row_errors,omitempty"`
	ContractIDs    []string            `json:"contract_ids"`
	Message        string              `json:"message"`
}

// GenerateBulk maps each dot-path-keyed CSV row to a ContractData and runs
// the fill pipeline for it. The whole batch's credits are debited up front in
// one step; a row that fails validation or filling is reported and moves its
// matched property to the error status, but processing of the remaining rows
// continues and nothing is refunded.
func (s *BulkService) GenerateBulk(ctx context.Context, teamID, userID string, r io.Reader) (*BulkGenerateReport, error) {
	rows, err := contract.ParseRows(r)
	if err != nil {
		return nil, &ValidationFailedError{Errors: []contract.FieldError{{Path: "file", Message: err.Error()}}}
	}
	if len(rows) == 0 {
		return nil, &ValidationFailedError{Errors: []contract.FieldError{{Path: "file", Message: "no data rows"}}}
	}

	// Everything that can fail at batch level must fail before the debit.
	// Once credits are consumed, only per-row failures remain possible.
	stored, err := s.defaults.Get(teamID)
	if err != nil {
		return nil, err
	}
	teamDefaults := MergeDefaults(stored)

	// One up-front debit for the whole batch, in its own transaction.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.credits.Debit(tx, teamID, len(rows))
	})
	if err != nil {
		return nil, err
	}

	report := &BulkGenerateReport{CreditsDebited: len(rows)}
	for i, row := range rows {
		line := i + 2
		contractID, rowErr := s.generateRow(ctx, teamID, userID, teamDefaults, row)
		if rowErr != nil {
			report.RowErrors = append(report.RowErrors, contract.RowError{Line: line, Message: rowErr.Error()})
			continue
		}
		report.Generated++
		report.ContractIDs = append(report.ContractIDs, contractID)
	}

	balance, err := s.credits.Balance(teamID)
	if err != nil {
		slog.Warn("failed to read balance after bulk generation", "team_id", teamID, "error", err)
		report.Message = fmt.Sprintf("Generated %d contracts.", report.Generated)
		return report, nil
	}
	report.NewBalance = balance
	report.Message = fmt.Sprintf("Generated %d contracts. Your new credit balance is %d.",
		report.Generated, balance)

	return report, nil
}

func (s *BulkService) generateRow(ctx context.Context, teamID, userID string, teamDefaults *contract.Defaults, row map[string]string) (string, error) {
	data := contract.RowToContract(row)
	contract.ApplyDefaults(teamDefaults, data)

	property := s.matchProperty(teamID, data)

	if errs := contract.Validate(data); len(errs) > 0 {
		s.markProperty(property, models.PropertyStatusError)
		return "", &ValidationFailedError{Errors: errs}
	}

	contractID := uuid.New().String()
	filename := SuggestedFilename(data, contractID)

	fillResult, err := s.filler.Fill(data)
	if err != nil {
		s.markProperty(property, models.PropertyStatusError)
		return "", fmt.Errorf("failed to fill template: %w", err)
	}

	objectName := storage.ContractObjectName(teamID, contractID, filename)
	upload, err := s.store.UploadFile(ctx, bytes.NewReader(fillResult.PDF), objectName, "application/pdf")
	if err != nil {
		s.markProperty(property, models.PropertyStatusError)
		return "", fmt.Errorf("failed to upload generated PDF: %w", err)
	}

	record := &models.Contract{
		ID:          contractID,
		TeamID:      teamID,
		UserID:      userID,
		Filename:    filename,
		GCSPath:     objectName,
		FileSize:    upload.Size,
		GeneratedAt: time.Now(),
	}
	if property != nil {
		record.PropertyID = &property.ID
	}
	if err := s.db.Create(record).Error; err != nil {
		if delErr := s.store.DeleteFile(ctx, objectName); delErr != nil {
			slog.Warn("failed to delete orphaned PDF", "object", objectName, "error", delErr)
		}
		s.markProperty(property, models.PropertyStatusError)
		return "", fmt.Errorf("failed to save contract record: %w", err)
	}

	s.markProperty(property, models.PropertyStatusGenerated)
	return contractID, nil
}

// matchProperty links a batch row to a pending property by street address.
// Rows without a match generate fine; they just carry no property reference.
func (s *BulkService) matchProperty(teamID string, d *contract.ContractData) *models.Property {
	if d.Property.Address == nil {
		return nil
	}
	address := strings.TrimSpace(*d.Property.Address)
	if address == "" {
		return nil
	}
	var property models.Property
	err := s.db.First(&property, "team_id = ? AND street_address = ? AND status = ?",
		teamID, address, models.PropertyStatusPending).Error
	if err != nil {
		return nil
	}
	return &property
}

func (s *BulkService) markProperty(property *models.Property, status string) {
	if property == nil {
		return
	}
	if err := s.db.Model(property).Update("status", status).Error; err != nil {
		slog.Warn("failed to update property status", "property_id", property.ID, "status", status, "error", err)
	}
}
