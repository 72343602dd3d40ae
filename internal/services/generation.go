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
	"TRECGEN/internal/pdffill"
	"TRECGEN/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractFiller produces the finished PDF for one contract record.
// *pdffill.Filler is the production implementation.
type ContractFiller interface {
	Fill(d *contract.ContractData) (*pdffill.Result, error)
}

// ObjectStore is the slice of the object storage client the generation
// pipeline needs. *storage.GCSClient satisfies it.
type ObjectStore interface {
	UploadFile(ctx context.Context, reader io.Reader, objectName, contentType string) (*storage.UploadResult, error)
	ReadFile(ctx context.Context, objectName string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, objectName string) error
	GetSignedURL(objectName string, expiry time.Duration) (string, error)
}

// GenerationService runs the manual single-contract pipeline: defaults merge,
// validation, the credit gate and the PDF fill, with the debit and the
// contract record in one transaction.
type GenerationService struct {
	db       *gorm.DB
	credits  *CreditService
	defaults *DefaultsService
	filler   ContractFiller
	store    ObjectStore
}

func NewGenerationService(db *gorm.DB, credits *CreditService, defaults *DefaultsService, filler ContractFiller, store ObjectStore) *GenerationService {
	return &GenerationService{
		db:       db,
		credits:  credits,
		defaults: defaults,
		filler:   filler,
		store:    store,
	}
}

// GenerateRequest is one manual submission: an assembled ContractData plus
// the flag requesting the "and/or assigns" buyer suffix.
type GenerateRequest struct {
	Data         *contract.ContractData `json:"data"`
	AndOrAssigns bool                   `json:"and_or_assigns"`
	PropertyID   *string                `json:"property_id,omitempty"`
}

// GenerationResult is one successful generation.
type GenerationResult struct {
	Contract      *models.Contract      `json:"contract"`
	PDF           []byte                `json:"-"`
	Filename      string                `json:"filename"`
	Warnings      []contract.FieldError `json:"warnings,omitempty"`
	SkippedFields int                   `json:"skipped_fields,omitempty"`
}

// Generate runs one manual generation for the given user and team. The order
// is fixed: suffix, defaults merge, validation (last, on the final record),
// then a single transaction holding the conditional 1-credit debit, the fill,
// the upload and the contract record. Any failure inside the transaction
// rolls the debit back; no partial state survives.
func (s *GenerationService) Generate(ctx context.Context, teamID, userID string, req *GenerateRequest) (*GenerationResult, error) {
	if req.Data == nil {
		return nil, &ValidationFailedError{Errors: []contract.FieldError{{Path: "data", Message: "contract data is required"}}}
	}

	data := *req.Data
	if req.AndOrAssigns {
		contract.ApplyAndOrAssigns(&data)
	}

	stored, err := s.defaults.Get(teamID)
	if err != nil {
		return nil, err
	}
	contract.ApplyDefaults(MergeDefaults(stored), &data)

	if errs := contract.Validate(&data); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}
	warnings := contract.PolicyWarnings(&data)

	contractID := uuid.New().String()
	filename := SuggestedFilename(&data, contractID)

	var (
		result     *GenerationResult
		uploadedTo string
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.credits.Debit(tx, teamID, 1); err != nil {
			return err
		}

		fillResult, err := s.filler.Fill(&data)
		if err != nil {
			return fmt.Errorf("failed to fill template: %w", err)
		}

		objectName := storage.ContractObjectName(teamID, contractID, filename)
		upload, err := s.store.UploadFile(ctx, bytes.NewReader(fillResult.PDF), objectName, "application/pdf")
		if err != nil {
			return fmt.Errorf("failed to upload generated PDF: %w", err)
		}
		uploadedTo = objectName

		record := &models.Contract{
			ID:          contractID,
			TeamID:      teamID,
			UserID:      userID,
			PropertyID:  req.PropertyID,
			Filename:    filename,
			GCSPath:     objectName,
			FileSize:    upload.Size,
			GeneratedAt: time.Now(),
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to save contract record: %w", err)
		}

		if req.PropertyID != nil {
			if err := tx.Model(&models.Property{}).
				Where("id = ? AND team_id = ?", *req.PropertyID, teamID).
				Update("status", models.PropertyStatusGenerated).Error; err != nil {
				return fmt.Errorf("failed to update property status: %w", err)
			}
		}

		result = &GenerationResult{
			Contract:      record,
			PDF:           fillResult.PDF,
			Filename:      filename,
			Warnings:      warnings,
			SkippedFields: len(fillResult.SkippedFields),
		}
		return nil
	})
	if err != nil {
		// The debit and the record rolled back with the transaction; the
		// uploaded object is the only thing left to undo.
		if uploadedTo != "" {
			if delErr := s.store.DeleteFile(ctx, uploadedTo); delErr != nil {
				slog.Warn("failed to delete orphaned PDF after rollback", "object", uploadedTo, "error", delErr)
			}
		}
		return nil, err
	}

	return result, nil
}

// ListContracts returns the team's generation history, newest first.
func (s *GenerationService) ListContracts(teamID string) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := s.db.Where("team_id = ?", teamID).Order("generated_at DESC").Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

// GetContractReader streams a stored PDF back. Contracts are team-scoped;
// asking for another team's contract is indistinguishable from asking for a
// missing one.
func (s *GenerationService) GetContractReader(ctx context.Context, teamID, contractID string) (io.ReadCloser, string, error) {
	var record models.Contract
	if err := s.db.First(&record, "id = ? AND team_id = ?", contractID, teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to load contract: %w", err)
	}

	reader, err := s.store.ReadFile(ctx, record.GCSPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stored PDF: %w", err)
	}
	return reader, record.Filename, nil
}

// SuggestedFilename derives a download name from the property address, or
// falls back to the contract id.
func SuggestedFilename(d *contract.ContractData, contractID string) string {
	base := contractID
	if d.Property.Address != nil && strings.TrimSpace(*d.Property.Address) != "" {
		base = *d.Property.Address
	}

	var b strings.Builder
	lastDash := false
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = contractID
	}
	return name + "-TREC-1-4.pdf"
}
