package services

import (
	"fmt"

	"TRECGEN/internal/models"

	"gorm.io/gorm"
)

// CreditService owns the team credit balance. The debit is a single
// conditional UPDATE so that concurrent generations for the same team can
// never spend the same credit twice: the pre-check and the decrement are one
// indivisible database operation.
type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService {
	return &CreditService{db: db}
}

// Debit atomically checks balance >= n and subtracts n, inside the caller's
// transaction. When the guard fails nothing is mutated and an
// InsufficientCreditsError with the current balance is returned.
func (s *CreditService) Debit(tx *gorm.DB, teamID string, n int) error {
	if n <= 0 {
		return fmt.Errorf("invalid debit amount %d", n)
	}

	result := tx.Model(&models.Team{}).
		Where("id = ? AND credits >= ?", teamID, n).
		UpdateColumn("credits", gorm.Expr("credits - ?", n))
	if result.Error != nil {
		return fmt.Errorf("failed to debit credits: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		available, err := s.balance(tx, teamID)
		if err != nil {
			return err
		}
		return &InsufficientCreditsError{Required: n, Available: available}
	}
	return nil
}

// Grant adds n credits to a team. This is the entry point the billing
// integration calls after a successful purchase.
func (s *CreditService) Grant(teamID string, n int) error {
	if n <= 0 {
		return fmt.Errorf("invalid grant amount %d", n)
	}
	result := s.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		UpdateColumn("credits", gorm.Expr("credits + ?", n))
	if result.Error != nil {
		return fmt.Errorf("failed to grant credits: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Balance reads the current credit balance for a team.
func (s *CreditService) Balance(teamID string) (int, error) {
	return s.balance(s.db, teamID)
}

func (s *CreditService) balance(tx *gorm.DB, teamID string) (int, error) {
	var team models.Team
	if err := tx.Select("credits").First(&team, "id = ?", teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to read team balance: %w", err)
	}
	return team.Credits, nil
}
