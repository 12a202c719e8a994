package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commission represents a monetary credit earned by a founder
type Commission struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	FounderID      uuid.UUID       `db:"founder_id" json:"founder_id"`
	CommissionType string          `db:"commission_type" json:"commission_type"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Status         string          `db:"status" json:"status"`
	PayoutID       *uuid.UUID      `db:"payout_id" json:"payout_id,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// CreateCommissionParams represents parameters for accruing a commission
type CreateCommissionParams struct {
	FounderID      uuid.UUID
	CommissionType string
	Amount         decimal.Decimal
}

const sqlCreateCommission = `
INSERT INTO commissions (founder_id, commission_type, amount, status)
VALUES ($1, $2, $3, 'approved')
RETURNING id, founder_id, commission_type, amount, status, payout_id, created_at, updated_at
`

const sqlAccrueFounderBalance = `
UPDATE founder_accounts
SET pending_balance = pending_balance + $2,
    total_commissions_earned = total_commissions_earned + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// CreateCommissionAndAccrue inserts a commission row and adds its amount to
// the founder's pending balance and lifetime earned total as a single unit.
// A crash cannot leave the ledger and the balance out of sync.
func (s *Store) CreateCommissionAndAccrue(ctx context.Context, params CreateCommissionParams) (Commission, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Commission{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var commission Commission
	err = tx.GetContext(ctx, &commission, sqlCreateCommission,
		params.FounderID,
		params.CommissionType,
		params.Amount)
	if err != nil {
		s.logger.Error(ctx, "failed to create commission", err)
		return Commission{}, fmt.Errorf("failed to create commission: %w", err)
	}

	res, err := tx.ExecContext(ctx, sqlAccrueFounderBalance, params.FounderID, params.Amount)
	if err != nil {
		s.logger.Error(ctx, "failed to accrue founder balance", err)
		return Commission{}, fmt.Errorf("failed to accrue founder balance: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return Commission{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		err = ErrNotFound
		return Commission{}, err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Commission{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return commission, nil
}

const sqlReverseCommission = `
UPDATE commissions
SET status = 'reversed',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'approved' AND payout_id IS NULL
RETURNING id, founder_id, commission_type, amount, status, payout_id, created_at, updated_at
`

const sqlDebitFounderBalance = `
UPDATE founder_accounts
SET pending_balance = pending_balance - $2,
    total_commissions_earned = total_commissions_earned - $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// ReverseCommissionAndDebit backs out an approved commission that has not been
// swept into a payout, removing its amount from the pending balance and the
// lifetime earned total in one transaction. Commissions already attached to a
// payout return ErrInvalidTransition.
func (s *Store) ReverseCommissionAndDebit(ctx context.Context, commissionID uuid.UUID) (Commission, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Commission{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var commission Commission
	err = tx.GetContext(ctx, &commission, sqlReverseCommission, commissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetCommissionByID(ctx, commissionID); getErr != nil {
				err = getErr
				return Commission{}, err
			}
			err = ErrInvalidTransition
			return Commission{}, err
		}
		s.logger.Error(ctx, "failed to reverse commission", err)
		return Commission{}, fmt.Errorf("failed to reverse commission: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlDebitFounderBalance, commission.FounderID, commission.Amount); err != nil {
		s.logger.Error(ctx, "failed to debit founder balance", err)
		return Commission{}, fmt.Errorf("failed to debit founder balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Commission{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return commission, nil
}

const sqlGetCommissionByID = `
SELECT id, founder_id, commission_type, amount, status, payout_id, created_at, updated_at
FROM commissions
WHERE id = $1
`

// GetCommissionByID retrieves a commission by ID
func (s *Store) GetCommissionByID(ctx context.Context, commissionID uuid.UUID) (Commission, error) {
	var commission Commission
	err := s.db.GetContext(ctx, &commission, sqlGetCommissionByID, commissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Commission{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get commission by id", err)
		return Commission{}, fmt.Errorf("failed to get commission by id: %w", err)
	}
	return commission, nil
}

const sqlGetCommissionsByFounder = `
SELECT id, founder_id, commission_type, amount, status, payout_id, created_at, updated_at
FROM commissions
WHERE founder_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetCommissionsByFounder retrieves a founder's commissions with pagination
func (s *Store) GetCommissionsByFounder(ctx context.Context, founderID uuid.UUID, limit, offset int) ([]Commission, error) {
	var commissions []Commission
	err := s.db.SelectContext(ctx, &commissions, sqlGetCommissionsByFounder, founderID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get commissions by founder", err)
		return nil, fmt.Errorf("failed to get commissions by founder: %w", err)
	}
	return commissions, nil
}

const sqlCountCommissionsByFounder = `
SELECT COUNT(*)
FROM commissions
WHERE founder_id = $1
`

// CountCommissionsByFounder counts total commissions for a founder
func (s *Store) CountCommissionsByFounder(ctx context.Context, founderID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCommissionsByFounder, founderID)
	if err != nil {
		s.logger.Error(ctx, "failed to count commissions", err)
		return 0, fmt.Errorf("failed to count commissions: %w", err)
	}
	return count, nil
}

const sqlGetPendingBalance = `
SELECT pending_balance
FROM founder_accounts
WHERE id = $1
`

// GetPendingBalance reads a founder's unpaid, payout-eligible balance
func (s *Store) GetPendingBalance(ctx context.Context, founderID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.db.GetContext(ctx, &balance, sqlGetPendingBalance, founderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get pending balance", err)
		return decimal.Zero, fmt.Errorf("failed to get pending balance: %w", err)
	}
	return balance, nil
}
