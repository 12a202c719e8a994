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

// Payout represents a batch transfer of a founder's accumulated balance
type Payout struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	FounderID     uuid.UUID       `db:"founder_id" json:"founder_id"`
	PayoutPeriod  string          `db:"payout_period" json:"payout_period"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PayoutMethod  string          `db:"payout_method" json:"payout_method"`
	PayoutDetails JSONB           `db:"payout_details" json:"payout_details"`
	Status        string          `db:"status" json:"status"`
	TransferID    *string         `db:"transfer_id" json:"transfer_id,omitempty"`
	ProcessedAt   *time.Time      `db:"processed_at" json:"processed_at,omitempty"`
	Notes         *string         `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

const payoutColumns = `id, founder_id, payout_period, amount, payout_method, payout_details,
       status, transfer_id, processed_at, notes, created_at, updated_at`

// CreatePayoutParams represents parameters for creating a payout
type CreatePayoutParams struct {
	FounderID     uuid.UUID
	PayoutPeriod  string
	PayoutMethod  string
	PayoutDetails JSONB
	MinimumAmount decimal.Decimal
}

const sqlLockFounderBalance = `
SELECT pending_balance
FROM founder_accounts
WHERE id = $1
FOR UPDATE
`

const sqlOpenPayoutExists = `
SELECT EXISTS(SELECT 1
              FROM payouts
              WHERE founder_id = $1 AND status IN ('pending', 'processing'))`

const sqlInsertPayout = `
INSERT INTO payouts (founder_id, payout_period, amount, payout_method, payout_details, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
RETURNING ` + payoutColumns

const sqlDrainFounderBalance = `
UPDATE founder_accounts
SET pending_balance = pending_balance - $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlSweepCommissionsIntoPayout = `
UPDATE commissions
SET payout_id = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE founder_id = $1 AND status = 'approved' AND payout_id IS NULL
`

// CreatePayoutAndDrainBalance snapshots the founder's pending balance into a
// new pending payout and subtracts exactly that amount from the balance, all
// under a row lock so a concurrently accrued commission is never lost and two
// admins cannot drain the same balance twice. Approved commissions not yet
// attached to a payout are swept into the new one.
//
// Returns ErrPayoutInFlight when an open payout exists and
// ErrInsufficientBalance when the locked balance is below MinimumAmount.
func (s *Store) CreatePayoutAndDrainBalance(ctx context.Context, params CreatePayoutParams) (Payout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Payout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var balance decimal.Decimal
	err = tx.GetContext(ctx, &balance, sqlLockFounderBalance, params.FounderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
			return Payout{}, err
		}
		s.logger.Error(ctx, "failed to lock founder balance", err)
		return Payout{}, fmt.Errorf("failed to lock founder balance: %w", err)
	}

	var openExists bool
	err = tx.GetContext(ctx, &openExists, sqlOpenPayoutExists, params.FounderID)
	if err != nil {
		s.logger.Error(ctx, "failed to check open payouts", err)
		return Payout{}, fmt.Errorf("failed to check open payouts: %w", err)
	}
	if openExists {
		err = ErrPayoutInFlight
		return Payout{}, err
	}

	if balance.LessThan(params.MinimumAmount) {
		err = ErrInsufficientBalance
		return Payout{}, err
	}

	var payout Payout
	err = tx.GetContext(ctx, &payout, sqlInsertPayout,
		params.FounderID,
		params.PayoutPeriod,
		balance,
		params.PayoutMethod,
		params.PayoutDetails)
	if err != nil {
		s.logger.Error(ctx, "failed to insert payout", err)
		return Payout{}, fmt.Errorf("failed to insert payout: %w", err)
	}

	// Subtract the snapshot, never set to zero: commissions accrued between
	// the balance read and this write stay on the account.
	if _, err = tx.ExecContext(ctx, sqlDrainFounderBalance, params.FounderID, balance); err != nil {
		s.logger.Error(ctx, "failed to drain founder balance", err)
		return Payout{}, fmt.Errorf("failed to drain founder balance: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlSweepCommissionsIntoPayout, params.FounderID, payout.ID); err != nil {
		s.logger.Error(ctx, "failed to sweep commissions into payout", err)
		return Payout{}, fmt.Errorf("failed to sweep commissions into payout: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Payout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlCompletePayout = `
UPDATE payouts
SET status = 'completed',
    processed_at = CURRENT_TIMESTAMP,
    notes = COALESCE($2, notes),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('pending', 'processing')
RETURNING ` + payoutColumns

const sqlCreditCommissionsPaid = `
UPDATE founder_accounts
SET total_commissions_paid = total_commissions_paid + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlMarkSweptCommissionsPaid = `
UPDATE commissions
SET status = 'paid',
    updated_at = CURRENT_TIMESTAMP
WHERE payout_id = $1 AND status = 'approved'
`

// CompletePayoutAndCredit marks an open payout completed, stamps processed_at,
// adds the snapshot amount to the founder's lifetime paid total, and marks the
// swept commissions paid. The pending balance was already drained at creation.
// A payout that is not pending or processing returns ErrInvalidTransition, so
// a double completion can never credit the paid total twice.
func (s *Store) CompletePayoutAndCredit(ctx context.Context, payoutID uuid.UUID, notes *string) (Payout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Payout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var payout Payout
	err = tx.GetContext(ctx, &payout, sqlCompletePayout, payoutID, notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPayoutByID(ctx, payoutID); getErr != nil {
				err = getErr
				return Payout{}, err
			}
			err = ErrInvalidTransition
			return Payout{}, err
		}
		s.logger.Error(ctx, "failed to complete payout", err)
		return Payout{}, fmt.Errorf("failed to complete payout: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlCreditCommissionsPaid, payout.FounderID, payout.Amount); err != nil {
		s.logger.Error(ctx, "failed to credit commissions paid", err)
		return Payout{}, fmt.Errorf("failed to credit commissions paid: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlMarkSweptCommissionsPaid, payout.ID); err != nil {
		s.logger.Error(ctx, "failed to mark commissions paid", err)
		return Payout{}, fmt.Errorf("failed to mark commissions paid: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Payout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlCancelPayout = `
UPDATE payouts
SET status = 'failed',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('pending', 'processing')
RETURNING ` + payoutColumns

const sqlRestoreFounderBalance = `
UPDATE founder_accounts
SET pending_balance = pending_balance + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlReleaseSweptCommissions = `
UPDATE commissions
SET payout_id = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE payout_id = $1 AND status = 'approved'
`

// CancelPayoutAndRestore marks an open payout failed and adds its snapshot
// amount back onto the founder's pending balance. The restore is additive,
// commissions accrued since creation are preserved. Swept commissions are
// released so a later payout can pick them up. Completed payouts are
// immutable and return ErrInvalidTransition.
func (s *Store) CancelPayoutAndRestore(ctx context.Context, payoutID uuid.UUID) (Payout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Payout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var payout Payout
	err = tx.GetContext(ctx, &payout, sqlCancelPayout, payoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPayoutByID(ctx, payoutID); getErr != nil {
				err = getErr
				return Payout{}, err
			}
			err = ErrInvalidTransition
			return Payout{}, err
		}
		s.logger.Error(ctx, "failed to cancel payout", err)
		return Payout{}, fmt.Errorf("failed to cancel payout: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlRestoreFounderBalance, payout.FounderID, payout.Amount); err != nil {
		s.logger.Error(ctx, "failed to restore founder balance", err)
		return Payout{}, fmt.Errorf("failed to restore founder balance: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlReleaseSweptCommissions, payout.ID); err != nil {
		s.logger.Error(ctx, "failed to release swept commissions", err)
		return Payout{}, fmt.Errorf("failed to release swept commissions: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Payout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlMarkPayoutProcessing = `
UPDATE payouts
SET status = 'processing',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + payoutColumns

// MarkPayoutProcessing claims a pending payout for processing. The pending-only
// guard makes it a compare-and-swap, so exactly one concurrent caller wins.
func (s *Store) MarkPayoutProcessing(ctx context.Context, payoutID uuid.UUID) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlMarkPayoutProcessing, payoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPayoutByID(ctx, payoutID); getErr != nil {
				return Payout{}, getErr
			}
			return Payout{}, ErrInvalidTransition
		}
		s.logger.Error(ctx, "failed to mark payout processing", err)
		return Payout{}, fmt.Errorf("failed to mark payout processing: %w", err)
	}
	return payout, nil
}

const sqlRecordPayoutTransfer = `
UPDATE payouts
SET transfer_id = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
RETURNING ` + payoutColumns

// RecordPayoutTransfer attaches the external transfer reference to a payout
// that is being processed
func (s *Store) RecordPayoutTransfer(ctx context.Context, payoutID uuid.UUID, transferID string) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlRecordPayoutTransfer, payoutID, transferID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPayoutByID(ctx, payoutID); getErr != nil {
				return Payout{}, getErr
			}
			return Payout{}, ErrInvalidTransition
		}
		s.logger.Error(ctx, "failed to record payout transfer", err)
		return Payout{}, fmt.Errorf("failed to record payout transfer: %w", err)
	}
	return payout, nil
}

const sqlReopenPayout = `
UPDATE payouts
SET status = 'pending',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing' AND transfer_id IS NULL
RETURNING ` + payoutColumns

// ReopenPayout releases a processing claim whose transfer never happened,
// returning the payout to pending so it can be retried
func (s *Store) ReopenPayout(ctx context.Context, payoutID uuid.UUID) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlReopenPayout, payoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPayoutByID(ctx, payoutID); getErr != nil {
				return Payout{}, getErr
			}
			return Payout{}, ErrInvalidTransition
		}
		s.logger.Error(ctx, "failed to reopen payout", err)
		return Payout{}, fmt.Errorf("failed to reopen payout: %w", err)
	}
	return payout, nil
}

const sqlGetPayoutByID = `
SELECT ` + payoutColumns + `
FROM payouts
WHERE id = $1
`

// GetPayoutByID retrieves a payout by ID
func (s *Store) GetPayoutByID(ctx context.Context, payoutID uuid.UUID) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlGetPayoutByID, payoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payout{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get payout by id", err)
		return Payout{}, fmt.Errorf("failed to get payout by id: %w", err)
	}
	return payout, nil
}

const sqlGetPayoutsByFounder = `
SELECT ` + payoutColumns + `
FROM payouts
WHERE founder_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetPayoutsByFounder retrieves a founder's payouts with pagination
func (s *Store) GetPayoutsByFounder(ctx context.Context, founderID uuid.UUID, limit, offset int) ([]Payout, error) {
	var payouts []Payout
	err := s.db.SelectContext(ctx, &payouts, sqlGetPayoutsByFounder, founderID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get payouts by founder", err)
		return nil, fmt.Errorf("failed to get payouts by founder: %w", err)
	}
	return payouts, nil
}

const sqlCountPayoutsByFounder = `
SELECT COUNT(*)
FROM payouts
WHERE founder_id = $1
`

// CountPayoutsByFounder counts all payouts for a founder
func (s *Store) CountPayoutsByFounder(ctx context.Context, founderID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountPayoutsByFounder, founderID)
	if err != nil {
		s.logger.Error(ctx, "failed to count payouts by founder", err)
		return 0, fmt.Errorf("failed to count payouts by founder: %w", err)
	}
	return count, nil
}

const sqlGetOpenPayoutByFounder = `
SELECT ` + payoutColumns + `
FROM payouts
WHERE founder_id = $1 AND status IN ('pending', 'processing')
`

// GetOpenPayoutByFounder retrieves the founder's single non-terminal payout
func (s *Store) GetOpenPayoutByFounder(ctx context.Context, founderID uuid.UUID) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlGetOpenPayoutByFounder, founderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payout{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get open payout", err)
		return Payout{}, fmt.Errorf("failed to get open payout: %w", err)
	}
	return payout, nil
}

const sqlListPayoutsWithStatusFilter = `
SELECT ` + payoutColumns + `
FROM payouts
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListPayoutsWithStatusFilter retrieves payouts across founders for the admin table
func (s *Store) ListPayoutsWithStatusFilter(ctx context.Context, status *string, limit, offset int) ([]Payout, error) {
	var payouts []Payout
	err := s.db.SelectContext(ctx, &payouts, sqlListPayoutsWithStatusFilter, status, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list payouts", err)
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

const sqlCountPayoutsWithStatusFilter = `
SELECT COUNT(*)
FROM payouts
WHERE ($1::text IS NULL OR status = $1)
`

// CountPayoutsWithStatusFilter counts payouts matching the admin table filter
func (s *Store) CountPayoutsWithStatusFilter(ctx context.Context, status *string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountPayoutsWithStatusFilter, status)
	if err != nil {
		s.logger.Error(ctx, "failed to count payouts", err)
		return 0, fmt.Errorf("failed to count payouts: %w", err)
	}
	return count, nil
}
