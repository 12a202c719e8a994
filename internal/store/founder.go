package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Founder represents a member-founder program account
type Founder struct {
	ID                     uuid.UUID       `db:"id" json:"id"`
	Email                  string          `db:"email" json:"email"`
	Name                   string          `db:"name" json:"name"`
	ReferralCode           string          `db:"referral_code" json:"referral_code"`
	Status                 string          `db:"status" json:"status"`
	PayoutMethod           string          `db:"payout_method" json:"payout_method"`
	PayoutDestination      *string         `db:"payout_destination" json:"payout_destination,omitempty"`
	StripeAccountID        *string         `db:"stripe_account_id" json:"stripe_account_id,omitempty"`
	PendingBalance         decimal.Decimal `db:"pending_balance" json:"pending_balance"`
	TotalCommissionsEarned decimal.Decimal `db:"total_commissions_earned" json:"total_commissions_earned"`
	TotalCommissionsPaid   decimal.Decimal `db:"total_commissions_paid" json:"total_commissions_paid"`
	TotalMemberReferrals   int             `db:"total_member_referrals" json:"total_member_referrals"`
	TotalProviderReferrals int             `db:"total_provider_referrals" json:"total_provider_referrals"`
	CreatedAt              time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at" json:"updated_at"`
}

// TotalReferrals returns the combined member and provider referral count
func (f Founder) TotalReferrals() int {
	return f.TotalMemberReferrals + f.TotalProviderReferrals
}

const founderColumns = `id, email, name, referral_code, status, payout_method, payout_destination,
       stripe_account_id, pending_balance, total_commissions_earned, total_commissions_paid,
       total_member_referrals, total_provider_referrals, created_at, updated_at`

// CreateFounderParams represents parameters for enrolling a founder
type CreateFounderParams struct {
	Email             string
	Name              string
	ReferralCode      string
	PayoutMethod      string
	PayoutDestination *string
}

const sqlCreateFounder = `
INSERT INTO founder_accounts (email, name, referral_code, status, payout_method, payout_destination)
VALUES ($1, $2, $3, 'active', $4, $5)
RETURNING ` + founderColumns

// CreateFounder enrolls a new founder account
func (s *Store) CreateFounder(ctx context.Context, params CreateFounderParams) (Founder, error) {
	var founder Founder
	err := s.db.GetContext(ctx, &founder, sqlCreateFounder,
		params.Email,
		params.Name,
		params.ReferralCode,
		params.PayoutMethod,
		params.PayoutDestination)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Founder{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create founder", err)
		return Founder{}, fmt.Errorf("failed to create founder: %w", err)
	}
	return founder, nil
}

const sqlGetFounderByID = `
SELECT ` + founderColumns + `
FROM founder_accounts
WHERE id = $1
`

// GetFounderByID retrieves a founder account by ID
func (s *Store) GetFounderByID(ctx context.Context, founderID uuid.UUID) (Founder, error) {
	var founder Founder
	err := s.db.GetContext(ctx, &founder, sqlGetFounderByID, founderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Founder{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get founder by id", err)
		return Founder{}, fmt.Errorf("failed to get founder by id: %w", err)
	}
	return founder, nil
}

const sqlGetFounderByEmail = `
SELECT ` + founderColumns + `
FROM founder_accounts
WHERE email = $1
`

// GetFounderByEmail retrieves a founder account by email
func (s *Store) GetFounderByEmail(ctx context.Context, email string) (Founder, error) {
	var founder Founder
	err := s.db.GetContext(ctx, &founder, sqlGetFounderByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Founder{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get founder by email", err)
		return Founder{}, fmt.Errorf("failed to get founder by email: %w", err)
	}
	return founder, nil
}

const sqlGetFounderByReferralCode = `
SELECT ` + founderColumns + `
FROM founder_accounts
WHERE referral_code = $1
`

// GetFounderByReferralCode retrieves a founder account by referral code
func (s *Store) GetFounderByReferralCode(ctx context.Context, referralCode string) (Founder, error) {
	var founder Founder
	err := s.db.GetContext(ctx, &founder, sqlGetFounderByReferralCode, referralCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Founder{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get founder by referral code", err)
		return Founder{}, fmt.Errorf("failed to get founder by referral code: %w", err)
	}
	return founder, nil
}

const sqlCheckReferralCodeExists = `
SELECT EXISTS(SELECT 1
              FROM founder_accounts
              WHERE referral_code = $1)`

// CheckReferralCodeExists reports whether a referral code is already assigned
func (s *Store) CheckReferralCodeExists(ctx context.Context, referralCode string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlCheckReferralCodeExists, referralCode)
	if err != nil {
		s.logger.Error(ctx, "failed to check referral code", err)
		return false, fmt.Errorf("failed to check referral code: %w", err)
	}
	return exists, nil
}

const sqlUpdateFounderStatus = `
UPDATE founder_accounts
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateFounderStatus flips a founder's status; accounts are never deleted
func (s *Store) UpdateFounderStatus(ctx context.Context, founderID uuid.UUID, status string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateFounderStatus, founderID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to update founder status", err)
		return fmt.Errorf("failed to update founder status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateFounderPayoutMethodParams represents a payout preference change
type UpdateFounderPayoutMethodParams struct {
	PayoutMethod      string
	PayoutDestination *string
	StripeAccountID   *string
}

const sqlUpdateFounderPayoutMethod = `
UPDATE founder_accounts
SET payout_method = $2,
    payout_destination = $3,
    stripe_account_id = COALESCE($4, stripe_account_id),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + founderColumns

// UpdateFounderPayoutMethod updates a founder's payout preference
func (s *Store) UpdateFounderPayoutMethod(ctx context.Context, founderID uuid.UUID, params UpdateFounderPayoutMethodParams) (Founder, error) {
	var founder Founder
	err := s.db.GetContext(ctx, &founder, sqlUpdateFounderPayoutMethod,
		founderID,
		params.PayoutMethod,
		params.PayoutDestination,
		params.StripeAccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Founder{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update founder payout method", err)
		return Founder{}, fmt.Errorf("failed to update founder payout method: %w", err)
	}
	return founder, nil
}

const sqlListFounders = `
SELECT ` + founderColumns + `
FROM founder_accounts
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListFounders retrieves founder accounts with pagination
func (s *Store) ListFounders(ctx context.Context, limit, offset int) ([]Founder, error) {
	var founders []Founder
	err := s.db.SelectContext(ctx, &founders, sqlListFounders, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list founders", err)
		return nil, fmt.Errorf("failed to list founders: %w", err)
	}
	return founders, nil
}

const sqlCountFounders = `
SELECT COUNT(*)
FROM founder_accounts
`

// CountFounders counts all founder accounts
func (s *Store) CountFounders(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountFounders)
	if err != nil {
		s.logger.Error(ctx, "failed to count founders", err)
		return 0, fmt.Errorf("failed to count founders: %w", err)
	}
	return count, nil
}
