package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Referral represents a signup attributed to a founder's referral code
type Referral struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	FounderID     uuid.UUID  `db:"founder_id" json:"founder_id"`
	ReferredEmail string     `db:"referred_email" json:"referred_email"`
	ReferredType  string     `db:"referred_type" json:"referred_type"`
	Status        string     `db:"status" json:"status"`
	ActivatedAt   *time.Time `db:"activated_at" json:"activated_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// CreateReferralParams represents parameters for recording a referral
type CreateReferralParams struct {
	FounderID     uuid.UUID
	ReferredEmail string
	ReferredType  string
}

const sqlCreateReferral = `
INSERT INTO referrals (founder_id, referred_email, referred_type, status)
VALUES ($1, $2, $3, 'pending')
RETURNING id, founder_id, referred_email, referred_type, status, activated_at, created_at, updated_at
`

const sqlIncrementMemberReferrals = `
UPDATE founder_accounts
SET total_member_referrals = total_member_referrals + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

const sqlIncrementProviderReferrals = `
UPDATE founder_accounts
SET total_provider_referrals = total_provider_referrals + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// CreateReferralAndCount inserts a referral and increments the founder's
// referral counter in one transaction. The unique constraint on referred_email
// makes the first write win; a second attempt for the same identity returns
// ErrAlreadyExists and leaves the counter untouched.
func (s *Store) CreateReferralAndCount(ctx context.Context, params CreateReferralParams) (Referral, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Referral{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var referral Referral
	err = tx.GetContext(ctx, &referral, sqlCreateReferral,
		params.FounderID,
		params.ReferredEmail,
		params.ReferredType)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Referral{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create referral", err)
		return Referral{}, fmt.Errorf("failed to create referral: %w", err)
	}

	counterQuery := sqlIncrementMemberReferrals
	if params.ReferredType == ReferredTypeProvider {
		counterQuery = sqlIncrementProviderReferrals
	}
	if _, err = tx.ExecContext(ctx, counterQuery, params.FounderID); err != nil {
		s.logger.Error(ctx, "failed to increment referral counter", err)
		return Referral{}, fmt.Errorf("failed to increment referral counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Referral{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return referral, nil
}

const sqlGetReferralByID = `
SELECT id, founder_id, referred_email, referred_type, status, activated_at, created_at, updated_at
FROM referrals
WHERE id = $1
`

// GetReferralByID retrieves a referral by ID
func (s *Store) GetReferralByID(ctx context.Context, referralID uuid.UUID) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByID, referralID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by id", err)
		return Referral{}, fmt.Errorf("failed to get referral by id: %w", err)
	}
	return referral, nil
}

const sqlGetReferralByEmail = `
SELECT id, founder_id, referred_email, referred_type, status, activated_at, created_at, updated_at
FROM referrals
WHERE referred_email = $1
`

// GetReferralByEmail retrieves the referral attributed to a referred identity
func (s *Store) GetReferralByEmail(ctx context.Context, referredEmail string) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByEmail, referredEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by email", err)
		return Referral{}, fmt.Errorf("failed to get referral by email: %w", err)
	}
	return referral, nil
}

const sqlGetReferralsByFounder = `
SELECT id, founder_id, referred_email, referred_type, status, activated_at, created_at, updated_at
FROM referrals
WHERE founder_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetReferralsByFounder retrieves a founder's referrals with pagination
func (s *Store) GetReferralsByFounder(ctx context.Context, founderID uuid.UUID, limit, offset int) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlGetReferralsByFounder, founderID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get referrals by founder", err)
		return nil, fmt.Errorf("failed to get referrals by founder: %w", err)
	}
	return referrals, nil
}

const sqlCountReferralsByFounder = `
SELECT COUNT(*)
FROM referrals
WHERE founder_id = $1
`

// CountReferralsByFounder counts total referrals for a founder
func (s *Store) CountReferralsByFounder(ctx context.Context, founderID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferralsByFounder, founderID)
	if err != nil {
		s.logger.Error(ctx, "failed to count referrals", err)
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}
	return count, nil
}

const sqlCountActiveReferralsByFounder = `
SELECT COUNT(*)
FROM referrals
WHERE founder_id = $1 AND status = 'active'
`

// CountActiveReferralsByFounder counts referrals that completed signup
func (s *Store) CountActiveReferralsByFounder(ctx context.Context, founderID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountActiveReferralsByFounder, founderID)
	if err != nil {
		s.logger.Error(ctx, "failed to count active referrals", err)
		return 0, fmt.Errorf("failed to count active referrals: %w", err)
	}
	return count, nil
}

const sqlActiveReferralCountsByFounder = `
SELECT founder_id, COUNT(*) AS active_count
FROM referrals
WHERE status = 'active'
GROUP BY founder_id
`

// FounderActiveCount pairs a founder with their active referral count.
type FounderActiveCount struct {
	FounderID   uuid.UUID `db:"founder_id"`
	ActiveCount int       `db:"active_count"`
}

// ActiveReferralCountsByFounder returns active referral counts grouped by
// founder, used to rebuild the leaderboard from the database.
func (s *Store) ActiveReferralCountsByFounder(ctx context.Context) ([]FounderActiveCount, error) {
	var counts []FounderActiveCount
	err := s.db.SelectContext(ctx, &counts, sqlActiveReferralCountsByFounder)
	if err != nil {
		s.logger.Error(ctx, "failed to load active referral counts", err)
		return nil, fmt.Errorf("failed to load active referral counts: %w", err)
	}
	return counts, nil
}

const sqlActivateReferral = `
UPDATE referrals
SET status = 'active',
    activated_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING id, founder_id, referred_email, referred_type, status, activated_at, created_at, updated_at
`

// ActivateReferral marks a pending referral active once the referred entity
// completes signup. Returns ErrInvalidTransition if the referral is not pending.
func (s *Store) ActivateReferral(ctx context.Context, referralID uuid.UUID) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlActivateReferral, referralID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a missing row from a non-pending one
			if _, getErr := s.GetReferralByID(ctx, referralID); getErr != nil {
				return Referral{}, getErr
			}
			return Referral{}, ErrInvalidTransition
		}
		s.logger.Error(ctx, "failed to activate referral", err)
		return Referral{}, fmt.Errorf("failed to activate referral: %w", err)
	}
	return referral, nil
}
