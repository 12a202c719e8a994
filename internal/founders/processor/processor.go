package processor

import (
	"context"
	"errors"
	"founders-server/internal/observability"
	"founders-server/internal/store"
	"founders-server/internal/tiers"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrFounderNotFound     = errors.New("founder not found")
	ErrEmailRequired       = errors.New("email is required")
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidPayoutMethod = errors.New("invalid payout method")
	ErrInvalidStatus       = errors.New("invalid founder status")
)

type FounderProcessor struct {
	store       FounderStore
	codeGen     CodeGenerator
	notifier    WelcomeNotifier
	leaderboard LeaderboardMaintainer
	logger      *observability.Logger
}

func New(store FounderStore, codeGen CodeGenerator, notifier WelcomeNotifier,
	leaderboard LeaderboardMaintainer, logger *observability.Logger) FounderProcessor {
	return FounderProcessor{
		store:       store,
		codeGen:     codeGen,
		notifier:    notifier,
		leaderboard: leaderboard,
		logger:      logger,
	}
}

// Pagination represents pagination metadata
type Pagination struct {
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}

// EnrollFounderRequest represents a request to enroll in the founders program
type EnrollFounderRequest struct {
	Email             string
	Name              string
	PayoutMethod      string
	PayoutDestination *string
}

// EnrollFounder creates a founder account with a fresh referral code. Each
// email gets exactly one account; re-applying returns the existing one.
func (p *FounderProcessor) EnrollFounder(ctx context.Context, req EnrollFounderRequest) (store.Founder, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: email},
	)

	if email == "" {
		return store.Founder{}, ErrEmailRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return store.Founder{}, ErrNameRequired
	}
	if !store.IsValidPayoutMethod(req.PayoutMethod) {
		return store.Founder{}, ErrInvalidPayoutMethod
	}

	existing, err := p.store.GetFounderByEmail(ctx, email)
	if err == nil {
		p.logger.Info(ctx, "founder already enrolled, returning existing account")
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up founder by email", err)
		return store.Founder{}, err
	}

	code, err := p.codeGen.GenerateReferralCode(ctx, req.Name)
	if err != nil {
		p.logger.Error(ctx, "failed to generate referral code", err)
		return store.Founder{}, err
	}

	founder, err := p.store.CreateFounder(ctx, store.CreateFounderParams{
		Email:             email,
		Name:              strings.TrimSpace(req.Name),
		ReferralCode:      code,
		PayoutMethod:      req.PayoutMethod,
		PayoutDestination: req.PayoutDestination,
	})
	if err != nil {
		// Lost a race with a concurrent enrollment for the same email.
		if errors.Is(err, store.ErrAlreadyExists) {
			return p.store.GetFounderByEmail(ctx, email)
		}
		p.logger.Error(ctx, "failed to create founder", err)
		return store.Founder{}, err
	}

	if p.notifier != nil {
		if err := p.notifier.SendFounderWelcomeEmail(ctx, founder.Email, founder.Name, founder.ReferralCode); err != nil {
			p.logger.Error(ctx, "failed to send welcome email", err)
		}
	}

	p.logger.Info(ctx, "founder enrolled successfully")
	return founder, nil
}

// SetFounderStatus activates or deactivates a founder account. Deactivated
// founders stop accepting referrals and accruing commissions; their balance
// is untouched.
func (p *FounderProcessor) SetFounderStatus(ctx context.Context, founderID uuid.UUID, status string) (store.Founder, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
		observability.Field{Key: "status", Value: status},
	)

	if status != store.FounderStatusActive && status != store.FounderStatusInactive {
		return store.Founder{}, ErrInvalidStatus
	}

	if err := p.store.UpdateFounderStatus(ctx, founderID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Founder{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to update founder status", err)
		return store.Founder{}, err
	}

	founder, err := p.store.GetFounderByID(ctx, founderID)
	if err != nil {
		p.logger.Error(ctx, "failed to get founder after status update", err)
		return store.Founder{}, err
	}

	// Deactivated founders leave the leaderboard; they rejoin on their next
	// referral activation or a rebuild. Best-effort, the status change holds.
	if status == store.FounderStatusInactive && p.leaderboard != nil {
		if err := p.leaderboard.RemoveFounder(ctx, founderID); err != nil {
			p.logger.Error(ctx, "failed to remove founder from leaderboard", err)
		}
	}

	p.logger.Info(ctx, "founder status updated")
	return founder, nil
}

// UpdatePayoutMethodRequest represents a request to change how a founder gets paid
type UpdatePayoutMethodRequest struct {
	PayoutMethod      string
	PayoutDestination *string
	StripeAccountID   *string
}

// UpdatePayoutMethod changes the founder's payout method. Already open
// payouts keep the snapshot they were created with.
func (p *FounderProcessor) UpdatePayoutMethod(ctx context.Context, founderID uuid.UUID, req UpdatePayoutMethodRequest) (store.Founder, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
		observability.Field{Key: "payout_method", Value: req.PayoutMethod},
	)

	if !store.IsValidPayoutMethod(req.PayoutMethod) {
		return store.Founder{}, ErrInvalidPayoutMethod
	}

	founder, err := p.store.UpdateFounderPayoutMethod(ctx, founderID, store.UpdateFounderPayoutMethodParams{
		PayoutMethod:      req.PayoutMethod,
		PayoutDestination: req.PayoutDestination,
		StripeAccountID:   req.StripeAccountID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Founder{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to update payout method", err)
		return store.Founder{}, err
	}

	p.logger.Info(ctx, "payout method updated")
	return founder, nil
}

// DashboardResponse summarizes a founder's standing in the program
type DashboardResponse struct {
	Founder             store.Founder   `json:"founder"`
	CurrentTier         tiers.Tier      `json:"current_tier"`
	NextTier            *tiers.Tier     `json:"next_tier,omitempty"`
	ProgressPercent     float64         `json:"progress_percent"`
	ReferralsToNextTier int             `json:"referrals_to_next_tier"`
	PendingBalance      decimal.Decimal `json:"pending_balance"`
	LifetimeEarned      decimal.Decimal `json:"lifetime_earned"`
	LifetimePaid        decimal.Decimal `json:"lifetime_paid"`
}

// GetDashboard returns the founder's balances, counters and tier standing
func (p *FounderProcessor) GetDashboard(ctx context.Context, founderID uuid.UUID) (DashboardResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
	)

	founder, err := p.store.GetFounderByID(ctx, founderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DashboardResponse{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return DashboardResponse{}, err
	}

	result, err := tiers.Calculate(founder.TotalReferrals())
	if err != nil {
		p.logger.Error(ctx, "failed to calculate tier", err)
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Founder:             founder,
		CurrentTier:         result.CurrentTier,
		NextTier:            result.NextTier,
		ProgressPercent:     result.ProgressPercent,
		ReferralsToNextTier: result.ReferralsToNextTier,
		PendingBalance:      founder.PendingBalance,
		LifetimeEarned:      founder.TotalCommissionsEarned,
		LifetimePaid:        founder.TotalCommissionsPaid,
	}, nil
}

// ListFoundersRequest represents parameters for the admin founder table
type ListFoundersRequest struct {
	Page  int
	Limit int
}

// ListFoundersResponse represents the admin founder table
type ListFoundersResponse struct {
	Founders   []store.Founder `json:"founders"`
	Pagination Pagination      `json:"pagination"`
}

// ListFounders retrieves all founder accounts for the admin table
func (p *FounderProcessor) ListFounders(ctx context.Context, req ListFoundersRequest) (ListFoundersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	offset := (req.Page - 1) * req.Limit

	founders, err := p.store.ListFounders(ctx, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list founders", err)
		return ListFoundersResponse{}, err
	}
	if founders == nil {
		founders = []store.Founder{}
	}

	totalCount, err := p.store.CountFounders(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count founders", err)
		return ListFoundersResponse{}, err
	}

	hasMore := (req.Page * req.Limit) < totalCount

	return ListFoundersResponse{
		Founders: founders,
		Pagination: Pagination{
			HasMore:    hasMore,
			TotalCount: totalCount,
		},
	}, nil
}
