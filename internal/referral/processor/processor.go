package processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"founders-server/internal/observability"
	"founders-server/internal/store"
	"founders-server/internal/tiers"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFounderNotFound         = errors.New("founder not found")
	ErrFounderInactive         = errors.New("founder is not active")
	ErrUnknownReferralCode     = errors.New("unknown referral code")
	ErrReferralNotFound        = errors.New("referral not found")
	ErrReferralAlreadyActive   = errors.New("referral is already active")
	ErrAlreadyReferred         = errors.New("email has already been referred")
	ErrInvalidReferredType     = errors.New("invalid referred type")
	ErrEmailRequired           = errors.New("referred email is required")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique referral code")
)

const maxCodeGenerationAttempts = 5

type ReferralProcessor struct {
	store       ReferralStore
	leaderboard LeaderboardService
	notifier    ActivationNotifier
	logger      *observability.Logger
}

func New(store ReferralStore, leaderboard LeaderboardService, notifier ActivationNotifier,
	logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:       store,
		leaderboard: leaderboard,
		notifier:    notifier,
		logger:      logger,
	}
}

// Pagination represents pagination metadata
type Pagination struct {
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}

// RegisterReferralRequest represents a request to register a referral
type RegisterReferralRequest struct {
	ReferralCode  string
	ReferredEmail string
	ReferredType  string
}

// RegisterReferral records that a new signup came through a founder's referral
// code. The first founder to refer an email wins; later attempts for the same
// email are rejected.
func (p *ReferralProcessor) RegisterReferral(ctx context.Context, req RegisterReferralRequest) (store.Referral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_code", Value: req.ReferralCode},
	)

	referredEmail := strings.ToLower(strings.TrimSpace(req.ReferredEmail))
	if referredEmail == "" {
		return store.Referral{}, ErrEmailRequired
	}

	if !store.IsValidReferredType(req.ReferredType) {
		return store.Referral{}, ErrInvalidReferredType
	}

	founder, err := p.store.GetFounderByReferralCode(ctx, req.ReferralCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Referral{}, ErrUnknownReferralCode
		}
		p.logger.Error(ctx, "failed to get founder by referral code", err)
		return store.Referral{}, err
	}

	if founder.Status != store.FounderStatusActive {
		return store.Referral{}, ErrFounderInactive
	}

	referral, err := p.store.CreateReferralAndCount(ctx, store.CreateReferralParams{
		FounderID:     founder.ID,
		ReferredEmail: referredEmail,
		ReferredType:  req.ReferredType,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.Referral{}, ErrAlreadyReferred
		}
		p.logger.Error(ctx, "failed to create referral", err)
		return store.Referral{}, err
	}

	p.logger.Info(ctx, "referral registered successfully")
	return referral, nil
}

// ActivateReferral marks a pending referral as active once the referred
// signup becomes a paying member or provider. Activation is one-way.
func (p *ReferralProcessor) ActivateReferral(ctx context.Context, referralID uuid.UUID) (store.Referral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_id", Value: referralID.String()},
	)

	referral, err := p.store.ActivateReferral(ctx, referralID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Referral{}, ErrReferralNotFound
		case errors.Is(err, store.ErrInvalidTransition):
			return store.Referral{}, ErrReferralAlreadyActive
		}
		p.logger.Error(ctx, "failed to activate referral", err)
		return store.Referral{}, err
	}

	// Side effects are best-effort; the activation itself is already durable.
	activeCount, err := p.store.CountActiveReferralsByFounder(ctx, referral.FounderID)
	if err != nil {
		p.logger.Error(ctx, "failed to count active referrals for leaderboard", err)
	} else if p.leaderboard != nil {
		if err := p.leaderboard.RecordActivation(ctx, referral.FounderID, activeCount); err != nil {
			p.logger.Error(ctx, "failed to update leaderboard", err)
		}
	}

	if p.notifier != nil {
		founder, err := p.store.GetFounderByID(ctx, referral.FounderID)
		if err != nil {
			p.logger.Error(ctx, "failed to get founder for activation email", err)
		} else {
			result, err := tiers.Calculate(founder.TotalReferrals())
			tierName := ""
			if err == nil {
				tierName = result.CurrentTier.DisplayName
			}
			if err := p.notifier.SendReferralActivatedEmail(ctx, founder.Email, founder.Name,
				referral.ReferredEmail, tierName); err != nil {
				p.logger.Error(ctx, "failed to send referral activated email", err)
			}
		}
	}

	p.logger.Info(ctx, "referral activated successfully")
	return referral, nil
}

// GetFounderReferralsRequest represents parameters for listing a founder's referrals
type GetFounderReferralsRequest struct {
	Page  int
	Limit int
}

// GetFounderReferralsResponse represents a founder's referrals
type GetFounderReferralsResponse struct {
	Referrals       []store.Referral `json:"referrals"`
	TotalReferrals  int              `json:"total_referrals"`
	ActiveReferrals int              `json:"active_referrals"`
	Pagination      Pagination       `json:"pagination"`
}

// GetFounderReferrals retrieves all referrals made by a founder
func (p *ReferralProcessor) GetFounderReferrals(ctx context.Context, founderID uuid.UUID, req GetFounderReferralsRequest) (GetFounderReferralsResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
	)

	if _, err := p.store.GetFounderByID(ctx, founderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GetFounderReferralsResponse{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return GetFounderReferralsResponse{}, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	offset := (req.Page - 1) * req.Limit

	referrals, err := p.store.GetReferralsByFounder(ctx, founderID, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to get founder referrals", err)
		return GetFounderReferralsResponse{}, err
	}
	if referrals == nil {
		referrals = []store.Referral{}
	}

	totalCount, err := p.store.CountReferralsByFounder(ctx, founderID)
	if err != nil {
		p.logger.Error(ctx, "failed to count founder referrals", err)
		return GetFounderReferralsResponse{}, err
	}

	activeCount, err := p.store.CountActiveReferralsByFounder(ctx, founderID)
	if err != nil {
		p.logger.Error(ctx, "failed to count active referrals", err)
		return GetFounderReferralsResponse{}, err
	}

	hasMore := (req.Page * req.Limit) < totalCount

	return GetFounderReferralsResponse{
		Referrals:       referrals,
		TotalReferrals:  totalCount,
		ActiveReferrals: activeCount,
		Pagination: Pagination{
			HasMore:    hasMore,
			TotalCount: totalCount,
		},
	}, nil
}

// GetFounderTierResponse represents a founder's tier standing
type GetFounderTierResponse struct {
	CurrentTier         tiers.Tier      `json:"current_tier"`
	NextTier            *tiers.Tier     `json:"next_tier,omitempty"`
	ProgressPercent     float64         `json:"progress_percent"`
	ReferralsToNextTier int             `json:"referrals_to_next_tier"`
	TotalReferrals      int             `json:"total_referrals"`
	MemberReferrals     int             `json:"member_referrals"`
	ProviderReferrals   int             `json:"provider_referrals"`
}

// GetFounderTier computes the founder's current tier from their lifetime
// referral counters
func (p *ReferralProcessor) GetFounderTier(ctx context.Context, founderID uuid.UUID) (GetFounderTierResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
	)

	founder, err := p.store.GetFounderByID(ctx, founderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GetFounderTierResponse{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return GetFounderTierResponse{}, err
	}

	result, err := tiers.Calculate(founder.TotalReferrals())
	if err != nil {
		p.logger.Error(ctx, "failed to calculate tier", err)
		return GetFounderTierResponse{}, err
	}

	return GetFounderTierResponse{
		CurrentTier:         result.CurrentTier,
		NextTier:            result.NextTier,
		ProgressPercent:     result.ProgressPercent,
		ReferralsToNextTier: result.ReferralsToNextTier,
		TotalReferrals:      founder.TotalReferrals(),
		MemberReferrals:     founder.TotalMemberReferrals,
		ProviderReferrals:   founder.TotalProviderReferrals,
	}, nil
}

// GenerateReferralCode builds a unique code of the form LLLLDDDD from the
// founder's name: four uppercase letters padded with X, then four random
// digits. Retries on collision.
func (p *ReferralProcessor) GenerateReferralCode(ctx context.Context, name string) (string, error) {
	prefix := codePrefix(name)

	for attempt := 0; attempt < maxCodeGenerationAttempts; attempt++ {
		digits, err := randomDigits(4)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digits: %w", err)
		}
		code := prefix + digits

		exists, err := p.store.CheckReferralCodeExists(ctx, code)
		if err != nil {
			p.logger.Error(ctx, "failed to check referral code uniqueness", err)
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrCodeGenerationExhausted
}

func codePrefix(name string) string {
	var letters []rune
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
			if len(letters) == 4 {
				break
			}
		}
	}
	for len(letters) < 4 {
		letters = append(letters, 'X')
	}
	return string(letters)
}

func randomDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteString(d.String())
	}
	return b.String(), nil
}
