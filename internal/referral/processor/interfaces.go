package processor

import (
	"context"
	"founders-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	GetFounderByID(ctx context.Context, founderID uuid.UUID) (store.Founder, error)
	GetFounderByReferralCode(ctx context.Context, referralCode string) (store.Founder, error)
	CheckReferralCodeExists(ctx context.Context, referralCode string) (bool, error)
	CreateReferralAndCount(ctx context.Context, params store.CreateReferralParams) (store.Referral, error)
	ActivateReferral(ctx context.Context, referralID uuid.UUID) (store.Referral, error)
	GetReferralsByFounder(ctx context.Context, founderID uuid.UUID, limit, offset int) ([]store.Referral, error)
	CountReferralsByFounder(ctx context.Context, founderID uuid.UUID) (int, error)
	CountActiveReferralsByFounder(ctx context.Context, founderID uuid.UUID) (int, error)
}

// LeaderboardService records referral activations for ranking
type LeaderboardService interface {
	RecordActivation(ctx context.Context, founderID uuid.UUID, activeReferrals int) error
}

// ActivationNotifier sends referral activation notifications
type ActivationNotifier interface {
	SendReferralActivatedEmail(ctx context.Context, to, name, referredEmail, tierName string) error
}
