package processor

import (
	"context"
	"founders-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// FounderStore defines the database operations required by FounderProcessor
type FounderStore interface {
	CreateFounder(ctx context.Context, params store.CreateFounderParams) (store.Founder, error)
	GetFounderByID(ctx context.Context, founderID uuid.UUID) (store.Founder, error)
	GetFounderByEmail(ctx context.Context, email string) (store.Founder, error)
	UpdateFounderStatus(ctx context.Context, founderID uuid.UUID, status string) error
	UpdateFounderPayoutMethod(ctx context.Context, founderID uuid.UUID, params store.UpdateFounderPayoutMethodParams) (store.Founder, error)
	ListFounders(ctx context.Context, limit, offset int) ([]store.Founder, error)
	CountFounders(ctx context.Context) (int, error)
}

// CodeGenerator produces unique referral codes for new founders
type CodeGenerator interface {
	GenerateReferralCode(ctx context.Context, name string) (string, error)
}

// LeaderboardMaintainer drops founders from the ranking on deactivation
type LeaderboardMaintainer interface {
	RemoveFounder(ctx context.Context, founderID uuid.UUID) error
}

// WelcomeNotifier sends enrollment notifications
type WelcomeNotifier interface {
	SendFounderWelcomeEmail(ctx context.Context, to, name, referralCode string) error
}
