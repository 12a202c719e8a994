package processor

import (
	"context"
	"founders-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// PayoutStore defines the database operations required by PayoutProcessor
type PayoutStore interface {
	GetFounderByID(ctx context.Context, founderID uuid.UUID) (store.Founder, error)
	CreatePayoutAndDrainBalance(ctx context.Context, params store.CreatePayoutParams) (store.Payout, error)
	CompletePayoutAndCredit(ctx context.Context, payoutID uuid.UUID, notes *string) (store.Payout, error)
	CancelPayoutAndRestore(ctx context.Context, payoutID uuid.UUID) (store.Payout, error)
	MarkPayoutProcessing(ctx context.Context, payoutID uuid.UUID) (store.Payout, error)
	RecordPayoutTransfer(ctx context.Context, payoutID uuid.UUID, transferID string) (store.Payout, error)
	ReopenPayout(ctx context.Context, payoutID uuid.UUID) (store.Payout, error)
	GetPayoutByID(ctx context.Context, payoutID uuid.UUID) (store.Payout, error)
	GetPayoutsByFounder(ctx context.Context, founderID uuid.UUID, limit, offset int) ([]store.Payout, error)
	CountPayoutsByFounder(ctx context.Context, founderID uuid.UUID) (int, error)
	ListPayoutsWithStatusFilter(ctx context.Context, status *string, limit, offset int) ([]store.Payout, error)
	CountPayoutsWithStatusFilter(ctx context.Context, status *string) (int, error)
}

// PayoutRail moves settled funds to the founder's external account
type PayoutRail interface {
	Enabled() bool
	AccountEnabled(ctx context.Context, accountID string) (bool, error)
	Transfer(ctx context.Context, accountID string, amountCents int64, currency, payoutID string) (string, error)
}

// PayoutNotifier sends payout settlement notifications
type PayoutNotifier interface {
	SendPayoutCompletedEmail(ctx context.Context, to, name, amount, payoutPeriod, payoutMethod string) error
}
