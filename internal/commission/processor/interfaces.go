package processor

import (
	"context"
	"founders-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// CommissionStore defines the database operations required by CommissionProcessor
type CommissionStore interface {
	GetFounderByID(ctx context.Context, founderID uuid.UUID) (store.Founder, error)
	CreateCommissionAndAccrue(ctx context.Context, params store.CreateCommissionParams) (store.Commission, error)
	ReverseCommissionAndDebit(ctx context.Context, commissionID uuid.UUID) (store.Commission, error)
	GetPendingBalance(ctx context.Context, founderID uuid.UUID) (decimal.Decimal, error)
	GetCommissionsByFounder(ctx context.Context, founderID uuid.UUID, limit, offset int) ([]store.Commission, error)
	CountCommissionsByFounder(ctx context.Context, founderID uuid.UUID) (int, error)
}
