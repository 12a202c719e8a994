package accrual

import (
	"context"

	commissionprocessor "founders-server/internal/commission/processor"
	"founders-server/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=accrual

// ReferralResolver maps a referred member's email to their referral record.
type ReferralResolver interface {
	GetReferralByEmail(ctx context.Context, referredEmail string) (store.Referral, error)
}

// CommissionAccruer credits commissions against founder balances.
type CommissionAccruer interface {
	AccrueCommission(ctx context.Context, req commissionprocessor.AccrueCommissionRequest) (store.Commission, error)
}
