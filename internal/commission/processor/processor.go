package processor

import (
	"context"
	"errors"
	"founders-server/internal/observability"
	"founders-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrFounderNotFound         = errors.New("founder not found")
	ErrFounderInactive         = errors.New("founder is not active")
	ErrCommissionNotFound      = errors.New("commission not found")
	ErrCommissionNotReversible = errors.New("commission cannot be reversed")
	ErrInvalidAmount           = errors.New("commission amount must be positive")
	ErrInvalidCommissionType   = errors.New("invalid commission type")
)

type CommissionProcessor struct {
	store  CommissionStore
	logger *observability.Logger
}

func New(store CommissionStore, logger *observability.Logger) CommissionProcessor {
	return CommissionProcessor{
		store:  store,
		logger: logger,
	}
}

// Pagination represents pagination metadata
type Pagination struct {
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}

// AccrueCommissionRequest represents a request to accrue a commission
type AccrueCommissionRequest struct {
	FounderID      uuid.UUID
	CommissionType string
	Amount         decimal.Decimal
}

// AccrueCommission credits a founder for revenue generated by one of their
// referrals. The commission row and the balance increment land atomically.
func (p *CommissionProcessor) AccrueCommission(ctx context.Context, req AccrueCommissionRequest) (store.Commission, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: req.FounderID.String()},
		observability.Field{Key: "commission_type", Value: req.CommissionType},
	)

	if !req.Amount.IsPositive() {
		return store.Commission{}, ErrInvalidAmount
	}

	if !store.IsValidCommissionType(req.CommissionType) {
		return store.Commission{}, ErrInvalidCommissionType
	}

	founder, err := p.store.GetFounderByID(ctx, req.FounderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Commission{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return store.Commission{}, err
	}

	if founder.Status != store.FounderStatusActive {
		return store.Commission{}, ErrFounderInactive
	}

	commission, err := p.store.CreateCommissionAndAccrue(ctx, store.CreateCommissionParams{
		FounderID:      req.FounderID,
		CommissionType: req.CommissionType,
		Amount:         req.Amount,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to accrue commission", err)
		return store.Commission{}, err
	}

	p.logger.Info(ctx, "commission accrued successfully")
	return commission, nil
}

// ReverseCommission backs out a previously accrued commission, for example
// after a refund. Commissions already swept into a payout cannot be reversed.
func (p *CommissionProcessor) ReverseCommission(ctx context.Context, commissionID uuid.UUID) (store.Commission, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "commission_id", Value: commissionID.String()},
	)

	commission, err := p.store.ReverseCommissionAndDebit(ctx, commissionID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Commission{}, ErrCommissionNotFound
		case errors.Is(err, store.ErrInvalidTransition):
			return store.Commission{}, ErrCommissionNotReversible
		}
		p.logger.Error(ctx, "failed to reverse commission", err)
		return store.Commission{}, err
	}

	p.logger.Info(ctx, "commission reversed successfully")
	return commission, nil
}

// GetPendingBalanceResponse represents a founder's uncollected commission balance
type GetPendingBalanceResponse struct {
	FounderID      uuid.UUID       `json:"founder_id"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// GetPendingBalance returns the founder's commission balance not yet paid out
func (p *CommissionProcessor) GetPendingBalance(ctx context.Context, founderID uuid.UUID) (GetPendingBalanceResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
	)

	balance, err := p.store.GetPendingBalance(ctx, founderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GetPendingBalanceResponse{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get pending balance", err)
		return GetPendingBalanceResponse{}, err
	}

	return GetPendingBalanceResponse{
		FounderID:      founderID,
		PendingBalance: balance,
	}, nil
}

// ListFounderCommissionsRequest represents parameters for listing commissions
type ListFounderCommissionsRequest struct {
	Page  int
	Limit int
}

// ListFounderCommissionsResponse represents a founder's commission history
type ListFounderCommissionsResponse struct {
	Commissions []store.Commission `json:"commissions"`
	Pagination  Pagination         `json:"pagination"`
}

// ListFounderCommissions retrieves a founder's commission history, newest first
func (p *CommissionProcessor) ListFounderCommissions(ctx context.Context, founderID uuid.UUID, req ListFounderCommissionsRequest) (ListFounderCommissionsResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
	)

	if _, err := p.store.GetFounderByID(ctx, founderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListFounderCommissionsResponse{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return ListFounderCommissionsResponse{}, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	offset := (req.Page - 1) * req.Limit

	commissions, err := p.store.GetCommissionsByFounder(ctx, founderID, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list commissions", err)
		return ListFounderCommissionsResponse{}, err
	}
	if commissions == nil {
		commissions = []store.Commission{}
	}

	totalCount, err := p.store.CountCommissionsByFounder(ctx, founderID)
	if err != nil {
		p.logger.Error(ctx, "failed to count commissions", err)
		return ListFounderCommissionsResponse{}, err
	}

	hasMore := (req.Page * req.Limit) < totalCount

	return ListFounderCommissionsResponse{
		Commissions: commissions,
		Pagination: Pagination{
			HasMore:    hasMore,
			TotalCount: totalCount,
		},
	}, nil
}
