package processor

import (
	"context"
	"errors"
	"fmt"
	"founders-server/internal/observability"
	"founders-server/internal/store"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrFounderNotFound       = errors.New("founder not found")
	ErrFounderInactive       = errors.New("founder is not active")
	ErrPayoutNotFound        = errors.New("payout not found")
	ErrBelowMinimum          = errors.New("pending balance is below the payout minimum")
	ErrPayoutAlreadyInFlight = errors.New("founder already has an open payout")
	ErrPayoutNotOpen         = errors.New("payout is not open")
	ErrInvalidPayoutPeriod   = errors.New("invalid payout period")
	ErrInvalidStatus         = errors.New("invalid payout status")
	ErrRailNotEnabled        = errors.New("stripe payout rail is not enabled")
	ErrRailNotConfigured     = errors.New("founder has no usable stripe account")
	ErrNotRailPayout         = errors.New("payout method is not stripe connect")
	ErrExternalRailFailure   = errors.New("external payout rail failure")
)

// payout periods are calendar months, e.g. 2026-08
var payoutPeriodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type PayoutProcessor struct {
	store         PayoutStore
	rail          PayoutRail
	notifier      PayoutNotifier
	minimumAmount decimal.Decimal
	currency      string
	logger        *observability.Logger
}

func New(store PayoutStore, rail PayoutRail, notifier PayoutNotifier,
	minimumAmount decimal.Decimal, currency string, logger *observability.Logger) PayoutProcessor {
	return PayoutProcessor{
		store:         store,
		rail:          rail,
		notifier:      notifier,
		minimumAmount: minimumAmount,
		currency:      currency,
		logger:        logger,
	}
}

// Pagination represents pagination metadata
type Pagination struct {
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}

// CreatePayoutRequest represents a request to open a payout
type CreatePayoutRequest struct {
	PayoutPeriod string
}

// CreatePayout snapshots the founder's pending balance into a new payout and
// drains the balance. Only one payout may be open per founder, and the
// balance must meet the configured minimum.
func (p *PayoutProcessor) CreatePayout(ctx context.Context, founderID uuid.UUID, req CreatePayoutRequest) (store.Payout, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
		observability.Field{Key: "payout_period", Value: req.PayoutPeriod},
	)

	if !payoutPeriodPattern.MatchString(req.PayoutPeriod) {
		return store.Payout{}, ErrInvalidPayoutPeriod
	}

	founder, err := p.store.GetFounderByID(ctx, founderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Payout{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return store.Payout{}, err
	}

	if founder.Status != store.FounderStatusActive {
		return store.Payout{}, ErrFounderInactive
	}

	payoutMethod := p.resolvePayoutMethod(ctx, founder)

	payout, err := p.store.CreatePayoutAndDrainBalance(ctx, store.CreatePayoutParams{
		FounderID:     founderID,
		PayoutPeriod:  req.PayoutPeriod,
		PayoutMethod:  payoutMethod,
		PayoutDetails: payoutDetailsSnapshot(payoutMethod, founder),
		MinimumAmount: p.minimumAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientBalance):
			return store.Payout{}, ErrBelowMinimum
		case errors.Is(err, store.ErrPayoutInFlight):
			return store.Payout{}, ErrPayoutAlreadyInFlight
		case errors.Is(err, store.ErrNotFound):
			return store.Payout{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to create payout", err)
		return store.Payout{}, err
	}

	p.logger.Info(ctx, "payout created successfully")
	return payout, nil
}

// CompletePayout marks an open payout as completed, credits the founder's
// lifetime paid total and marks the swept commissions paid. Completing an
// already settled payout is rejected, so the credit cannot double-apply.
func (p *PayoutProcessor) CompletePayout(ctx context.Context, payoutID uuid.UUID, notes *string) (store.Payout, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payout_id", Value: payoutID.String()},
	)

	payout, err := p.store.CompletePayoutAndCredit(ctx, payoutID, notes)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Payout{}, ErrPayoutNotFound
		case errors.Is(err, store.ErrInvalidTransition):
			return store.Payout{}, ErrPayoutNotOpen
		}
		p.logger.Error(ctx, "failed to complete payout", err)
		return store.Payout{}, err
	}

	// Notification is best-effort; the settlement is already durable.
	if p.notifier != nil {
		founder, err := p.store.GetFounderByID(ctx, payout.FounderID)
		if err != nil {
			p.logger.Error(ctx, "failed to get founder for payout email", err)
		} else if err := p.notifier.SendPayoutCompletedEmail(ctx, founder.Email, founder.Name,
			payout.Amount.StringFixed(2), payout.PayoutPeriod, payout.PayoutMethod); err != nil {
			p.logger.Error(ctx, "failed to send payout completed email", err)
		}
	}

	p.logger.Info(ctx, "payout completed successfully")
	return payout, nil
}

// CancelPayout marks an open payout as failed and restores its amount to the
// founder's pending balance. The swept commissions are released so a later
// payout can pick them up again.
func (p *PayoutProcessor) CancelPayout(ctx context.Context, payoutID uuid.UUID) (store.Payout, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payout_id", Value: payoutID.String()},
	)

	payout, err := p.store.CancelPayoutAndRestore(ctx, payoutID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Payout{}, ErrPayoutNotFound
		case errors.Is(err, store.ErrInvalidTransition):
			return store.Payout{}, ErrPayoutNotOpen
		}
		p.logger.Error(ctx, "failed to cancel payout", err)
		return store.Payout{}, err
	}

	p.logger.Info(ctx, "payout cancelled, balance restored")
	return payout, nil
}

// ProcessViaStripe pushes a pending payout through the Stripe Connect rail.
// The payout is claimed with a pending-only status swap before any funds move,
// so concurrent process requests race on the claim, not on the transfer. A rail
// failure releases the claim so the payout can be retried or settled manually.
func (p *PayoutProcessor) ProcessViaStripe(ctx context.Context, payoutID uuid.UUID) (store.Payout, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payout_id", Value: payoutID.String()},
	)

	if p.rail == nil || !p.rail.Enabled() {
		return store.Payout{}, ErrRailNotEnabled
	}

	payout, err := p.store.GetPayoutByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Payout{}, ErrPayoutNotFound
		}
		p.logger.Error(ctx, "failed to get payout", err)
		return store.Payout{}, err
	}

	if payout.Status != store.PayoutStatusPending {
		return store.Payout{}, ErrPayoutNotOpen
	}

	if payout.PayoutMethod != store.PayoutMethodStripeConnect {
		return store.Payout{}, ErrNotRailPayout
	}

	founder, err := p.store.GetFounderByID(ctx, payout.FounderID)
	if err != nil {
		p.logger.Error(ctx, "failed to get founder for payout", err)
		return store.Payout{}, err
	}

	if founder.StripeAccountID == nil {
		return store.Payout{}, ErrRailNotConfigured
	}

	enabled, err := p.rail.AccountEnabled(ctx, *founder.StripeAccountID)
	if err != nil {
		p.logger.Error(ctx, "failed to check stripe account", err)
		return store.Payout{}, fmt.Errorf("%w: %s", ErrExternalRailFailure, err.Error())
	}
	if !enabled {
		return store.Payout{}, ErrRailNotConfigured
	}

	if _, err := p.store.MarkPayoutProcessing(ctx, payoutID); err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			// Another request claimed the payout first.
			return store.Payout{}, ErrPayoutNotOpen
		}
		p.logger.Error(ctx, "failed to claim payout for processing", err)
		return store.Payout{}, err
	}

	amountCents := payout.Amount.Shift(2).IntPart()
	transferID, err := p.rail.Transfer(ctx, *founder.StripeAccountID, amountCents, p.currency, payout.ID.String())
	if err != nil {
		p.logger.Error(ctx, "stripe transfer failed, releasing payout claim", err)
		if _, reopenErr := p.store.ReopenPayout(ctx, payoutID); reopenErr != nil {
			p.logger.Error(ctx, "failed to reopen payout after transfer failure", reopenErr)
		}
		return store.Payout{}, fmt.Errorf("%w: %s", ErrExternalRailFailure, err.Error())
	}

	if _, err := p.store.RecordPayoutTransfer(ctx, payoutID, transferID); err != nil {
		p.logger.Error(ctx, "failed to record payout transfer", err)
		return store.Payout{}, err
	}

	notes := fmt.Sprintf("stripe transfer %s", transferID)
	return p.CompletePayout(ctx, payoutID, &notes)
}

// GetPayout retrieves a single payout
func (p *PayoutProcessor) GetPayout(ctx context.Context, payoutID uuid.UUID) (store.Payout, error) {
	payout, err := p.store.GetPayoutByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Payout{}, ErrPayoutNotFound
		}
		p.logger.Error(ctx, "failed to get payout", err)
		return store.Payout{}, err
	}
	return payout, nil
}

// ListFounderPayoutsRequest represents parameters for listing a founder's payouts
type ListFounderPayoutsRequest struct {
	Page  int
	Limit int
}

// ListFounderPayoutsResponse represents a founder's payout history
type ListFounderPayoutsResponse struct {
	Payouts    []store.Payout `json:"payouts"`
	Pagination Pagination     `json:"pagination"`
}

// ListFounderPayouts retrieves a founder's payout history, newest first
func (p *PayoutProcessor) ListFounderPayouts(ctx context.Context, founderID uuid.UUID, req ListFounderPayoutsRequest) (ListFounderPayoutsResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "founder_id", Value: founderID.String()},
	)

	if _, err := p.store.GetFounderByID(ctx, founderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListFounderPayoutsResponse{}, ErrFounderNotFound
		}
		p.logger.Error(ctx, "failed to get founder", err)
		return ListFounderPayoutsResponse{}, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	offset := (req.Page - 1) * req.Limit

	payouts, err := p.store.GetPayoutsByFounder(ctx, founderID, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list founder payouts", err)
		return ListFounderPayoutsResponse{}, err
	}
	if payouts == nil {
		payouts = []store.Payout{}
	}

	totalCount, err := p.store.CountPayoutsByFounder(ctx, founderID)
	if err != nil {
		p.logger.Error(ctx, "failed to count founder payouts", err)
		return ListFounderPayoutsResponse{}, err
	}

	hasMore := (req.Page * req.Limit) < totalCount

	return ListFounderPayoutsResponse{
		Payouts: payouts,
		Pagination: Pagination{
			HasMore:    hasMore,
			TotalCount: totalCount,
		},
	}, nil
}

// ListPayoutsRequest represents parameters for the admin payout table
type ListPayoutsRequest struct {
	Status *string
	Page   int
	Limit  int
}

// ListPayoutsResponse represents the admin payout table
type ListPayoutsResponse struct {
	Payouts    []store.Payout `json:"payouts"`
	Pagination Pagination     `json:"pagination"`
}

// ListPayouts retrieves payouts across all founders with an optional status filter
func (p *PayoutProcessor) ListPayouts(ctx context.Context, req ListPayoutsRequest) (ListPayoutsResponse, error) {
	if req.Status != nil && !isValidPayoutStatus(*req.Status) {
		return ListPayoutsResponse{}, ErrInvalidStatus
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	offset := (req.Page - 1) * req.Limit

	payouts, err := p.store.ListPayoutsWithStatusFilter(ctx, req.Status, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list payouts", err)
		return ListPayoutsResponse{}, err
	}
	if payouts == nil {
		payouts = []store.Payout{}
	}

	totalCount, err := p.store.CountPayoutsWithStatusFilter(ctx, req.Status)
	if err != nil {
		p.logger.Error(ctx, "failed to count payouts", err)
		return ListPayoutsResponse{}, err
	}

	hasMore := (req.Page * req.Limit) < totalCount

	return ListPayoutsResponse{
		Payouts: payouts,
		Pagination: Pagination{
			HasMore:    hasMore,
			TotalCount: totalCount,
		},
	}, nil
}

// resolvePayoutMethod prefers the Stripe rail when the founder's connected
// account is fully onboarded. A capability lookup failure falls back to the
// founder's stated method rather than blocking the payout.
func (p *PayoutProcessor) resolvePayoutMethod(ctx context.Context, founder store.Founder) string {
	if p.rail == nil || !p.rail.Enabled() || founder.StripeAccountID == nil {
		return founder.PayoutMethod
	}

	enabled, err := p.rail.AccountEnabled(ctx, *founder.StripeAccountID)
	if err != nil {
		p.logger.InfoWithError(ctx, "could not check stripe account capability, using stated payout method", err)
		return founder.PayoutMethod
	}
	if enabled {
		return store.PayoutMethodStripeConnect
	}
	return founder.PayoutMethod
}

func payoutDetailsSnapshot(method string, founder store.Founder) store.JSONB {
	details := store.JSONB{
		"payout_method": method,
	}
	if founder.PayoutDestination != nil {
		details["destination"] = *founder.PayoutDestination
	}
	if founder.StripeAccountID != nil {
		details["stripe_account_id"] = *founder.StripeAccountID
	}
	return details
}

func isValidPayoutStatus(status string) bool {
	switch status {
	case store.PayoutStatusPending, store.PayoutStatusProcessing,
		store.PayoutStatusCompleted, store.PayoutStatusFailed:
		return true
	}
	return false
}
