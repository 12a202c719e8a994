package stripeconnect

import (
	"context"
	"fmt"
	"founders-server/internal/observability"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/account"
	"github.com/stripe/stripe-go/v79/transfer"
)

// Client wraps the Stripe Connect API for founder payouts.
type Client struct {
	logger      *observability.Logger
	railTimeout time.Duration
}

// New configures the Stripe SDK with the given secret key. An empty key
// disables the rail; Enabled reports whether transfers can be attempted.
func New(secretKey string, railTimeout time.Duration, logger *observability.Logger) *Client {
	if secretKey == "" {
		logger.Info(context.Background(), "Stripe secret key not set, payout rail disabled")
		return &Client{logger: logger, railTimeout: railTimeout}
	}
	stripe.Key = secretKey
	return &Client{logger: logger, railTimeout: railTimeout}
}

// Enabled reports whether the Stripe rail is configured.
func (c *Client) Enabled() bool {
	return stripe.Key != ""
}

// AccountEnabled checks whether a connected account can receive transfers.
func (c *Client) AccountEnabled(ctx context.Context, accountID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.railTimeout)
	defer cancel()

	params := &stripe.AccountParams{
		Params: stripe.Params{Context: ctx},
	}
	acct, err := account.GetByID(accountID, params)
	if err != nil {
		c.logger.Error(ctx, "failed to fetch stripe account", err)
		return false, fmt.Errorf("failed to fetch stripe account: %w", err)
	}

	return acct.PayoutsEnabled, nil
}

// Transfer moves funds to a connected account. Amount is in the smallest
// currency unit (cents for usd). Returns the Stripe transfer ID.
func (c *Client) Transfer(ctx context.Context, accountID string, amountCents int64, currency, payoutID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.railTimeout)
	defer cancel()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_account_id", Value: accountID},
		observability.Field{Key: "payout_id", Value: payoutID},
	)

	// Keyed on the payout so a retried request cannot create a second transfer.
	params := &stripe.TransferParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String("payout-transfer-" + payoutID),
		},
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Destination: stripe.String(accountID),
	}
	params.AddMetadata("payout_id", payoutID)

	t, err := transfer.New(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create stripe transfer", err)
		return "", fmt.Errorf("failed to create stripe transfer: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("created stripe transfer %s", t.ID))
	return t.ID, nil
}
