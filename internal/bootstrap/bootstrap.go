package bootstrap

import (
	"context"
	"fmt"

	"founders-server/internal/config"
	"founders-server/internal/observability"
	"founders-server/internal/store"

	"founders-server/internal/accrual"
	"founders-server/internal/clients/mail"
	redisClient "founders-server/internal/clients/redis"
	"founders-server/internal/clients/stripeconnect"
	commissionHandler "founders-server/internal/commission/handler"
	commissionProcessor "founders-server/internal/commission/processor"
	"founders-server/internal/email"
	foundersHandler "founders-server/internal/founders/handler"
	foundersProcessor "founders-server/internal/founders/processor"
	"founders-server/internal/leaderboard"
	payoutHandler "founders-server/internal/payout/handler"
	payoutProcessor "founders-server/internal/payout/processor"
	referralHandler "founders-server/internal/referral/handler"
	referralProcessor "founders-server/internal/referral/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	FoundersHandler    foundersHandler.Handler
	ReferralHandler    referralHandler.Handler
	CommissionHandler  commissionHandler.Handler
	PayoutHandler      payoutHandler.Handler
	LeaderboardHandler *leaderboard.Handler

	// Background workers
	AccrualService *accrual.Service

	// Clients (for cleanup)
	RedisClient *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	stripeClient := stripeconnect.New(cfg.Services.StripeSecretKey, cfg.Payouts.RailTimeout, logger)

	// Initialize email service
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, cfg.Services.WebAppURI, logger)

	// Initialize leaderboard service and handler
	leaderboardService := leaderboard.New(deps.RedisClient, logger)
	deps.LeaderboardHandler = leaderboard.NewHandler(leaderboardService, &deps.Store, logger)

	// Initialize referral processor and handler
	referralProc := referralProcessor.New(&deps.Store, leaderboardService, emailService, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize founders processor and handler; referral codes come from
	// the referral processor so both sides share one generation path
	foundersProc := foundersProcessor.New(&deps.Store, &referralProc, emailService, leaderboardService, logger)
	deps.FoundersHandler = foundersHandler.New(foundersProc, logger)

	// Initialize commission processor and handler
	commissionProc := commissionProcessor.New(&deps.Store, logger)
	deps.CommissionHandler = commissionHandler.New(commissionProc, logger)

	// Initialize payout processor and handler
	payoutProc := payoutProcessor.New(
		&deps.Store,
		stripeClient,
		emailService,
		cfg.Payouts.MinimumAmount,
		cfg.Payouts.Currency,
		logger,
	)
	deps.PayoutHandler = payoutHandler.New(payoutProc, logger)

	// Initialize billable-event accrual consumer
	deps.AccrualService = accrual.NewService(cfg.Kafka, &deps.Store, &commissionProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
}
