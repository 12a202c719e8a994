package accrual

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"founders-server/internal/clients/kafka"
	commissionprocessor "founders-server/internal/commission/processor"
	"founders-server/internal/config"
	"founders-server/internal/observability"
	"founders-server/internal/store"
)

// Service consumes billable events from Kafka and accrues commissions for
// the founders whose referrals generated them. Each worker runs its own
// consumer in the same group so partitions are processed in parallel while
// per-member ordering is preserved.
type Service struct {
	cfg       config.KafkaConfig
	referrals ReferralResolver
	ledger    CommissionAccruer
	logger    *observability.Logger

	mu        sync.Mutex
	consumers []*kafka.Consumer
	wg        sync.WaitGroup
}

func NewService(cfg config.KafkaConfig, referrals ReferralResolver, ledger CommissionAccruer, logger *observability.Logger) *Service {
	return &Service{
		cfg:       cfg,
		referrals: referrals,
		ledger:    ledger,
		logger:    logger,
	}
}

// Start launches the consumer workers. It returns immediately; workers run
// until ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) {
	workers := s.cfg.AccrualWorkers
	if workers <= 0 {
		workers = 1
	}

	brokers := strings.Split(s.cfg.Brokers, ",")

	s.mu.Lock()
	for i := 0; i < workers; i++ {
		consumer := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: brokers,
			Topic:   s.cfg.Topic,
			GroupID: s.cfg.ConsumerGroup,
		}, s.logger)
		s.consumers = append(s.consumers, consumer)

		s.wg.Add(1)
		go func(consumer *kafka.Consumer) {
			defer s.wg.Done()
			err := consumer.ConsumeEvents(ctx, s.HandleEvent)
			if err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error(ctx, "accrual consumer stopped", err)
			}
		}(consumer)
	}
	s.mu.Unlock()

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "workers", Value: workers},
		observability.Field{Key: "topic", Value: s.cfg.Topic},
	), "accrual consumers started")
}

// Stop closes the consumers and waits for in-flight events to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	for _, consumer := range s.consumers {
		if err := consumer.Close(); err != nil {
			s.logger.Error(context.Background(), "failed to close accrual consumer", err)
		}
	}
	s.consumers = nil
	s.mu.Unlock()

	s.wg.Wait()
}

// HandleEvent accrues a commission for one billable event. A nil return
// commits the event; an error leaves it uncommitted for retry, so only
// transient failures may return errors. Events that can never succeed are
// logged and swallowed.
func (s *Service) HandleEvent(ctx context.Context, event kafka.BillableEvent) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	email := strings.ToLower(strings.TrimSpace(event.MemberEmail))
	if email == "" {
		s.logger.Warn(ctx, "skipping billable event without member email")
		return nil
	}

	amount, err := decimal.NewFromString(event.Amount)
	if err != nil {
		s.logger.Warn(ctx, "skipping billable event with malformed amount")
		return nil
	}
	if !amount.IsPositive() {
		s.logger.Warn(ctx, "skipping billable event with non-positive amount")
		return nil
	}

	referral, err := s.referrals.GetReferralByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Member was not referred by anyone; nothing to accrue.
			return nil
		}
		s.logger.Error(ctx, "failed to resolve referral for billable event", err)
		return err
	}

	if referral.Status != store.ReferralStatusActive {
		s.logger.Warn(ctx, "skipping billable event for inactive referral")
		return nil
	}

	_, err = s.ledger.AccrueCommission(ctx, commissionprocessor.AccrueCommissionRequest{
		FounderID:      referral.FounderID,
		CommissionType: commissionTypeForEvent(event.Type),
		Amount:         amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, commissionprocessor.ErrFounderNotFound),
			errors.Is(err, commissionprocessor.ErrFounderInactive),
			errors.Is(err, commissionprocessor.ErrInvalidAmount),
			errors.Is(err, commissionprocessor.ErrInvalidCommissionType):
			// Replaying cannot fix these; drop the event.
			s.logger.InfoWithError(ctx, "dropping billable event that cannot accrue", err)
			return nil
		default:
			s.logger.Error(ctx, "failed to accrue commission for billable event", err)
			return err
		}
	}

	s.logger.Info(ctx, "commission accrued from billable event")
	return nil
}

func commissionTypeForEvent(eventType string) string {
	switch {
	case strings.HasPrefix(eventType, "bid_pack"):
		return store.CommissionTypeBidPack
	case strings.HasPrefix(eventType, "platform_fee"):
		return store.CommissionTypePlatformFee
	default:
		return store.CommissionTypeOther
	}
}
