package leaderboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	redisclient "founders-server/internal/clients/redis"
	"founders-server/internal/observability"
)

const leaderboardKey = "founders:leaderboard"

// Entry is a founder's position on the leaderboard.
type Entry struct {
	FounderID       uuid.UUID `json:"founder_id"`
	ActiveReferrals int       `json:"active_referrals"`
	Rank            int64     `json:"rank"`
}

// FounderActiveCount mirrors the store's grouped count row.
type FounderActiveCount struct {
	FounderID   uuid.UUID
	ActiveCount int
}

// Service maintains a Redis sorted set of founders ranked by active
// referrals. All operations degrade to no-ops when Redis is disabled.
type Service struct {
	redisClient *redisclient.Client
	logger      *observability.Logger
}

func New(redisClient *redisclient.Client, logger *observability.Logger) *Service {
	return &Service{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Enabled reports whether the leaderboard is backed by a live Redis client.
func (s *Service) Enabled() bool {
	return s.redisClient.IsEnabled()
}

// RecordActivation sets a founder's score to their current active referral
// count. Scores are absolute, not incremental, so replays are harmless.
func (s *Service) RecordActivation(ctx context.Context, founderID uuid.UUID, activeReferrals int) error {
	if !s.Enabled() {
		return nil
	}

	err := s.redisClient.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(activeReferrals), Member: founderID.String()})
	if err != nil {
		return fmt.Errorf("failed to update leaderboard score: %w", err)
	}
	return nil
}

// RemoveFounder drops a founder from the ranking, used on deactivation.
func (s *Service) RemoveFounder(ctx context.Context, founderID uuid.UUID) error {
	if !s.Enabled() {
		return nil
	}

	err := s.redisClient.ZRem(ctx, leaderboardKey, founderID.String())
	if err != nil {
		return fmt.Errorf("failed to remove founder from leaderboard: %w", err)
	}
	return nil
}

// Standing returns a founder's 1-based rank and current score, highest first.
func (s *Service) Standing(ctx context.Context, founderID uuid.UUID) (Entry, error) {
	if !s.Enabled() {
		return Entry{}, fmt.Errorf("leaderboard is not enabled")
	}

	rank, err := s.redisClient.ZRevRank(ctx, leaderboardKey, founderID.String())
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get leaderboard rank: %w", err)
	}
	score, err := s.redisClient.ZScore(ctx, leaderboardKey, founderID.String())
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get leaderboard score: %w", err)
	}

	return Entry{
		FounderID:       founderID,
		ActiveReferrals: int(score),
		Rank:            rank + 1,
	}, nil
}

// Top returns the highest-ranked founders, at most n entries.
func (s *Service) Top(ctx context.Context, n int64) ([]Entry, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("leaderboard is not enabled")
	}
	if n <= 0 {
		n = 10
	}

	members, err := s.redisClient.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1)
	if err != nil {
		return nil, fmt.Errorf("failed to get top founders: %w", err)
	}

	entries := make([]Entry, 0, len(members))
	for i, member := range members {
		memberID, ok := member.Member.(string)
		if !ok {
			continue
		}
		founderID, err := uuid.Parse(memberID)
		if err != nil {
			s.logger.Warn(ctx, fmt.Sprintf("skipping malformed leaderboard member: %s", memberID))
			continue
		}
		entries = append(entries, Entry{
			FounderID:       founderID,
			ActiveReferrals: int(member.Score),
			Rank:            int64(i) + 1,
		})
	}
	return entries, nil
}

// Count returns the number of founders on the leaderboard.
func (s *Service) Count(ctx context.Context) (int64, error) {
	if !s.Enabled() {
		return 0, fmt.Errorf("leaderboard is not enabled")
	}
	return s.redisClient.ZCard(ctx, leaderboardKey)
}

// Rebuild repopulates the sorted set from the database. Intended for
// recovery after a Redis flush; scores written here overwrite any drift.
func (s *Service) Rebuild(ctx context.Context, counts []FounderActiveCount) error {
	if !s.Enabled() {
		return fmt.Errorf("leaderboard is not enabled")
	}

	for _, count := range counts {
		err := s.redisClient.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(count.ActiveCount), Member: count.FounderID.String()})
		if err != nil {
			return fmt.Errorf("failed to rebuild leaderboard for founder %s: %w", count.FounderID, err)
		}
	}

	s.logger.Info(observability.WithFields(ctx, observability.Field{Key: "founders", Value: len(counts)}), "leaderboard rebuilt from database")
	return nil
}
