package tiers

import "errors"

var ErrInvalidReferralCount = errors.New("referral count must be a non-negative integer")

// Result describes where a referral count sits on the reward ladder
type Result struct {
	CurrentTier         Tier    `json:"current_tier"`
	NextTier            *Tier   `json:"next_tier,omitempty"`
	ProgressPercent     float64 `json:"progress_percent"`
	ReferralsToNextTier int     `json:"referrals_to_next_tier"`
}

// Calculate maps a cumulative referral count to its reward tier and
// progress-to-next-tier metrics. Pure and deterministic; a negative count is
// a caller contract violation and returns ErrInvalidReferralCount.
func Calculate(totalReferrals int) (Result, error) {
	if totalReferrals < 0 {
		return Result{}, ErrInvalidReferralCount
	}

	current := Ladder[0]
	var next *Tier
	for i := range Ladder {
		if totalReferrals >= Ladder[i].MinReferrals {
			current = Ladder[i]
			if i+1 < len(Ladder) {
				n := Ladder[i+1]
				next = &n
			} else {
				next = nil
			}
		}
	}

	// Top tier: nothing left to climb
	if next == nil {
		return Result{
			CurrentTier:     current,
			ProgressPercent: 100,
		}, nil
	}

	span := next.MinReferrals - current.MinReferrals
	progress := float64(totalReferrals-current.MinReferrals) / float64(span) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return Result{
		CurrentTier:         current,
		NextTier:            next,
		ProgressPercent:     progress,
		ReferralsToNextTier: next.MinReferrals - totalReferrals,
	}, nil
}
