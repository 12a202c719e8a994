package tiers

// TierName represents the display tier name
type TierName string

const (
	TierBronze   TierName = "bronze"
	TierSilver   TierName = "silver"
	TierGold     TierName = "gold"
	TierPlatinum TierName = "platinum"
	TierDiamond  TierName = "diamond"
)

// Tier is one rung of the referral reward ladder
type Tier struct {
	Name         TierName `json:"name"`
	DisplayName  string   `json:"display_name"`
	Rank         int      `json:"rank"`
	MinReferrals int      `json:"min_referrals"`
}

// Ladder is the ordered reward ladder by minimum referral count. The top
// tier has no upper bound.
var Ladder = []Tier{
	{Name: TierBronze, DisplayName: "Bronze", Rank: 0, MinReferrals: 0},
	{Name: TierSilver, DisplayName: "Silver", Rank: 1, MinReferrals: 10},
	{Name: TierGold, DisplayName: "Gold", Rank: 2, MinReferrals: 25},
	{Name: TierPlatinum, DisplayName: "Platinum", Rank: 3, MinReferrals: 50},
	{Name: TierDiamond, DisplayName: "Diamond", Rank: 4, MinReferrals: 100},
}
