package model

import "strings"

// Rarity tiers recognized by the game.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

var rarityPoints = map[string]int64{
	RarityCommon:    10,
	RarityRare:      25,
	RarityEpic:      50,
	RarityLegendary: 100,
}

// PointsForRarity maps a rarity label to its point value. Matching is
// case-insensitive; unrecognized labels fall back to the common tier.
func PointsForRarity(rarity string) int64 {
	if points, ok := rarityPoints[strings.ToLower(rarity)]; ok {
		return points
	}
	return rarityPoints[RarityCommon]
}
