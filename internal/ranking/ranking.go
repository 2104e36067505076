package ranking

import (
	"sort"

	"oceanKeeperAPI/internal/profile"
)

// DefaultLimit caps the leaderboard at the top 100 users.
const DefaultLimit = 100

// RankingEntry is an ephemeral projection of one profile. Recomputed
// on every query, never persisted.
type RankingEntry struct {
	Rank       int    `json:"rank"`
	Nickname   string `json:"nickname"`
	Points     int    `json:"points"`
	Level      int    `json:"level"`
	BadgeCount int    `json:"badges"`
}

// Rank sorts profiles by points descending and assigns 1-based ranks.
// Ties keep the original enumeration order of the input (insertion
// order in the backing store), so equal scores rank deterministically.
func Rank(profiles []*profile.UserProfile, limit int) []*RankingEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sorted := append([]*profile.UserProfile(nil), profiles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]*RankingEntry, 0, len(sorted))
	for i, p := range sorted {
		entries = append(entries, &RankingEntry{
			Rank:       i + 1,
			Nickname:   p.Nickname,
			Points:     p.Points,
			Level:      p.Level,
			BadgeCount: len(p.Badges),
		})
	}
	return entries
}
