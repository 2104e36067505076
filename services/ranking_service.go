package services

import (
	"context"
	"encoding/json"
	"log"

	"oceanKeeperAPI/internal/apperr"
	"oceanKeeperAPI/internal/kvstore"
	"oceanKeeperAPI/internal/profile"
	"oceanKeeperAPI/internal/ranking"
)

// RankingService projects stored profiles into the leaderboard. Pure
// read path: a ranking computed concurrently with an in-flight
// submission may be stale by one award, which is acceptable.
type RankingService struct {
	store kvstore.Store
}

func NewRankingService(store kvstore.Store) *RankingService {
	return &RankingService{store: store}
}

func (s *RankingService) GetRankings(ctx context.Context, limit int) ([]*ranking.RankingEntry, error) {
	values, err := s.store.GetByPrefix(ctx, "user:")
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	profiles := make([]*profile.UserProfile, 0, len(values))
	for _, value := range values {
		prof := &profile.UserProfile{}
		if err := json.Unmarshal(value, prof); err != nil || prof.ID == "" {
			log.Printf("GetRankings: skipping malformed profile value")
			continue
		}
		profiles = append(profiles, prof)
	}

	return ranking.Rank(profiles, limit), nil
}
