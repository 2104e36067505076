package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"oceanKeeperAPI/internal/activity"
	"oceanKeeperAPI/internal/kvstore"
)

// CooldownWindow is how long a user must wait before resubmitting the
// same challenge.
const CooldownWindow = time.Hour

// DuplicateGuard rejects repeat submissions of the same challenge
// within the cooldown window. It reads the user's activity history;
// the caller must hold the per-user lock so this read stays consistent
// with the write that follows it.
type DuplicateGuard struct {
	store  kvstore.Store
	window time.Duration
}

func NewDuplicateGuard(store kvstore.Store) *DuplicateGuard {
	return &DuplicateGuard{store: store, window: CooldownWindow}
}

// GuardDecision reports the outcome of a duplicate check. RetryAfter
// is zero when the submission is allowed. PriorSubmissions is the
// user's total accepted submission count, which feeds the first-time
// bonus from the same history read.
type GuardDecision struct {
	RetryAfter       time.Duration
	PriorSubmissions int
}

func (d *GuardDecision) Allowed() bool {
	return d.RetryAfter <= 0
}

func (g *DuplicateGuard) Check(ctx context.Context, userID, challengeID string, now time.Time) (*GuardDecision, error) {
	values, err := g.store.GetByPrefix(ctx, activityPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read activity history: %w", err)
	}

	decision := &GuardDecision{}
	cutoff := now.Add(-g.window)

	for _, value := range values {
		var record activity.ActivityRecord
		if err := json.Unmarshal(value, &record); err != nil {
			log.Printf("DuplicateGuard: skipping malformed activity record for user %s: %v", userID, err)
			continue
		}
		decision.PriorSubmissions++

		if record.ChallengeID != challengeID || !record.SubmittedAt.After(cutoff) {
			continue
		}
		remaining := g.window - now.Sub(record.SubmittedAt)
		if remaining > decision.RetryAfter {
			decision.RetryAfter = remaining
		}
	}

	return decision, nil
}
