package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"oceanKeeperAPI/internal/activity"
	"oceanKeeperAPI/internal/apperr"
	"oceanKeeperAPI/internal/bonus"
	"oceanKeeperAPI/internal/catalog"
	"oceanKeeperAPI/internal/kvstore"
	"oceanKeeperAPI/internal/notification"
	"oceanKeeperAPI/internal/profile"
	"oceanKeeperAPI/internal/progression"
)

// SubmissionService turns a challenge submission into a point award,
// streak update, level transition, and badge grants.
//
// The guard check and the profile read-modify-write run under a
// per-user mutex: two concurrent submissions for the same user cannot
// both pass the duplicate guard before either writes its activity
// record.
type SubmissionService struct {
	store   kvstore.Store
	catalog *catalog.Catalog
	guard   *DuplicateGuard
	push    notification.PushProvider

	userLocks sync.Map // userID -> *sync.Mutex
}

func NewSubmissionService(store kvstore.Store, cat *catalog.Catalog) *SubmissionService {
	return &SubmissionService{
		store:   store,
		catalog: cat,
		guard:   NewDuplicateGuard(store),
	}
}

// SetPushProvider injects the optional push provider for level-up and
// new-badge notifications.
func (s *SubmissionService) SetPushProvider(p notification.PushProvider) {
	s.push = p
}

func (s *SubmissionService) lockUser(userID string) func() {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// SubmitChallenge validates, guards, awards, and persists one
// submission. Every call returns either a success payload or a typed
// error; nothing is dropped silently.
func (s *SubmissionService) SubmitChallenge(ctx context.Context, userID string, req *activity.SubmitRequest, now time.Time) (*activity.SubmitResponse, error) {
	if req.ChallengeID == "" || strings.TrimSpace(req.Location) == "" {
		return nil, apperr.New(apperr.CodeMissingFields, "Challenge ID and location are required")
	}

	def, ok := s.catalog.Lookup(req.ChallengeID)
	if !ok {
		return nil, apperr.New(apperr.CodeInvalidChallenge, "Invalid challenge ID")
	}

	unlock := s.lockUser(userID)
	defer unlock()

	decision, err := s.guard.Check(ctx, userID, req.ChallengeID, now)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}
	if !decision.Allowed() {
		return nil, apperr.Duplicate("동일한 챌린지는 1시간에 한 번만 제출할 수 있습니다.", decision.RetryAfter)
	}

	prof, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstSubmission := decision.PriorSubmissions == 0
	award := progression.Award{
		BasePoints:  def.ScaledPoints(),
		BonusPoints: bonus.Evaluate(req.Note, firstSubmission),
	}

	result := progression.Apply(*prof, award, now)

	record := &activity.ActivityRecord{
		ID:          activityKey(userID, now),
		UserID:      userID,
		ChallengeID: req.ChallengeID,
		BasePoints:  award.BasePoints,
		BonusPoints: award.BonusPoints,
		TotalPoints: award.Total(),
		Location:    req.Location,
		Note:        req.Note,
		Status:      activity.StatusApproved,
		SubmittedAt: now,
		ApprovedAt:  now,
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Internal server error during challenge verification", err)
	}
	if err := s.store.Set(ctx, record.ID, recordJSON); err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	profileJSON, err := json.Marshal(result.Profile)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Internal server error during challenge verification", err)
	}
	if err := s.store.Set(ctx, profileKey(userID), profileJSON); err != nil {
		// The activity record is already persisted, so the duplicate
		// guard will block a retry within the cooldown even though the
		// award was lost. This state needs operator attention.
		log.Printf("INCONSISTENT STATE: activity %s persisted but profile write failed for user %s: %v", record.ID, userID, err)
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	if s.push != nil && (result.LeveledUp || len(result.NewBadges) > 0) {
		go s.sendProgressionPush(userID, result)
	}

	return &activity.SubmitResponse{
		Success:      true,
		Activity:     record,
		EarnedPoints: award.Total(),
		TotalPoints:  result.Profile.Points,
		Level:        result.Profile.Level,
		LeveledUp:    result.LeveledUp,
		Badges:       result.Profile.Badges,
		NewBadges:    result.NewBadges,
		Message:      successMessage(award, result.LeveledUp),
		Rewards: activity.Rewards{
			BasePoints:  award.BasePoints,
			BonusPoints: award.BonusPoints,
			TotalPoints: award.Total(),
			LeveledUp:   result.LeveledUp,
			NewBadges:   result.NewBadges,
			NewLevel:    result.Profile.Level,
		},
	}, nil
}

func (s *SubmissionService) loadProfile(ctx context.Context, userID string) (*profile.UserProfile, error) {
	value, err := s.store.Get(ctx, profileKey(userID))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, apperr.New(apperr.CodeProfileNotFound, "Profile not found")
		}
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	prof := &profile.UserProfile{}
	if err := json.Unmarshal(value, prof); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Internal server error during challenge verification", err)
	}
	return prof, nil
}

func successMessage(award progression.Award, leveledUp bool) string {
	message := fmt.Sprintf("챌린지 완료! %d포인트를 획득했습니다.", award.Total())
	if award.BonusPoints > 0 {
		message += fmt.Sprintf(" (보너스 +%dP)", award.BonusPoints)
	}
	if leveledUp {
		message += " 🎉 레벨업!"
	}
	return message
}

// sendProgressionPush notifies the user's registered device about
// level-ups and new badges. Best effort: failures are logged only.
func (s *SubmissionService) sendProgressionPush(userID string, result progression.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	value, err := s.store.Get(ctx, deviceKey(userID))
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("Progression push: failed to load device token for user %s: %v", userID, err)
		}
		return
	}

	var token string
	if err := json.Unmarshal(value, &token); err != nil {
		log.Printf("Progression push: malformed device token for user %s: %v", userID, err)
		return
	}

	title := "오션키퍼"
	body := fmt.Sprintf("새로운 배지 %d개를 획득했습니다!", len(result.NewBadges))
	if result.LeveledUp {
		body = fmt.Sprintf("레벨 %d 달성! 🎉", result.Profile.Level)
	}

	data := map[string]string{
		"level":     strconv.Itoa(result.Profile.Level),
		"newBadges": strings.Join(result.NewBadges, ","),
	}

	if err := s.push.SendPush(ctx, token, title, body, data); err != nil {
		log.Printf("Progression push: failed to send to user %s: %v", userID, err)
	}
}
