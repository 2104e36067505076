package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"
	"unicode/utf8"

	"oceanKeeperAPI/internal/activity"
	"oceanKeeperAPI/internal/apperr"
	"oceanKeeperAPI/internal/badge"
	"oceanKeeperAPI/internal/kvstore"
	"oceanKeeperAPI/internal/profile"
)

// UserService owns profile CRUD and the nickname uniqueness mapping.
// Profile mutation from submissions lives in SubmissionService.
type UserService struct {
	store kvstore.Store
}

func NewUserService(store kvstore.Store) *UserService {
	return &UserService{store: store}
}

type CreateProfileRequest struct {
	UserID   string
	Email    string
	Nickname string
}

// CreateProfile initializes the gamification state for a newly
// registered identity: signup bonus points, the first-signup badge,
// and the nickname reservation.
func (s *UserService) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*profile.UserProfile, error) {
	if err := validateNickname(req.Nickname); err != nil {
		return nil, err
	}

	taken, err := s.nicknameTaken(ctx, req.Nickname, req.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}
	if taken {
		return nil, apperr.New(apperr.CodeNicknameTaken, "이미 사용 중인 닉네임입니다.")
	}

	now := time.Now()
	prof := &profile.UserProfile{
		ID:        req.UserID,
		Email:     req.Email,
		Nickname:  req.Nickname,
		Points:    profile.SignupBonusPoints,
		Level:     1,
		Badges:    []string{badge.FirstSignup},
		JoinedAt:  now,
		LastLogin: now,
	}

	if err := s.saveProfile(ctx, prof); err != nil {
		return nil, err
	}
	if err := s.setJSON(ctx, nicknameKey(req.Nickname), req.UserID); err != nil {
		return nil, err
	}

	log.Printf("Created profile for user %s (nickname %s)", req.UserID, req.Nickname)
	return prof, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*profile.UserProfile, error) {
	value, err := s.store.Get(ctx, profileKey(userID))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, apperr.New(apperr.CodeProfileNotFound, "Profile not found")
		}
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	prof := &profile.UserProfile{}
	if err := json.Unmarshal(value, prof); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Internal server error while fetching profile", err)
	}
	return prof, nil
}

// UpdateProfile applies a partial update. Only the nickname is
// user-editable; a rename swaps the uniqueness mapping.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *profile.UpdateProfileRequest) (*profile.UserProfile, error) {
	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Nickname != "" && req.Nickname != prof.Nickname {
		if err := validateNickname(req.Nickname); err != nil {
			return nil, err
		}
		taken, err := s.nicknameTaken(ctx, req.Nickname, userID)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
		}
		if taken {
			return nil, apperr.New(apperr.CodeNicknameTaken, "이미 사용 중인 닉네임입니다.")
		}

		if err := s.store.Delete(ctx, nicknameKey(prof.Nickname)); err != nil {
			return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
		}
		if err := s.setJSON(ctx, nicknameKey(req.Nickname), userID); err != nil {
			return nil, err
		}
		prof.Nickname = req.Nickname
	}

	if err := s.saveProfile(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// DeleteProfile removes the profile, its nickname reservation, and any
// registered device token. Activity records stay: they are append-only
// and anonymous without the profile.
func (s *UserService) DeleteProfile(ctx context.Context, userID string) error {
	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Code == apperr.CodeProfileNotFound {
			return nil
		}
		return err
	}

	if err := s.store.Delete(ctx, nicknameKey(prof.Nickname)); err != nil {
		return apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}
	if err := s.store.Delete(ctx, deviceKey(userID)); err != nil {
		return apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}
	if err := s.store.Delete(ctx, profileKey(userID)); err != nil {
		return apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	log.Printf("Deleted profile for user %s", userID)
	return nil
}

// GetActivities returns the user's submission history, newest first.
func (s *UserService) GetActivities(ctx context.Context, userID string) ([]*activity.ActivityRecord, error) {
	values, err := s.store.GetByPrefix(ctx, activityPrefix(userID))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}

	records := make([]*activity.ActivityRecord, 0, len(values))
	for _, value := range values {
		record := &activity.ActivityRecord{}
		if err := json.Unmarshal(value, record); err != nil {
			log.Printf("GetActivities: skipping malformed record for user %s: %v", userID, err)
			continue
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SubmittedAt.After(records[j].SubmittedAt)
	})
	return records, nil
}

// GetBadges returns the full badge catalog with the user's unlock
// status, unlocked first.
func (s *UserService) GetBadges(ctx context.Context, userID string) ([]*badge.BadgeWithStatus, error) {
	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var badges []*badge.BadgeWithStatus
	for _, b := range badge.Catalog() {
		badges = append(badges, &badge.BadgeWithStatus{
			Badge:    b,
			Unlocked: prof.HasBadge(b.ID),
		})
	}
	sort.SliceStable(badges, func(i, j int) bool {
		return badges[i].Unlocked && !badges[j].Unlocked
	})
	return badges, nil
}

// RegisterDevice stores the FCM token used for progression pushes.
func (s *UserService) RegisterDevice(ctx context.Context, userID, token string) error {
	if token == "" {
		return apperr.New(apperr.CodeMissingFields, "Device token is required")
	}
	return s.setJSON(ctx, deviceKey(userID), token)
}

func (s *UserService) saveProfile(ctx context.Context, prof *profile.UserProfile) error {
	value, err := json.Marshal(prof)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "Internal server error while updating profile", err)
	}
	if err := s.store.Set(ctx, profileKey(prof.ID), value); err != nil {
		return apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}
	return nil
}

func (s *UserService) setJSON(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "Internal server error", err)
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		return apperr.Wrap(apperr.CodeStorageUnavailable, "Temporary storage error, please retry", err)
	}
	return nil
}

// nicknameTaken checks the reservation mapping, ignoring a reservation
// held by the requesting user.
func (s *UserService) nicknameTaken(ctx context.Context, nickname, userID string) (bool, error) {
	value, err := s.store.Get(ctx, nicknameKey(nickname))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check nickname: %w", err)
	}

	var holder string
	if err := json.Unmarshal(value, &holder); err != nil {
		return true, nil
	}
	return holder != userID, nil
}

func validateNickname(nickname string) error {
	if n := utf8.RuneCountInString(nickname); n < 3 || n > 10 {
		return apperr.New(apperr.CodeMissingFields, "닉네임은 3-10자여야 합니다.")
	}
	return nil
}
