package progression

import (
	"testing"
	"time"

	"oceanKeeperAPI/internal/badge"
	"oceanKeeperAPI/internal/profile"
)

func baseProfile() profile.UserProfile {
	return profile.UserProfile{
		ID:       "user-1",
		Nickname: "바다지기",
		Points:   100,
		Level:    1,
		Badges:   []string{badge.FirstSignup},
	}
}

func TestApplyAddsPointsAndCompletion(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	res := Apply(baseProfile(), Award{BasePoints: 130, BonusPoints: 30}, now)

	if res.Profile.Points != 260 {
		t.Errorf("points: got %d, want 260", res.Profile.Points)
	}
	if res.Profile.ChallengesCompleted != 1 {
		t.Errorf("challengesCompleted: got %d, want 1", res.Profile.ChallengesCompleted)
	}
	if res.Profile.LastActivity == nil || !res.Profile.LastActivity.Equal(now) {
		t.Error("lastActivity not updated")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	p := baseProfile()
	Apply(p, Award{BasePoints: 100}, now)

	if p.Points != 100 || p.ChallengesCompleted != 0 || len(p.Badges) != 1 {
		t.Errorf("input profile mutated: %+v", p)
	}
}

func TestLevelFormula(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{4999, 5},
		{5000, 6},
	}
	for _, tc := range cases {
		if got := profile.LevelForPoints(tc.points); got != tc.want {
			t.Errorf("level(%d): got %d, want %d", tc.points, got, tc.want)
		}
	}
}

func TestApplyLevelUp(t *testing.T) {
	now := time.Now()
	p := baseProfile()
	p.Points = 950

	res := Apply(p, Award{BasePoints: 100}, now)
	if !res.LeveledUp {
		t.Error("expected level up at 1050 points")
	}
	if res.Profile.Level != 2 {
		t.Errorf("level: got %d, want 2", res.Profile.Level)
	}

	// A second award inside the same level must not flag again.
	res = Apply(res.Profile, Award{BasePoints: 50}, now)
	if res.LeveledUp {
		t.Error("unexpected level up at 1100 points")
	}
}

func TestStreakStartsAtOne(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	res := Apply(baseProfile(), Award{BasePoints: 100}, now)

	if res.Profile.CurrentStreak != 1 {
		t.Errorf("currentStreak: got %d, want 1", res.Profile.CurrentStreak)
	}
	if res.Profile.LongestStreak != 1 {
		t.Errorf("longestStreak: got %d, want 1", res.Profile.LongestStreak)
	}
}

func TestStreakContinuesFromYesterday(t *testing.T) {
	yesterday := time.Date(2026, 8, 27, 22, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)

	p := baseProfile()
	p.CurrentStreak = 3
	p.LongestStreak = 5
	p.LastActivity = &yesterday

	res := Apply(p, Award{BasePoints: 100}, today)
	if res.Profile.CurrentStreak != 4 {
		t.Errorf("currentStreak: got %d, want 4", res.Profile.CurrentStreak)
	}
	if res.Profile.LongestStreak != 5 {
		t.Errorf("longestStreak: got %d, want 5", res.Profile.LongestStreak)
	}
}

func TestStreakUnchangedSameDay(t *testing.T) {
	morning := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 28, 21, 0, 0, 0, time.UTC)

	p := baseProfile()
	first := Apply(p, Award{BasePoints: 100}, morning)
	second := Apply(first.Profile, Award{BasePoints: 100}, evening)

	if second.Profile.CurrentStreak != first.Profile.CurrentStreak {
		t.Errorf("same-day submission changed streak: %d -> %d",
			first.Profile.CurrentStreak, second.Profile.CurrentStreak)
	}
	if second.Profile.Points <= first.Profile.Points {
		t.Error("same-day submission must still add points")
	}
	if second.Profile.ChallengesCompleted != 2 {
		t.Errorf("challengesCompleted: got %d, want 2", second.Profile.ChallengesCompleted)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	lastWeek := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	p := baseProfile()
	p.CurrentStreak = 6
	p.LongestStreak = 6
	p.LastActivity = &lastWeek

	res := Apply(p, Award{BasePoints: 100}, today)
	if res.Profile.CurrentStreak != 1 {
		t.Errorf("currentStreak: got %d, want 1", res.Profile.CurrentStreak)
	}
	if res.Profile.LongestStreak != 6 {
		t.Errorf("longestStreak: got %d, want 6", res.Profile.LongestStreak)
	}
}

func TestLongestStreakInvariant(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	p := baseProfile()

	for day := 0; day < 40; day++ {
		res := Apply(p, Award{BasePoints: 10}, now.AddDate(0, 0, day))
		if res.Profile.LongestStreak < res.Profile.CurrentStreak {
			t.Fatalf("day %d: longestStreak %d < currentStreak %d",
				day, res.Profile.LongestStreak, res.Profile.CurrentStreak)
		}
		p = res.Profile
	}
	if p.CurrentStreak != 40 || p.LongestStreak != 40 {
		t.Errorf("after 40 consecutive days: current %d longest %d", p.CurrentStreak, p.LongestStreak)
	}
}

func TestFirstChallengeBadge(t *testing.T) {
	now := time.Now()
	res := Apply(baseProfile(), Award{BasePoints: 100}, now)

	if !res.Profile.HasBadge(badge.FirstChallenge) {
		t.Error("expected first-challenge badge on first submission")
	}
	found := false
	for _, b := range res.NewBadges {
		if b == badge.FirstChallenge {
			found = true
		}
	}
	if !found {
		t.Error("first-challenge missing from NewBadges")
	}
}

func TestPointsBadges(t *testing.T) {
	now := time.Now()
	p := baseProfile()
	p.Points = 950
	p.ChallengesCompleted = 3

	res := Apply(p, Award{BasePoints: 100}, now)
	if !res.Profile.HasBadge(badge.ThousandPoints) {
		t.Error("expected thousand-points badge at 1050 points")
	}
	if res.Profile.HasBadge(badge.FiveThousandPoints) {
		t.Error("unexpected five-thousand-points badge at 1050 points")
	}

	p = res.Profile
	p.Points = 4950
	res = Apply(p, Award{BasePoints: 100}, now)
	if !res.Profile.HasBadge(badge.FiveThousandPoints) {
		t.Error("expected five-thousand-points badge at 5050 points")
	}
}

func TestCompletionAndStreakBadges(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	p := baseProfile()
	p.ChallengesCompleted = 9
	streak := 6
	p.CurrentStreak = streak
	p.LongestStreak = streak
	yesterday := now.AddDate(0, 0, -1)
	p.LastActivity = &yesterday

	res := Apply(p, Award{BasePoints: 50}, now)
	if !res.Profile.HasBadge(badge.Challenger) {
		t.Error("expected challenger badge at 10 completions")
	}
	if !res.Profile.HasBadge(badge.WeekStreak) {
		t.Error("expected week-streak badge at 7-day streak")
	}
	if res.Profile.HasBadge(badge.MonthStreak) {
		t.Error("unexpected month-streak badge at 7-day streak")
	}
}

func TestBadgesNeverDuplicatedOrRemoved(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	p := baseProfile()
	p.Points = 2000
	p.Badges = append(p.Badges, badge.ThousandPoints)

	res := Apply(p, Award{BasePoints: 100}, now)

	seen := map[string]int{}
	for _, b := range res.Profile.Badges {
		seen[b]++
	}
	if seen[badge.ThousandPoints] != 1 {
		t.Errorf("thousand-points held %d times", seen[badge.ThousandPoints])
	}
	if seen[badge.FirstSignup] != 1 {
		t.Error("first-signup badge removed")
	}
	for _, b := range res.NewBadges {
		if b == badge.ThousandPoints {
			t.Error("already-held badge reported as new")
		}
	}
}
