package badge

import "time"

type CriteriaType string

const (
	CriteriaSignup      CriteriaType = "signup"
	CriteriaFirstSubmit CriteriaType = "first_submit"
	CriteriaPoints      CriteriaType = "points"
	CriteriaCompletions CriteriaType = "completions"
	CriteriaStreak      CriteriaType = "streak"
)

// Badge ids as stored in profiles. One-way flags: granted once,
// never revoked.
const (
	FirstSignup        = "first-signup"
	FirstChallenge     = "first-challenge"
	ThousandPoints     = "thousand-points"
	FiveThousandPoints = "five-thousand-points"
	Challenger         = "challenger"
	EcoGuardian        = "eco-guardian"
	WeekStreak         = "week-streak"
	MonthStreak        = "month-streak"
)

type Badge struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Icon          string       `json:"icon"`
	CriteriaType  CriteriaType `json:"criteria_type"`
	CriteriaValue int          `json:"criteria_value"`
}

type BadgeWithStatus struct {
	Badge
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

var catalog = []Badge{
	{ID: FirstSignup, Name: "첫 가입", Description: "앱에 처음 가입했습니다", Icon: "🎉", CriteriaType: CriteriaSignup},
	{ID: FirstChallenge, Name: "첫 챌린지", Description: "첫 번째 챌린지를 완료했습니다", Icon: "🥇", CriteriaType: CriteriaFirstSubmit},
	{ID: ThousandPoints, Name: "천점 달성", Description: "1000포인트를 달성했습니다", Icon: "💎", CriteriaType: CriteriaPoints, CriteriaValue: 1000},
	{ID: FiveThousandPoints, Name: "오천점 달성", Description: "5000포인트를 달성했습니다", Icon: "💍", CriteriaType: CriteriaPoints, CriteriaValue: 5000},
	{ID: Challenger, Name: "도전자", Description: "10개의 챌린지를 완료했습니다", Icon: "🏆", CriteriaType: CriteriaCompletions, CriteriaValue: 10},
	{ID: EcoGuardian, Name: "환경지킴이", Description: "50개의 챌린지를 완료했습니다", Icon: "🌍", CriteriaType: CriteriaCompletions, CriteriaValue: 50},
	{ID: WeekStreak, Name: "일주일 연속", Description: "7일 연속 활동했습니다", Icon: "📅", CriteriaType: CriteriaStreak, CriteriaValue: 7},
	{ID: MonthStreak, Name: "한달 연속", Description: "30일 연속 활동했습니다", Icon: "🔥", CriteriaType: CriteriaStreak, CriteriaValue: 30},
}

// Catalog returns the full badge catalog in display order.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}
