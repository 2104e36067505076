package progression

import (
	"time"

	"oceanKeeperAPI/internal/badge"
	"oceanKeeperAPI/internal/profile"
)

// Award is the point outcome of one accepted submission, before it is
// applied to the profile.
type Award struct {
	BasePoints  int
	BonusPoints int
}

func (a Award) Total() int {
	return a.BasePoints + a.BonusPoints
}

// Result is the new profile snapshot plus the derived events used for
// the response message.
type Result struct {
	Profile   profile.UserProfile
	NewBadges []string
	LeveledUp bool
}

const dayFormat = "2006-01-02"

// Apply folds an award into a profile snapshot. Pure: the input
// profile is copied, nothing else is read or written.
//
// Streaks count consecutive calendar days with at least one accepted
// submission. A second submission on the same day leaves the streak
// untouched (no double counting per day).
func Apply(p profile.UserProfile, award Award, now time.Time) Result {
	p.Badges = append([]string(nil), p.Badges...)

	firstSubmission := p.ChallengesCompleted == 0

	p.Points += award.Total()
	p.ChallengesCompleted++
	p.LastLogin = now

	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)
	lastActivityDay := ""
	if p.LastActivity != nil {
		lastActivityDay = p.LastActivity.Format(dayFormat)
	}

	switch {
	case lastActivityDay == yesterday:
		p.CurrentStreak++
	case lastActivityDay != today:
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	lastActivity := now
	p.LastActivity = &lastActivity

	newLevel := profile.LevelForPoints(p.Points)
	leveledUp := newLevel > p.Level
	p.Level = newLevel

	newBadges := grantBadges(&p, firstSubmission)

	return Result{
		Profile:   p,
		NewBadges: newBadges,
		LeveledUp: leveledUp,
	}
}

// grantBadges evaluates the full badge catalog against the updated
// profile. Each check is independent and idempotent: a badge already
// held is never granted again.
func grantBadges(p *profile.UserProfile, firstSubmission bool) []string {
	newBadges := []string{}
	for _, b := range badge.Catalog() {
		if p.HasBadge(b.ID) {
			continue
		}
		if !criteriaMet(b, p, firstSubmission) {
			continue
		}
		p.Badges = append(p.Badges, b.ID)
		newBadges = append(newBadges, b.ID)
	}
	return newBadges
}

func criteriaMet(b badge.Badge, p *profile.UserProfile, firstSubmission bool) bool {
	switch b.CriteriaType {
	case badge.CriteriaFirstSubmit:
		return firstSubmission
	case badge.CriteriaPoints:
		return p.Points >= b.CriteriaValue
	case badge.CriteriaCompletions:
		return p.ChallengesCompleted >= b.CriteriaValue
	case badge.CriteriaStreak:
		return p.CurrentStreak >= b.CriteriaValue
	default:
		// signup badges are granted at registration, not here
		return false
	}
}
