package profile

import "time"

// SignupBonusPoints is credited once when the profile is created.
const SignupBonusPoints = 100

// PointsPerLevel is the level step: level = points/1000 + 1.
const PointsPerLevel = 1000

// UserProfile is the persistent gamification state of one user.
// It is created once at registration and mutated only by the
// submission path afterwards. Points never decrease and badges are
// never removed.
type UserProfile struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email,omitempty"`
	Nickname            string     `json:"nickname"`
	Points              int        `json:"points"`
	Level               int        `json:"level"`
	Badges              []string   `json:"badges"`
	ChallengesCompleted int        `json:"challengesCompleted"`
	CurrentStreak       int        `json:"currentStreak"`
	LongestStreak       int        `json:"longestStreak"`
	LastActivity        *time.Time `json:"lastActivity,omitempty"`
	JoinedAt            time.Time  `json:"joinedAt"`
	LastLogin           time.Time  `json:"lastLogin"`
}

// LevelForPoints computes the level implied by a point total.
func LevelForPoints(points int) int {
	return points/PointsPerLevel + 1
}

// HasBadge reports whether the profile already holds a badge.
func (p *UserProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

type UpdateProfileRequest struct {
	Nickname string `json:"nickname,omitempty"`
}
