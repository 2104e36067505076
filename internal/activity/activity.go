package activity

import "time"

// ActivityRecord is one accepted challenge submission. Records are
// append-only: written once, never mutated or deleted.
type ActivityRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ChallengeID string    `json:"challengeId"`
	BasePoints  int       `json:"basePoints"`
	BonusPoints int       `json:"bonusPoints"`
	TotalPoints int       `json:"totalPoints"`
	Location    string    `json:"location"`
	Note        string    `json:"note"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	ApprovedAt  time.Time `json:"approvedAt"`
}

// StatusApproved is the only status the engine produces: every
// submission is auto-approved. A manual review workflow is a
// documented non-goal.
const StatusApproved = "approved"

type SubmitRequest struct {
	ChallengeID string `json:"challengeId"`
	Location    string `json:"location"`
	Note        string `json:"note,omitempty"`
	PhotoData   string `json:"photoData,omitempty"`
}

// Rewards breaks down the award for the client-side result dialog.
type Rewards struct {
	BasePoints  int      `json:"basePoints"`
	BonusPoints int      `json:"bonusPoints"`
	TotalPoints int      `json:"totalPoints"`
	LeveledUp   bool     `json:"leveledUp"`
	NewBadges   []string `json:"newBadges"`
	NewLevel    int      `json:"newLevel"`
}

type SubmitResponse struct {
	Success      bool            `json:"success"`
	Activity     *ActivityRecord `json:"activity"`
	EarnedPoints int             `json:"earnedPoints"`
	TotalPoints  int             `json:"totalPoints"`
	Level        int             `json:"level"`
	LeveledUp    bool            `json:"leveledUp"`
	Badges       []string        `json:"badges"`
	NewBadges    []string        `json:"newBadges"`
	Message      string          `json:"message"`
	Rewards      Rewards         `json:"rewards"`
}
