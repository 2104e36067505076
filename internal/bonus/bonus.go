package bonus

import "strings"

// Bonus amounts awarded on top of the difficulty-scaled base points.
const (
	GroupBonus      = 30
	ShareBonus      = 20
	EndangeredBonus = 100
	FirstTimeBonus  = 10
)

// Token lists matched case-insensitively against the submission note.
// Free-text matching is a deliberate simplification: the note is
// user-controlled and the bonuses are trivially gameable. Verification
// of the claims behind them is out of scope.
var (
	groupTokens      = []string{"단체", "그룹"}
	shareTokens      = []string{"sns", "공유"}
	endangeredTokens = []string{"멸종위기종"}
)

// Evaluate derives bonus points from the submission note and the
// user's first-submission status. Each rule fires at most once.
func Evaluate(note string, firstSubmission bool) int {
	points := 0

	if note != "" {
		lowerNote := strings.ToLower(note)
		if containsAny(lowerNote, groupTokens) {
			points += GroupBonus
		}
		if containsAny(lowerNote, shareTokens) {
			points += ShareBonus
		}
		if containsAny(lowerNote, endangeredTokens) {
			points += EndangeredBonus
		}
	}

	if firstSubmission {
		points += FirstTimeBonus
	}

	return points
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
