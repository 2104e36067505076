package ranking

import (
	"testing"

	"oceanKeeperAPI/internal/profile"
)

func prof(nickname string, points int, badges int) *profile.UserProfile {
	return &profile.UserProfile{
		ID:       "id-" + nickname,
		Nickname: nickname,
		Points:   points,
		Level:    profile.LevelForPoints(points),
		Badges:   make([]string, badges),
	}
}

func TestRankSortsByPointsDescending(t *testing.T) {
	entries := Rank([]*profile.UserProfile{
		prof("low", 100, 1),
		prof("high", 3000, 4),
		prof("mid", 1500, 2),
	}, 0)

	want := []string{"high", "mid", "low"}
	for i, nickname := range want {
		if entries[i].Nickname != nickname {
			t.Errorf("rank %d: got %s, want %s", i+1, entries[i].Nickname, nickname)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("rank field: got %d, want %d", entries[i].Rank, i+1)
		}
	}

	if entries[0].Level != 4 || entries[0].BadgeCount != 4 {
		t.Errorf("projection wrong: %+v", entries[0])
	}
}

func TestRankTiesKeepInsertionOrder(t *testing.T) {
	entries := Rank([]*profile.UserProfile{
		prof("first", 500, 0),
		prof("second", 500, 0),
		prof("third", 500, 0),
	}, 0)

	want := []string{"first", "second", "third"}
	for i, nickname := range want {
		if entries[i].Nickname != nickname {
			t.Errorf("tie order broken at %d: got %s, want %s", i, entries[i].Nickname, nickname)
		}
	}
}

func TestRankTruncates(t *testing.T) {
	var profiles []*profile.UserProfile
	for i := 0; i < 150; i++ {
		profiles = append(profiles, prof("user", i, 0))
	}

	if got := len(Rank(profiles, 0)); got != DefaultLimit {
		t.Errorf("default limit: got %d entries, want %d", got, DefaultLimit)
	}
	if got := len(Rank(profiles, 10)); got != 10 {
		t.Errorf("explicit limit: got %d entries, want 10", got)
	}
}

func TestRankDoesNotReorderInput(t *testing.T) {
	profiles := []*profile.UserProfile{
		prof("a", 1, 0),
		prof("b", 2, 0),
	}
	Rank(profiles, 0)
	if profiles[0].Nickname != "a" || profiles[1].Nickname != "b" {
		t.Error("input slice reordered")
	}
}
