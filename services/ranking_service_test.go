package services

import (
	"context"
	"fmt"
	"testing"

	"oceanKeeperAPI/internal/kvstore"
)

func TestGetRankingsOrdering(t *testing.T) {
	store := kvstore.NewMemoryStore()
	userSvc := NewUserService(store)
	rankSvc := NewRankingService(store)
	ctx := context.Background()

	// Insertion order doubles as the tie-break order.
	points := map[string]int{"first": 500, "second": 2000, "third": 500}
	for _, name := range []string{"first", "second", "third"} {
		prof, err := userSvc.CreateProfile(ctx, &CreateProfileRequest{
			UserID:   "user-" + name,
			Nickname: "kpr" + name,
		})
		if err != nil {
			t.Fatal(err)
		}
		prof.Points = points[name]
		if err := userSvc.saveProfile(ctx, prof); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := rankSvc.GetRankings(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	want := []string{"kprsecond", "kprfirst", "kprthird"}
	for i, nickname := range want {
		if entries[i].Nickname != nickname {
			t.Errorf("rank %d: got %s, want %s", i+1, entries[i].Nickname, nickname)
		}
	}
	if entries[0].BadgeCount != 1 {
		t.Errorf("badgeCount: got %d, want 1", entries[0].BadgeCount)
	}
}

func TestGetRankingsSkipsMalformedValues(t *testing.T) {
	store := kvstore.NewMemoryStore()
	userSvc := NewUserService(store)
	rankSvc := NewRankingService(store)
	ctx := context.Background()

	if _, err := userSvc.CreateProfile(ctx, &CreateProfileRequest{
		UserID: "user-1", Nickname: "바다지기",
	}); err != nil {
		t.Fatal(err)
	}
	store.Set(ctx, "user:broken", []byte(`not json`))

	entries, err := rankSvc.GetRankings(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestGetRankingsLimit(t *testing.T) {
	store := kvstore.NewMemoryStore()
	userSvc := NewUserService(store)
	rankSvc := NewRankingService(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := userSvc.CreateProfile(ctx, &CreateProfileRequest{
			UserID:   fmt.Sprintf("user-%d", i),
			Nickname: fmt.Sprintf("keeper%d", i),
		}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := rankSvc.GetRankings(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Error("ranks not 1-based dense")
	}
}
