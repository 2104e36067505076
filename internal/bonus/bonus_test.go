package bonus

import "testing"

func TestEvaluateSingleRules(t *testing.T) {
	cases := []struct {
		name string
		note string
		want int
	}{
		{"empty note", "", 0},
		{"no matching token", "오늘 날씨가 좋았어요", 0},
		{"group token", "단체로 참여했습니다", GroupBonus},
		{"group synonym", "그룹 활동", GroupBonus},
		{"share token upper case", "SNS에 올렸어요", ShareBonus},
		{"share synonym", "친구들과 공유했습니다", ShareBonus},
		{"endangered species", "멸종위기종을 발견했어요", EndangeredBonus},
	}
	for _, tc := range cases {
		if got := Evaluate(tc.note, false); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateRuleFiresOnce(t *testing.T) {
	// Both group tokens in one note still award a single group bonus.
	if got := Evaluate("단체 그룹 단체", false); got != GroupBonus {
		t.Errorf("got %d, want %d", got, GroupBonus)
	}
}

func TestEvaluateAccumulation(t *testing.T) {
	// All three note rules plus the first-time bonus stack additively.
	note := "단체로 SNS에 공유했어요 멸종위기종 발견"
	want := GroupBonus + ShareBonus + EndangeredBonus + FirstTimeBonus
	if got := Evaluate(note, true); got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestEvaluateFirstTimeOnly(t *testing.T) {
	if got := Evaluate("", true); got != FirstTimeBonus {
		t.Errorf("got %d, want %d", got, FirstTimeBonus)
	}
}
