package badges

import (
	"testing"

	"github.com/verte-zerg/typegrow/internal/model"
)

func cleanRecord() *model.UserProgress {
	return &model.UserProgress{
		CurrentLevel: 1,
		Passages:     map[string]model.PassageProgress{},
	}
}

func TestEvaluateSessionFocusedAndRhythm(t *testing.T) {
	rec := cleanRecord()
	result := &model.SessionResult{
		MaxConsecutiveCorrect: 55,
		HadLongPause:          false,
	}
	earned := EvaluateSession(result, rec)
	if !contains(earned, FocusedMind) || !contains(earned, RhythmFinder) {
		t.Fatalf("expected focused-mind and rhythm-finder, got %v", earned)
	}
}

func TestEvaluateSessionPauseBlocksFocusedMind(t *testing.T) {
	rec := cleanRecord()
	result := &model.SessionResult{MaxConsecutiveCorrect: 10, HadLongPause: true}
	if earned := EvaluateSession(result, rec); len(earned) != 0 {
		t.Fatalf("expected no badges, got %v", earned)
	}
}

func TestEvaluateSessionSkipsHeldBadges(t *testing.T) {
	rec := cleanRecord()
	rec.Badges = []string{FocusedMind, RhythmFinder}
	result := &model.SessionResult{MaxConsecutiveCorrect: 60, HadLongPause: false}
	if earned := EvaluateSession(result, rec); len(earned) != 0 {
		t.Fatalf("held badges re-qualified: %v", earned)
	}
}

func TestEvaluateSessionStreakThresholds(t *testing.T) {
	rec := cleanRecord()
	rec.Streak.Current = 3
	result := &model.SessionResult{HadLongPause: true}
	earned := EvaluateSession(result, rec)
	if !contains(earned, Streak3) || contains(earned, Streak7) {
		t.Fatalf("streak 3 should earn only streak-3: %v", earned)
	}
	rec.Streak.Current = 7
	earned = EvaluateSession(result, rec)
	if !contains(earned, Streak7) {
		t.Fatalf("streak 7 should earn streak-7: %v", earned)
	}
}

func TestLookupAndLevelComplete(t *testing.T) {
	if LevelComplete(3) != "level-3-complete" {
		t.Fatalf("unexpected champion badge id %q", LevelComplete(3))
	}
	if _, ok := Lookup(Graduation); !ok {
		t.Fatalf("graduation badge missing from catalog")
	}
	if _, ok := Lookup("no-such-badge"); ok {
		t.Fatalf("unknown badge id resolved")
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
