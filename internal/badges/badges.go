// Package badges defines the achievement catalog and qualification rules.
package badges

import (
	"fmt"

	"github.com/verte-zerg/typegrow/internal/model"
)

// Badge ids referenced across the app.
const (
	FirstSteps     = "first-steps"
	FocusedMind    = "focused-mind"
	RhythmFinder   = "rhythm-finder"
	ListenerTypist = "listener-typist"
	Streak3        = "streak-3"
	Streak7        = "streak-7"
	LevelUp        = "level-up"
	Graduation     = "graduation"
)

// RhythmRunLength is the consecutive-correct run that earns Rhythm Finder.
const RhythmRunLength = 50

// LevelComplete returns the champion badge id for a level.
func LevelComplete(level int) string {
	return fmt.Sprintf("level-%d-complete", level)
}

var catalog = []model.Badge{
	{ID: FirstSteps, Name: "First Steps", Description: "Complete the tutorial", Icon: "🌱"},
	{ID: FocusedMind, Name: "Focused Mind", Description: "Finish a session without pausing for 30+ seconds", Icon: "🧘"},
	{ID: RhythmFinder, Name: "Rhythm Finder", Description: "50+ consecutive correct keystrokes", Icon: "🎵"},
	{ID: ListenerTypist, Name: "Listener Typist", Description: "Complete a listen-and-type passage", Icon: "👂"},
	{ID: Streak3, Name: "3-Day Streak", Description: "Practice for 3 consecutive days", Icon: "🔥"},
	{ID: Streak7, Name: "7-Day Streak", Description: "Practice for 7 consecutive days", Icon: "⭐"},
	{ID: LevelUp, Name: "Level Up", Description: "Advance to a new level", Icon: "📈"},
	{ID: LevelComplete(1), Name: "Seedling Champion", Description: "Complete all required Level 1 passages", Icon: "🏅"},
	{ID: LevelComplete(2), Name: "Explorer Champion", Description: "Complete all required Level 2 passages", Icon: "🏅"},
	{ID: LevelComplete(3), Name: "Builder Champion", Description: "Complete all required Level 3 passages", Icon: "🏅"},
	{ID: LevelComplete(4), Name: "Artisan Champion", Description: "Complete all required Level 4 passages", Icon: "🏅"},
	{ID: Graduation, Name: "Graduation", Description: "Complete Level 5", Icon: "🎓"},
}

// All returns the badge catalog in display order.
func All() []model.Badge {
	out := make([]model.Badge, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a badge descriptor by id.
func Lookup(id string) (model.Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}

func held(rec *model.UserProgress, id string) bool {
	for _, b := range rec.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// EvaluateSession returns the badge ids that newly qualify from a completed
// session and the just-updated progress record. Streak badges assume
// UpdateStreak already ran. Already-held badges are never returned, so a
// single consolidated notification needs no dedup by the caller.
func EvaluateSession(result *model.SessionResult, rec *model.UserProgress) []string {
	var earned []string
	if !result.HadLongPause && !held(rec, FocusedMind) {
		earned = append(earned, FocusedMind)
	}
	if result.MaxConsecutiveCorrect >= RhythmRunLength && !held(rec, RhythmFinder) {
		earned = append(earned, RhythmFinder)
	}
	if rec.Streak.Current >= 3 && !held(rec, Streak3) {
		earned = append(earned, Streak3)
	}
	if rec.Streak.Current >= 7 && !held(rec, Streak7) {
		earned = append(earned, Streak7)
	}
	return earned
}
