// Package gating derives level access and unlock decisions from progress data.
//
// Nothing here is stored; every query recomputes from the user record and the
// static level table. Passages map to levels through the catalog entry's
// Level field, never by parsing ids.
package gating

import (
	"math"

	"github.com/verte-zerg/typegrow/internal/content"
	"github.com/verte-zerg/typegrow/internal/levels"
	"github.com/verte-zerg/typegrow/internal/model"
)

// Status is the derived state of a level for a given user.
type Status int

// Level states.
const (
	Locked Status = iota
	Unlocked
	Complete
)

func (s Status) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case Complete:
		return "complete"
	default:
		return "locked"
	}
}

// Stats aggregates a user's results for one level.
type Stats struct {
	Completed   int
	Total       int
	AvgWPM      int
	AvgAccuracy int
}

// CompletedCount counts completed passages in a level.
func CompletedCount(rec *model.UserProgress, level int) int {
	count := 0
	for id, pp := range rec.Passages {
		if lvl, ok := content.LevelOf(id); ok && lvl == level && pp.Completed {
			count++
		}
	}
	return count
}

// averageBestAccuracy averages best accuracy over the level's attempted
// passages. Passages never attempted are excluded entirely.
func averageBestAccuracy(rec *model.UserProgress, level int) float64 {
	sum, n := 0, 0
	for id, pp := range rec.Passages {
		if lvl, ok := content.LevelOf(id); ok && lvl == level {
			sum += pp.BestAccuracy
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// CanUnlockNext reports whether the user's current level satisfies its
// unlock condition. At the top level there is nothing left to unlock.
func CanUnlockNext(rec *model.UserProgress) bool {
	if rec.CurrentLevel >= levels.Max {
		return false
	}
	cfg, ok := levels.Get(rec.CurrentLevel)
	if !ok {
		return false
	}
	return CompletedCount(rec, rec.CurrentLevel) >= cfg.PassagesRequired &&
		averageBestAccuracy(rec, rec.CurrentLevel) >= float64(cfg.AccuracyRequired)
}

// LevelStatus derives the state of a level for the user. Unknown levels are
// locked; callers redirect away, this never errors.
func LevelStatus(rec *model.UserProgress, level int) Status {
	cfg, ok := levels.Get(level)
	if !ok {
		return Locked
	}
	if CompletedCount(rec, level) >= cfg.PassagesRequired {
		return Complete
	}
	if level <= rec.CurrentLevel {
		return Unlocked
	}
	if level == rec.CurrentLevel+1 && CanUnlockNext(rec) {
		return Unlocked
	}
	return Locked
}

// LevelComplete reports whether a level's completion count is met.
func LevelComplete(rec *model.UserProgress, level int) bool {
	cfg, ok := levels.Get(level)
	if !ok {
		return false
	}
	return CompletedCount(rec, level) >= cfg.PassagesRequired
}

// Graduated reports whether the user finished the final level.
func Graduated(rec *model.UserProgress) bool {
	return rec.CurrentLevel == levels.Max && LevelComplete(rec, levels.Max)
}

// LevelStats returns the aggregate display stats for a level. Averages run
// over passages with a recorded best WPM; empty sets yield zeros.
func LevelStats(rec *model.UserProgress, level int) Stats {
	cfg, ok := levels.Get(level)
	if !ok {
		return Stats{}
	}
	stats := Stats{
		Completed: CompletedCount(rec, level),
		Total:     cfg.TotalPassages,
	}
	wpmSum, accSum, n := 0, 0, 0
	for id, pp := range rec.Passages {
		if lvl, ok := content.LevelOf(id); ok && lvl == level && pp.BestWPM > 0 {
			wpmSum += pp.BestWPM
			accSum += pp.BestAccuracy
			n++
		}
	}
	if n > 0 {
		stats.AvgWPM = int(math.Round(float64(wpmSum) / float64(n)))
		stats.AvgAccuracy = int(math.Round(float64(accSum) / float64(n)))
	}
	return stats
}
