// Package levels holds the static level configuration table.
package levels

import "github.com/verte-zerg/typegrow/internal/model"

// Level bounds.
const (
	Min = 1
	Max = 5
)

var table = map[int]model.LevelConfig{
	1: {
		ID:               1,
		Name:             "L1",
		Title:            "Typing Seedling",
		DurationMinutes:  10,
		PassagesRequired: 8,
		TotalPassages:    10,
		AccuracyRequired: 85,
	},
	2: {
		ID:               2,
		Name:             "L2",
		Title:            "Typing Explorer",
		DurationMinutes:  15,
		PassagesRequired: 12,
		TotalPassages:    15,
		AccuracyRequired: 88,
	},
	3: {
		ID:               3,
		Name:             "L3",
		Title:            "Typing Builder",
		DurationMinutes:  15,
		PassagesRequired: 16,
		TotalPassages:    20,
		AccuracyRequired: 90,
	},
	4: {
		ID:               4,
		Name:             "L4",
		Title:            "Typing Artisan",
		DurationMinutes:  20,
		PassagesRequired: 20,
		TotalPassages:    25,
		AccuracyRequired: 92,
	},
	5: {
		ID:               5,
		Name:             "L5",
		Title:            "Typing Master",
		DurationMinutes:  25,
		PassagesRequired: 24,
		TotalPassages:    30,
		AccuracyRequired: 95,
	},
}

// Get returns the configuration for a level. ok is false outside [Min, Max].
func Get(level int) (model.LevelConfig, bool) {
	cfg, ok := table[level]
	return cfg, ok
}

// MustGet returns the configuration for a level known to be valid.
// Out-of-range levels return the level 1 configuration.
func MustGet(level int) model.LevelConfig {
	if cfg, ok := table[level]; ok {
		return cfg
	}
	return table[Min]
}

// Valid reports whether level is within [Min, Max].
func Valid(level int) bool {
	return level >= Min && level <= Max
}
