// Package model defines shared data structures.
package model

import "time"

// Theme selects the color palette for the TUIs.
type Theme string

// Supported themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Passage is a fixed text the user reproduces in one session.
type Passage struct {
	ID       string
	Level    int
	Title    string
	Author   string
	Content  string
	HasAudio bool
}

// LevelConfig is the static configuration for one level (1-5).
type LevelConfig struct {
	ID               int
	Name             string
	Title            string
	DurationMinutes  int
	PassagesRequired int
	TotalPassages    int
	AccuracyRequired int
}

// PassageProgress records the best results for a single passage.
type PassageProgress struct {
	Completed    bool      `json:"completed"`
	BestWPM      int       `json:"bestWpm"`
	BestAccuracy int       `json:"bestAccuracy"`
	Attempts     int       `json:"attempts"`
	LastAttempt  time.Time `json:"lastAttempt"`
}

// Streak counts consecutive practice days.
type Streak struct {
	Current          int    `json:"current"`
	LastPracticeDate string `json:"lastPracticeDate"` // YYYY-MM-DD, empty before first practice
}

// UserProgress is the single persisted record per user.
type UserProgress struct {
	TutorialComplete     bool                       `json:"tutorialComplete"`
	CurrentLevel         int                        `json:"currentLevel"`
	Passages             map[string]PassageProgress `json:"passages"`
	Badges               []string                   `json:"badges"`
	Streak               Streak                     `json:"streak"`
	TotalPracticeMinutes int                        `json:"totalPracticeMinutes"`
	AnonymousID          string                     `json:"anonymousId"`
	Grade                int                        `json:"grade"` // 0 = not chosen
	Theme                Theme                      `json:"theme"`
}

// Badge describes an achievement.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// SessionResult is the terminal outcome of one typing session.
// All fields are always populated.
type SessionResult struct {
	PassageID             string
	WPM                   int
	Accuracy              int
	DurationSeconds       int
	Errors                int
	MaxConsecutiveCorrect int
	HadLongPause          bool
	CompletedAt           time.Time
}

// LeaderboardEntry is one row of a grade/level leaderboard.
type LeaderboardEntry struct {
	Rank          int
	AnonymousID   string
	Grade         int
	Level         int
	BestWPM       int
	BestAccuracy  int
	IsCurrentUser bool
}

// LeaderboardResult is the answer to a leaderboard query.
type LeaderboardResult struct {
	Entries      []LeaderboardEntry
	UserRank     int // 0 when the user is not ranked
	UserEntry    *LeaderboardEntry
	TotalEntries int
}
