// Package leaderboard keeps grade/level typing scores.
//
// The core never depends on this for gating or badges; scores are submitted
// fire-and-forget after a completed session and queried for display only.
package leaderboard

import (
	"context"
	"database/sql"

	"github.com/verte-zerg/typegrow/internal/model"
)

// TopN is how many entries a query returns.
const TopN = 20

// Board is the submit/query contract.
type Board interface {
	SubmitScore(ctx context.Context, anonymousID string, grade, level, wpm, accuracy int) error
	GetLeaderboard(ctx context.Context, grade, level int, anonymousID string) (model.LeaderboardResult, error)
}

// SQLiteBoard stores scores in SQLite, sharing the progress database.
type SQLiteBoard struct {
	db *sql.DB
}

// NewSQLite wraps an open database handle and applies migrations.
func NewSQLite(db *sql.DB) (*SQLiteBoard, error) {
	b := &SQLiteBoard{db: db}
	if err := b.migrate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBoard) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS leaderboard_entries (
			anonymous_id TEXT NOT NULL,
			grade INTEGER NOT NULL,
			level INTEGER NOT NULL,
			best_wpm INTEGER NOT NULL DEFAULT 0,
			best_accuracy INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (anonymous_id, grade, level)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_grade_level
			ON leaderboard_entries(grade, level, best_wpm DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := b.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SubmitScore upserts a score, keeping the best WPM and accuracy per
// (anonymousID, grade, level).
func (b *SQLiteBoard) SubmitScore(ctx context.Context, anonymousID string, grade, level, wpm, accuracy int) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO leaderboard_entries (anonymous_id, grade, level, best_wpm, best_accuracy, updated_at)
		 VALUES (?, ?, ?, ?, ?, datetime('now'))
		 ON CONFLICT(anonymous_id, grade, level) DO UPDATE SET
			best_wpm = MAX(best_wpm, excluded.best_wpm),
			best_accuracy = MAX(best_accuracy, excluded.best_accuracy),
			updated_at = excluded.updated_at`,
		anonymousID, grade, level, wpm, accuracy)
	return err
}

// GetLeaderboard returns the top entries for a grade/level plus the position
// of the given user, if any. anonymousID may be empty.
func (b *SQLiteBoard) GetLeaderboard(ctx context.Context, grade, level int, anonymousID string) (model.LeaderboardResult, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT anonymous_id, grade, level, best_wpm, best_accuracy
		 FROM leaderboard_entries
		 WHERE grade = ? AND level = ?
		 ORDER BY best_wpm DESC, best_accuracy DESC, anonymous_id ASC`,
		grade, level)
	if err != nil {
		return model.LeaderboardResult{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var all []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.AnonymousID, &e.Grade, &e.Level, &e.BestWPM, &e.BestAccuracy); err != nil {
			return model.LeaderboardResult{}, err
		}
		e.Rank = len(all) + 1
		all = append(all, e)
	}
	if err := rows.Err(); err != nil {
		return model.LeaderboardResult{}, err
	}

	result := model.LeaderboardResult{TotalEntries: len(all)}
	for i := range all {
		if anonymousID != "" && all[i].AnonymousID == anonymousID {
			all[i].IsCurrentUser = true
			entry := all[i]
			result.UserRank = entry.Rank
			result.UserEntry = &entry
		}
	}
	if len(all) > TopN {
		result.Entries = all[:TopN]
	} else {
		result.Entries = all
	}
	return result, nil
}
