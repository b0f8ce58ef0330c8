package journey

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/typegrow/internal/badges"
	"github.com/verte-zerg/typegrow/internal/model"
)

const defaultWidth = 80

// TerminalWidth returns the display width of the terminal behind fd, or a
// fixed default when fd is not a terminal (pipes, CI).
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// RenderPlain writes the journey overview as plain text, for non-interactive
// use. Lines are kept within the given width.
func RenderPlain(w io.Writer, rec *model.UserProgress, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	if _, err := fmt.Fprintln(w, truncate(summaryLine(rec), width)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", minInt(width, 60))); err != nil {
		return err
	}
	for _, r := range levelRows(rec) {
		line := fmt.Sprintf("Level %d  %-16s %-9s %2d/%-2d  %3d wpm  %3d%%",
			r.Level, r.Name, r.Status.String(), r.Stats.Completed, r.Stats.Total,
			r.Stats.AvgWPM, r.Stats.AvgAccuracy)
		if _, err := fmt.Fprintln(w, truncate(line, width)); err != nil {
			return err
		}
	}

	earned := map[string]bool{}
	for _, id := range rec.Badges {
		earned[id] = true
	}
	if _, err := fmt.Fprintf(w, "\nBadges (%d/%d):\n", len(rec.Badges), len(badges.All())); err != nil {
		return err
	}
	for _, badge := range badges.All() {
		mark := " "
		if earned[badge.ID] {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %s %s — %s", mark, badge.Icon, badge.Name, badge.Description)
		if _, err := fmt.Fprintln(w, truncate(line, width)); err != nil {
			return err
		}
	}
	return nil
}

// RenderLeaderboard writes a grade/level leaderboard as plain text.
func RenderLeaderboard(w io.Writer, res *model.LeaderboardResult, grade, level, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	if _, err := fmt.Fprintf(w, "Leaderboard — grade %d, level %d (%d typists)\n", grade, level, res.TotalEntries); err != nil {
		return err
	}
	if len(res.Entries) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet. Be the first!")
		return err
	}
	for _, e := range res.Entries {
		marker := "  "
		if e.IsCurrentUser {
			marker = "> "
		}
		line := fmt.Sprintf("%s%3d. %-16s %3d wpm  %3d%%", marker, e.Rank, e.AnonymousID, e.BestWPM, e.BestAccuracy)
		if _, err := fmt.Fprintln(w, truncate(line, width)); err != nil {
			return err
		}
	}
	if res.UserRank > len(res.Entries) && res.UserEntry != nil {
		if _, err := fmt.Fprintf(w, "...\n> %3d. %-16s %3d wpm  %3d%%\n",
			res.UserRank, res.UserEntry.AnonymousID, res.UserEntry.BestWPM, res.UserEntry.BestAccuracy); err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
