// Package notify delivers fire-and-forget user notifications.
package notify

import (
	"fmt"
	"io"

	"github.com/verte-zerg/typegrow/internal/model"
)

// Notifier receives engine and store events. Implementations must never
// block the caller; failures stay inside the notifier.
type Notifier interface {
	BadgeAwarded(badge model.Badge)
	SessionComplete(result *model.SessionResult)
	LevelUnlocked(level int)
}

// Writer prints notifications to an io.Writer, usually stderr.
type Writer struct {
	Out io.Writer
}

// BadgeAwarded announces a newly earned badge.
func (w *Writer) BadgeAwarded(badge model.Badge) {
	w.printf("%s  Badge earned: %s — %s\n", badge.Icon, badge.Name, badge.Description)
}

// SessionComplete announces a finished session.
func (w *Writer) SessionComplete(result *model.SessionResult) {
	w.printf("Session complete: %d WPM, %d%% accuracy, %d errors\n",
		result.WPM, result.Accuracy, result.Errors)
}

// LevelUnlocked announces a level advance.
func (w *Writer) LevelUnlocked(level int) {
	w.printf("Level %d unlocked!\n", level)
}

func (w *Writer) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(w.Out, format, args...); err != nil {
		// Best-effort notification output.
		_ = err
	}
}

// Discard drops all notifications.
type Discard struct{}

// BadgeAwarded implements Notifier.
func (Discard) BadgeAwarded(model.Badge) {}

// SessionComplete implements Notifier.
func (Discard) SessionComplete(*model.SessionResult) {}

// LevelUnlocked implements Notifier.
func (Discard) LevelUnlocked(int) {}
