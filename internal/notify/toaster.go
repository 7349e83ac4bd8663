package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"
	"strings"
	"time"
)

// Notifier receives every notice the handlers emit.
type Notifier interface {
	Notify(Notice) error
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(Notice) error { return nil }

// DesktopNotifier mirrors notices to the OS notification center.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(n Notice) error {
	title := "todo"
	if n.Kind == KindError {
		title = "todo: heads up"
	}
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, n.Message).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Message), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// escapeAppleScript quotes s for an AppleScript string literal. Backslashes
// go first so the quote escapes are not doubled.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// MaxToasts bounds the on-screen stack; the oldest toast is dropped first.
const MaxToasts = 5

// Toaster is the in-terminal toast stack. The zero value is ready to use.
type Toaster struct {
	active []Notice
}

// Push stamps the notice and adds it to the stack, returning the stored copy.
func (t *Toaster) Push(n Notice, now time.Time) Notice {
	if n.At.IsZero() {
		n.At = now
	}
	t.active = append(t.active, n)
	if len(t.active) > MaxToasts {
		t.active = slices.Clone(t.active[len(t.active)-MaxToasts:])
	}
	return n
}

func (t *Toaster) Dismiss(id string) bool {
	idx := slices.IndexFunc(t.active, func(n Notice) bool { return n.ID == id })
	if idx < 0 {
		return false
	}
	t.active = slices.Delete(slices.Clone(t.active), idx, idx+1)
	return true
}

// Expire drops every toast whose auto-close deadline has passed.
func (t *Toaster) Expire(now time.Time) int {
	kept := make([]Notice, 0, len(t.active))
	for _, n := range t.active {
		if n.Options.AutoClose > 0 && !now.Before(n.At.Add(n.Options.AutoClose)) {
			continue
		}
		kept = append(kept, n)
	}
	dropped := len(t.active) - len(kept)
	t.active = kept
	return dropped
}

func (t *Toaster) Active() []Notice {
	return slices.Clone(t.active)
}

func (t *Toaster) Len() int {
	return len(t.active)
}
