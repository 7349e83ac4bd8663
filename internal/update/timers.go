package update

import (
	"errors"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/notify"
	"github.com/sandeepkv93/todo/internal/scheduler"
)

const filterTimerID = "filter"

func waitForTimerCmd(ch <-chan scheduler.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return engineFiredMsg{Event: ev}
	}
}

// after arms a one-shot timer. With an engine the event comes back through
// the listener started in Init, otherwise a tea.Tick delivers it.
func (m Model) after(d time.Duration, ev scheduler.Event) tea.Cmd {
	if m.Timers == nil {
		return tea.Tick(d, func(time.Time) tea.Msg { return TimerFiredMsg{Event: ev} })
	}
	if _, err := m.Timers.After(d, ev); err != nil {
		m.logger.Warn("timer not scheduled", "kind", ev.Kind, "err", err)
	}
	return nil
}

func (m Model) onTimer(ev scheduler.Event) (Model, tea.Cmd) {
	// Any timer sweeps toasts whose own close event was dropped.
	if n := m.Toasts.Expire(m.now()); n > 0 {
		m.logger.Debug("toasts expired", "count", n)
	}
	switch ev.Kind {
	case scheduler.KindWelcome:
		if !m.State.View.ShowWelcome {
			return m, nil
		}
		m.State = m.State.DismissWelcome()
		m.logger.Debug("welcome dismissed")
	case scheduler.KindFilter:
		// A newer filter change owns the transition.
		if ev.Ref != strconv.Itoa(m.filterSeq) {
			return m, nil
		}
		m.State = m.State.SettleFilter()
	case scheduler.KindToastExpire:
		if m.Toasts.Dismiss(ev.Ref) {
			m.logger.Debug("toast closed", "id", ev.Ref)
		}
	}
	return m, nil
}

func (m Model) scheduleWelcome() tea.Cmd {
	if !m.State.View.ShowWelcome {
		return nil
	}
	return m.after(m.cfg.WelcomeDuration(), scheduler.Event{ID: welcomeTimerID, Kind: scheduler.KindWelcome})
}

func (m *Model) scheduleFilterSettle() tea.Cmd {
	m.filterSeq++
	d := m.cfg.FilterTransition()
	if d <= 0 {
		m.State = m.State.SettleFilter()
		return nil
	}
	return m.after(d, scheduler.Event{ID: filterTimerID, Kind: scheduler.KindFilter, Ref: strconv.Itoa(m.filterSeq)})
}

// emit shows each notice as a toast, forwards it to the desktop notifier when
// enabled and arms its auto-close timer.
func (m *Model) emit(notices []notify.Notice) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(notices))
	for _, n := range notices {
		stored := m.Toasts.Push(n, m.now())
		m.logger.Info("notice", "kind", stored.Kind, "message", stored.Message)
		if m.cfg.DesktopNotifications {
			switch err := m.notifier.Notify(stored); {
			case errors.Is(err, notify.ErrThrottled):
				m.logger.Debug("desktop notification throttled", "id", stored.ID)
			case err != nil:
				m.logger.Warn("desktop notification failed", "err", err)
			}
		}
		if stored.Options.AutoClose > 0 {
			cmds = append(cmds, m.after(stored.Options.AutoClose, scheduler.Event{
				ID:   "toast-" + stored.ID,
				Kind: scheduler.KindToastExpire,
				Ref:  stored.ID,
			}))
		}
	}
	return tea.Batch(cmds...)
}

// cancelTimers drops pending UI timers so nothing fires after teardown.
func (m Model) cancelTimers() {
	if m.Timers == nil {
		return
	}
	m.Timers.Cancel(welcomeTimerID)
	m.Timers.Cancel(filterTimerID)
	for _, n := range m.Toasts.Active() {
		m.Timers.Cancel("toast-" + n.ID)
	}
}
