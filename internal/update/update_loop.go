package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleWelcome()}
	if m.State.View.ShowWelcome {
		cmds = append(cmds, m.welcomeSpinner.Tick)
	}
	if m.Timers != nil {
		cmds = append(cmds, waitForTimerCmd(m.Timers.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.progressBar.Width = max(typed.Width-8, 10)
		m.helpViewport.Width = max(typed.Width-8, 20)
		return m, nil
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			return m.quit()
		}
		if m.State.View.ShowWelcome {
			if keyStr == m.Keys.Quit {
				return m.quit()
			}
			return m, nil
		}
		switch m.Mode {
		case ModePalette:
			return m.handlePaletteKey(typed)
		case ModeForm:
			return m.handleFormKey(typed)
		case ModeEdit:
			return m.handleEditKey(typed)
		}
		return m.handleBrowseKey(typed)
	case spinner.TickMsg:
		if !m.State.View.ShowWelcome {
			return m, nil
		}
		var cmd tea.Cmd
		m.welcomeSpinner, cmd = m.welcomeSpinner.Update(typed)
		return m, cmd
	case TimerFiredMsg:
		return m.onTimer(typed.Event)
	case engineFiredMsg:
		next, cmd := m.onTimer(typed.Event)
		if next.Timers != nil && !next.Quitting {
			cmd = tea.Batch(cmd, waitForTimerCmd(next.Timers.C()))
		}
		return next, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.cancelTimers()
	m.logger.Info("quitting", "tasks", m.State.Store.Len())
	return m, tea.Quit
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.State.View.ShowWelcome {
		return views.RenderWelcome(m.welcomeSpinner.View(), m.Width)
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Width:         m.Width,
		Toasts:        m.renderToasts(),
		ToastPosition: string(m.State.Options.Position),
		Header:        m.renderHeader(),
		Quote:         views.RenderQuote(m.State.View.Quote),
		Progress:      m.renderProgress(),
		Filters:       m.renderFilterBar(),
		Form:          m.renderForm(),
		List:          m.renderTaskList(),
		Palette:       views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		Help:          m.renderHelpIfVisible(),
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Footer:        m.renderFooter(),
	})
}
