package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/notify"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Cancel:
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case m.Keys.Confirm:
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	typeInto(&m.commandInput, msg)
	m.Palette.Input = m.commandInput.Value()
	return m, nil
}

func (m Model) closePalette() Model {
	m.Mode = ModeBrowse
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m = m.closePalette()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var (
		notices []notify.Notice
		cmds    []tea.Cmd
	)
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			// The palette stages its own draft; the form keeps what was typed.
			staged := m.State.View.Form
			var (
				added model.Task
				ok    bool
				out   []notify.Notice
			)
			m.State, added, ok, out = m.State.SetForm(a.Draft).AddTask()
			m.State = m.State.SetForm(staged)
			notices = append(notices, out...)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "task rejected"}
			}
			return commands.Result{Message: fmt.Sprintf("added task: %s", added.Text)}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			task, ok := m.taskAt(t.Position)
			if !ok {
				return commands.Result{}, noTaskAt(t.Position)
			}
			var out []notify.Notice
			m.State, out = m.State.DeleteTask(task.ID)
			notices = append(notices, out...)
			return commands.Result{Message: fmt.Sprintf("deleted task: %s", task.Text)}, nil
		},
		Done: func(t commands.TargetArgs) (commands.Result, error) {
			task, ok := m.taskAt(t.Position)
			if !ok {
				return commands.Result{}, noTaskAt(t.Position)
			}
			var out []notify.Notice
			m.State, out = m.State.ToggleComplete(task.ID)
			notices = append(notices, out...)
			state := "pending"
			if !task.Completed {
				state = "completed"
			}
			return commands.Result{Message: fmt.Sprintf("marked %s: %s", state, task.Text)}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			task, ok := m.taskAt(e.Position)
			if !ok {
				return commands.Result{}, noTaskAt(e.Position)
			}
			m.State = m.State.BeginEdit(task.ID, task.Text).SetEditDraft(e.Text).SaveEdit(task.ID)
			return commands.Result{Message: fmt.Sprintf("renamed task: %s", e.Text)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.State = m.State.ChangeFilter(f.Filter)
			m.Cursor = 0
			cmds = append(cmds, m.scheduleFilterSettle())
			return commands.Result{Message: fmt.Sprintf("showing %s tasks", f.Filter)}, nil
		},
	})

	m = m.closePalette()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("command failed", "input", raw, "err", err)
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.logger.Debug("command executed", "input", raw)
	}
	m.clampCursor()
	cmds = append(cmds, m.emit(notices))
	return m, tea.Batch(cmds...)
}

func noTaskAt(position int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at position %d", position)}
}
