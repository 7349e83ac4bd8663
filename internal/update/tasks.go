package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/notify"
)

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		return m.quit()
	case m.Keys.Add:
		m.Mode = ModeForm
		m.FormFocus = 0
		m.focusFormField()
		m.Status = StatusBar{Text: "adding a task"}
		return m, nil
	case m.Keys.Up, "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case m.Keys.Down, "down":
		if m.Cursor < len(m.State.Visible())-1 {
			m.Cursor++
		}
		return m, nil
	case m.Keys.Toggle:
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m.toggleTask(task.ID)
	case m.Keys.Edit:
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.beginEdit(task)
		return m, nil
	case m.Keys.Delete:
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m.deleteTask(task.ID)
	case m.Keys.CycleFilter:
		return m.changeFilter(m.State.View.Filter.Next())
	case m.Keys.FilterAll:
		return m.changeFilter(model.FilterAll)
	case m.Keys.FilterDone:
		return m.changeFilter(model.FilterCompleted)
	case m.Keys.FilterOpen:
		return m.changeFilter(model.FilterPending)
	case m.Keys.Palette:
		m.Mode = ModePalette
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.helpViewport.GotoTop()
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case "pgup", "pgdown":
		if m.HelpVisible {
			m.scrollHelp(msg)
		}
		return m, nil
	}
	return m, nil
}

// handleEditKey routes keys to the inline editor. Confirm is the only exit.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == m.Keys.Confirm {
		id := m.State.View.EditingID
		m.State = m.State.SaveEdit(id)
		m.editInput.Blur()
		m.editInput.SetValue("")
		m.Mode = ModeBrowse
		m.Status = StatusBar{Text: "task saved"}
		m.logger.Debug("task edited", "id", id)
		return m, nil
	}
	typeInto(&m.editInput, msg)
	m.State = m.State.SetEditDraft(m.editInput.Value())
	return m, nil
}

func (m *Model) beginEdit(task model.Task) {
	m.State = m.State.BeginEdit(task.ID, task.Text)
	m.editInput.SetValue(task.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.Mode = ModeEdit
	m.Status = StatusBar{Text: "editing task"}
}

func (m Model) toggleTask(id int64) (tea.Model, tea.Cmd) {
	var notices []notify.Notice
	m.State, notices = m.State.ToggleComplete(id)
	m.clampCursor()
	if task, ok := m.State.Store.Get(id); ok {
		m.logger.Debug("task toggled", "id", id, "completed", task.Completed)
	}
	return m, m.emit(notices)
}

func (m Model) deleteTask(id int64) (tea.Model, tea.Cmd) {
	var notices []notify.Notice
	wasEditing := m.State.View.Editing
	m.State, notices = m.State.DeleteTask(id)
	if wasEditing && !m.State.View.Editing {
		m.editInput.Blur()
		m.Mode = ModeBrowse
	}
	m.clampCursor()
	if len(notices) > 0 {
		m.logger.Debug("task deleted", "id", id)
	}
	return m, m.emit(notices)
}

func (m Model) changeFilter(f model.Filter) (tea.Model, tea.Cmd) {
	m.State = m.State.ChangeFilter(f)
	m.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("showing %s tasks", f)}
	cmd := m.scheduleFilterSettle()
	return m, cmd
}

func (m Model) selectedTask() (model.Task, bool) {
	visible := m.State.Visible()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

// taskAt resolves a 1-based position in the visible list.
func (m Model) taskAt(position int) (model.Task, bool) {
	visible := m.State.Visible()
	if position < 1 || position > len(visible) {
		return model.Task{}, false
	}
	return visible[position-1], true
}

func (m *Model) clampCursor() {
	n := len(m.State.Visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
