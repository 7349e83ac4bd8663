package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/notify"
	"github.com/sandeepkv93/todo/internal/views"
)

const formFields = 4

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Cancel:
		m.Mode = ModeBrowse
		m.blurForm()
		m.Status = StatusBar{}
		return m, nil
	case m.Keys.NextField:
		m.FormFocus = (m.FormFocus + 1) % formFields
		m.focusFormField()
		return m, nil
	case m.Keys.PrevField:
		m.FormFocus = (m.FormFocus + formFields - 1) % formFields
		m.focusFormField()
		return m, nil
	case m.Keys.Confirm:
		if m.FormFocus == views.FieldCategory {
			m.acceptCategorySuggestion()
		}
		return m.submitForm()
	}

	if m.FormFocus == views.FieldPriority {
		form := m.State.View.Form
		switch msg.String() {
		case m.Keys.PriorityUp, "right", "l":
			form.Priority = form.Priority.Next()
		case m.Keys.PriorityDown, "left", "h":
			form.Priority = form.Priority.Prev()
		}
		m.State = m.State.SetForm(form)
		return m, nil
	}

	switch m.FormFocus {
	case views.FieldText:
		typeInto(&m.taskInput, msg)
	case views.FieldCategory:
		typeInto(&m.categoryInput, msg)
	case views.FieldDueDate:
		typeInto(&m.dueInput, msg)
	}
	m.State = m.State.SetForm(m.formDraft())
	return m, nil
}

// submitForm runs AddTask on the staged fields. A rejected form keeps its
// values so the user can fix them.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.State = m.State.SetForm(m.formDraft())
	var (
		added   model.Task
		ok      bool
		notices []notify.Notice
	)
	m.State, added, ok, notices = m.State.AddTask()
	if ok {
		m.loadForm(m.State.View.Form)
		m.FormFocus = views.FieldText
		m.focusFormField()
		m.Status = StatusBar{Text: fmt.Sprintf("added task: %s", added.Text)}
		m.logger.Info("task added", "id", added.ID, "category", added.Category, "priority", added.Priority)
	} else {
		m.Status = StatusBar{Text: "task not added", IsError: true}
	}
	return m, m.emit(notices)
}

func (m *Model) acceptCategorySuggestion() {
	typed := strings.ToLower(m.categoryInput.Value())
	s := m.categoryInput.CurrentSuggestion()
	if typed == "" || s == "" || !strings.HasPrefix(strings.ToLower(s), typed) {
		return
	}
	m.categoryInput.SetValue(s)
}

func (m *Model) focusFormField() {
	m.blurForm()
	switch m.FormFocus {
	case views.FieldText:
		m.taskInput.Focus()
	case views.FieldCategory:
		m.categoryInput.Focus()
	case views.FieldDueDate:
		m.dueInput.Focus()
	}
}

func (m *Model) blurForm() {
	m.taskInput.Blur()
	m.categoryInput.Blur()
	m.dueInput.Blur()
}

// typeInto feeds a key to a focused input. Unfocused inputs ignore Update,
// so runes are appended directly.
func typeInto(input *textinput.Model, msg tea.KeyMsg) {
	if input.Focused() {
		next, _ := input.Update(msg)
		*input = next
		return
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if len(runes) == 0 && msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		input.SetValue(input.Value() + string(runes))
	case tea.KeyBackspace:
		v := []rune(input.Value())
		if len(v) > 0 {
			input.SetValue(string(v[:len(v)-1]))
		}
	}
}
