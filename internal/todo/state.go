// Package todo implements the task command handlers. Each handler takes the
// current State and returns the next one plus the notices to display.
package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/notify"
	"github.com/sandeepkv93/todo/internal/store"
)

// ViewState is the ephemeral, non-task UI state owned by the presentation layer.
type ViewState struct {
	Form          model.Draft
	Editing       bool
	EditingID     int64
	EditDraft     string
	Filter        model.Filter
	Transitioning bool
	ShowWelcome   bool
	Quote         string
}

type State struct {
	Store   store.Store
	View    ViewState
	Options notify.Options
}

func New(s store.Store, quote string) State {
	return State{
		Store: s,
		View: ViewState{
			Form:        model.DefaultDraft(),
			Filter:      model.FilterAll,
			ShowWelcome: true,
			Quote:       quote,
		},
		Options: notify.DefaultOptions(),
	}
}

func (s State) SetForm(d model.Draft) State {
	s.View.Form = d
	return s
}

// AddTask validates the staged form and appends a task on success, returning
// the created task. ok is false when the form was rejected.
func (s State) AddTask() (State, model.Task, bool, []notify.Notice) {
	form := s.View.Form
	due, err := form.Validate()
	if err != nil {
		if errors.Is(err, model.ErrInvalidDueDate) {
			return s, model.Task{}, false, []notify.Notice{notify.InvalidDueDate(form.DueDate, s.Options)}
		}
		return s, model.Task{}, false, []notify.Notice{notify.MissingFields(s.Options)}
	}
	var added model.Task
	s.Store, added = s.Store.Add(store.NewTask{
		Text:     form.Text,
		Category: strings.TrimSpace(form.Category),
		Priority: form.Priority,
		DueDate:  due,
	})
	s.View.Form = model.DefaultDraft()
	return s, added, true, nil
}

func (s State) DeleteTask(id int64) (State, []notify.Notice) {
	next, removed, ok := s.Store.Delete(id)
	if !ok {
		return s, nil
	}
	s.Store = next
	if s.View.Editing && s.View.EditingID == id {
		s.View = clearEdit(s.View)
	}
	return s, []notify.Notice{notify.Deleted(removed.Text, s.Options)}
}

// BeginEdit puts id into edit mode; any other edit in progress is replaced.
func (s State) BeginEdit(id int64, currentText string) State {
	s.View.Editing = true
	s.View.EditingID = id
	s.View.EditDraft = currentText
	return s
}

func (s State) SetEditDraft(text string) State {
	if s.View.Editing {
		s.View.EditDraft = text
	}
	return s
}

// SaveEdit writes the draft into the task; edit mode clears even when id is gone.
func (s State) SaveEdit(id int64) State {
	if next, ok := s.Store.SetText(id, s.View.EditDraft); ok {
		s.Store = next
	}
	s.View = clearEdit(s.View)
	return s
}

func (s State) ToggleComplete(id int64) (State, []notify.Notice) {
	next, task, ok := s.Store.Toggle(id)
	if !ok {
		return s, nil
	}
	s.Store = next
	if task.Completed {
		return s, []notify.Notice{notify.Completed(task.Text, s.Options)}
	}
	return s, nil
}

// ChangeFilter switches the filter and starts the list re-entry transition.
func (s State) ChangeFilter(f model.Filter) State {
	if !f.IsValid() {
		return s
	}
	s.View.Filter = f
	s.View.Transitioning = true
	return s
}

func (s State) SettleFilter() State {
	s.View.Transitioning = false
	return s
}

func (s State) DismissWelcome() State {
	s.View.ShowWelcome = false
	return s
}

func (s State) Visible() []model.Task {
	return s.Store.Filter(s.View.Filter)
}

func (s State) Stats() store.Stats {
	return s.Store.Stats()
}

func (s State) EmptyMessage(name string) string {
	return fmt.Sprintf("Hi %s, No %s tasks to display.", strings.ToUpper(name), s.View.Filter)
}

func clearEdit(v ViewState) ViewState {
	v.Editing = false
	v.EditingID = 0
	v.EditDraft = ""
	return v
}
