package update

import (
	"fmt"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) renderHeader() string {
	return views.RenderHeader(views.HeaderData{
		Name: m.cfg.DisplayName,
		Date: m.now().Format("Monday, January 2"),
	})
}

func (m Model) renderProgress() string {
	stats := m.State.Stats()
	return views.RenderProgress(views.ProgressData{
		BarView:   m.progressBar.ViewAs(stats.Rate / 100),
		Completed: stats.Completed,
		Total:     stats.Total,
	})
}

func (m Model) renderFilterBar() string {
	filters := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		filters = append(filters, string(f))
	}
	return views.RenderFilterBar(views.FilterBarData{
		Filters: filters,
		Active:  string(m.State.View.Filter),
	})
}

func (m Model) renderForm() string {
	return views.RenderForm(views.FormData{
		Active:       m.Mode == ModeForm,
		Focus:        m.FormFocus,
		TextView:     m.taskInput.View(),
		CategoryView: m.categoryInput.View(),
		Priority:     string(m.State.View.Form.Priority),
		DueView:      m.dueInput.View(),
		Keys: views.FormKeys{
			Add:          displayKey(m.Keys.Add),
			Confirm:      displayKey(m.Keys.Confirm),
			NextField:    displayKey(m.Keys.NextField),
			Cancel:       displayKey(m.Keys.Cancel),
			PriorityUp:   displayKey(m.Keys.PriorityUp),
			PriorityDown: displayKey(m.Keys.PriorityDown),
		},
	})
}

func (m Model) renderTaskList() string {
	visible := m.State.Visible()
	items := make([]views.TaskItemData, 0, len(visible))
	for _, t := range visible {
		items = append(items, views.TaskItemData{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Category:  t.Category,
			Priority:  string(t.Priority),
			DueDate:   t.DueString(),
		})
	}
	data := views.TaskListData{
		Items:   items,
		Cursor:  -1,
		Empty:   m.State.EmptyMessage(m.cfg.DisplayName),
		Dim:     m.State.View.Transitioning,
		SaveKey: displayKey(m.Keys.Confirm),
	}
	if m.Mode == ModeBrowse || m.Mode == ModeEdit {
		data.Cursor = m.Cursor
	}
	if m.State.View.Editing {
		data.EditingID = m.State.View.EditingID
		data.EditView = m.editInput.View()
	}
	return views.RenderTaskList(data)
}

func (m Model) renderToasts() string {
	active := m.Toasts.Active()
	items := make([]views.ToastData, 0, len(active))
	for _, n := range active {
		items = append(items, views.ToastData{Kind: string(n.Kind), Message: n.Message})
	}
	return views.RenderToasts(items)
}

func (m Model) renderFooter() string {
	return fmt.Sprintf("%s\nMade with ❤ by %s · %d", m.renderShortHelp(), m.cfg.DisplayName, m.now().Year())
}
