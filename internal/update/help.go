package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const paletteHelp = "`add <text> cat:<category> pri:<low|medium|high> due:<YYYY-MM-DD>`, " +
	"`done <n>`, `delete <n>`, `edit <n> <text>`, `filter <all|completed|pending>`"

const helpHeight = 16

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	vp := m.helpViewport
	vp.SetContent(m.renderHelpView())
	return vp.View()
}

// scrollHelp moves the help viewport; content is refreshed first so the
// scroll bounds match what is shown.
func (m *Model) scrollHelp(msg tea.KeyMsg) {
	m.helpViewport.SetContent(m.renderHelpView())
	m.helpViewport, _ = m.helpViewport.Update(msg)
}

// renderHelpView renders the full binding table through glamour.
func (m Model) renderHelpView() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n| key | action |\n| --- | --- |\n")
	for _, kb := range append(m.globalBindings(), m.modeBindings()...) {
		fmt.Fprintf(&b, "| `%s` | %s |\n", displayKey(kb.Key), kb.Action)
	}
	b.WriteString("\n## Commands\n\n")
	b.WriteString(paletteHelp + "\n\nTask numbers are positions in the visible list, starting at 1.\n")
	return views.RenderHelpPanel(views.HelpPanelData{Markdown: b.String(), Width: m.helpViewport.Width})
}

// renderShortHelp is the one-line hint bar under the list.
func (m Model) renderShortHelp() string {
	bindings := m.helpBindings()
	return m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: "pgup/pgdown", Action: "scroll help"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	switch m.Mode {
	case ModeForm:
		return []KeyBinding{
			{Key: m.Keys.Confirm, Action: "add task"},
			{Key: m.Keys.NextField + "/" + m.Keys.PrevField, Action: "next/previous field"},
			{Key: m.Keys.PriorityUp + "/" + m.Keys.PriorityDown, Action: "raise/lower priority"},
			{Key: m.Keys.Cancel, Action: "back to list"},
		}
	case ModeEdit:
		return []KeyBinding{{Key: m.Keys.Confirm, Action: "save task"}}
	case ModePalette:
		return []KeyBinding{
			{Key: m.Keys.Confirm, Action: "run command"},
			{Key: m.Keys.Cancel, Action: "close palette"},
		}
	default:
		return []KeyBinding{
			{Key: m.Keys.Add, Action: "add a task"},
			{Key: m.Keys.Down + "/" + m.Keys.Up, Action: "move cursor"},
			{Key: m.Keys.Toggle, Action: "toggle complete"},
			{Key: m.Keys.Edit, Action: "edit task"},
			{Key: m.Keys.Delete, Action: "delete task"},
			{Key: m.Keys.CycleFilter, Action: "cycle filter"},
			{Key: m.Keys.FilterAll + "/" + m.Keys.FilterDone + "/" + m.Keys.FilterOpen, Action: "all/completed/pending"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.modeBindings(), m.globalBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		label := displayKey(kb.Key)
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(label, kb.Action)))
	}
	return out
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
