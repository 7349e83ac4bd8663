package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HeaderData struct {
	Name string
	Date string
}

type ProgressData struct {
	BarView   string
	Completed int
	Total     int
}

type FilterBarData struct {
	Filters []string
	Active  string
}

type FormField int

const (
	FieldText FormField = iota
	FieldCategory
	FieldPriority
	FieldDueDate
)

type FormData struct {
	Active       bool
	Focus        FormField
	TextView     string
	CategoryView string
	Priority     string
	DueView      string
	Keys         FormKeys
}

// FormKeys are the bound keys shown in the form hints.
type FormKeys struct {
	Add          string
	Confirm      string
	NextField    string
	Cancel       string
	PriorityUp   string
	PriorityDown string
}

type TaskItemData struct {
	ID        int64
	Text      string
	Completed bool
	Category  string
	Priority  string
	DueDate   string
}

type TaskListData struct {
	Items     []TaskItemData
	Cursor    int
	EditingID int64
	EditView  string
	Empty     string
	Dim       bool
	SaveKey   string
}

type ToastData struct {
	Kind    string
	Message string
}

type HelpPanelData struct {
	Markdown string
	Width    int
}

var (
	greetStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	quoteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("183"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneTextStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	openStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("15"))
	successToast  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 1).MaxWidth(48)
	errorToast    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1).MaxWidth(48)
	activeTabs    = map[string]lipgloss.Style{
		"all":       tabStyle.Background(lipgloss.Color("93")),
		"completed": tabStyle.Background(lipgloss.Color("28")),
		"pending":   tabStyle.Background(lipgloss.Color("178")),
	}
	priorityStyles = map[string]lipgloss.Style{
		"High":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		"Medium": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		"Low":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
)

func RenderHeader(data HeaderData) string {
	return fmt.Sprintf("%s   %s", greetStyle.Render(fmt.Sprintf("Hi %s 👋", data.Name)), dateStyle.Render(data.Date))
}

func RenderQuote(q string) string {
	return "💡 Quote of the Day: " + quoteStyle.Render(fmt.Sprintf("%q", q))
}

func RenderProgress(data ProgressData) string {
	return fmt.Sprintf("🎯 Daily Progress\n%s\n%s", data.BarView,
		mutedStyle.Render(fmt.Sprintf("%d/%d tasks completed", data.Completed, data.Total)))
}

func RenderFilterBar(data FilterBarData) string {
	tabs := make([]string, 0, len(data.Filters))
	for _, f := range data.Filters {
		if f == "" {
			continue
		}
		label := strings.ToUpper(f[:1]) + f[1:]
		style := tabStyle
		if f == data.Active {
			style = activeTabs[f]
		}
		tabs = append(tabs, style.Render(label))
	}
	return strings.Join(tabs, " ")
}

func RenderForm(data FormData) string {
	mark := func(field FormField, label string) string {
		if data.Active && data.Focus == field {
			return focusStyle.Render("› " + label)
		}
		return "  " + label
	}
	var b strings.Builder
	b.WriteString(mark(FieldText, "Task     ") + " " + data.TextView + "\n")
	b.WriteString(mark(FieldCategory, "Category*") + " " + data.CategoryView + "\n")
	b.WriteString(mark(FieldPriority, "Priority ") + " " + priorityLabel(data.Priority) + mutedStyle.Render(fmt.Sprintf("  (%s/%s)", data.Keys.PriorityUp, data.Keys.PriorityDown)) + "\n")
	b.WriteString(mark(FieldDueDate, "Due date*") + " " + data.DueView + "\n")
	if data.Active {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("[%s] Add Task  [%s] next field  [%s] back",
			data.Keys.Confirm, data.Keys.NextField, data.Keys.Cancel)))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("[%s] add a task", data.Keys.Add)))
	}
	return b.String()
}

func RenderTaskList(data TaskListData) string {
	if len(data.Items) == 0 {
		return mutedStyle.Render(data.Empty)
	}
	var b strings.Builder
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = cursorStyle.Render(">")
		}
		check := openStyle.Render("○")
		if item.Completed {
			check = checkStyle.Render("●")
		}
		text := item.Text
		if item.Completed {
			text = doneTextStyle.Render(text)
		}
		if item.ID == data.EditingID && data.EditView != "" {
			text = data.EditView + mutedStyle.Render(fmt.Sprintf("  [%s] save", data.SaveKey))
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, text))
		meta := make([]string, 0, 3)
		if item.Category != "" {
			meta = append(meta, "📁 "+item.Category)
		}
		meta = append(meta, "🚦 "+priorityLabel(item.Priority)+" Priority")
		if item.DueDate != "" {
			meta = append(meta, "📅 Due: "+item.DueDate)
		}
		b.WriteString("    " + strings.Join(meta, "  ") + "\n")
	}
	out := strings.TrimSuffix(b.String(), "\n")
	if data.Dim {
		return lipgloss.NewStyle().Faint(true).Render(out)
	}
	return out
}

func RenderToasts(items []ToastData) string {
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		style := successToast
		icon := "✔"
		if item.Kind == "error" {
			style = errorToast
			icon = "✖"
		}
		rendered = append(rendered, style.Render(icon+" "+item.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return RenderMarkdown(data.Markdown, data.Width)
}

func priorityLabel(p string) string {
	if style, ok := priorityStyles[p]; ok {
		return style.Render(p)
	}
	return p
}
