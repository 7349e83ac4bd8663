package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultWidth = 80

type AppData struct {
	Width         int
	Toasts        string
	ToastPosition string
	Header        string
	Quote         string
	Progress      string
	Filters       string
	Form          string
	List          string
	Palette       string
	Help          string
	StatusLine    string
	StatusIsError bool
	Footer        string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	welcomeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(2, 4)
)

func RenderApp(data AppData) string {
	width := data.Width
	if width <= 0 {
		width = DefaultWidth
	}
	inner := width - 4

	body := []string{
		titleStyle.Render("📝 My Todo List"),
		data.Filters,
		data.Form,
		data.List,
	}
	if data.Palette != "" {
		body = append(body, data.Palette)
	}

	lines := []string{
		panelStyle.Width(inner).Render(data.Header),
		panelStyle.Width(inner).Render(data.Quote),
		data.Progress,
		panelStyle.Width(inner).Render(strings.Join(nonEmpty(body), "\n\n")),
	}
	if data.Help != "" {
		lines = append(lines, panelStyle.Width(inner).Render(data.Help))
	}
	if data.StatusLine != "" {
		lines = append(lines, statusLineStyle(data.StatusIsError).Render(data.StatusLine))
	}
	if data.Footer != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, footerStyle.Render(data.Footer)))
	}
	return placeToasts(strings.Join(lines, "\n"), data.Toasts, data.ToastPosition, width)
}

func statusLineStyle(isError bool) lipgloss.Style {
	if isError {
		return errorStyle
	}
	return statusStyle
}

func RenderWelcome(spinner string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	msg := welcomeStyle.Render(strings.TrimSpace(spinner + " Welcome to My Todo App!"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, msg)
}

type markdownKey struct {
	width int
	md    string
}

// Rendered markdown is cached because the help panel is redrawn every frame.
var markdownCache, _ = lru.New[markdownKey, string](32)

// RenderMarkdown falls back to the raw text when glamour cannot render.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	key := markdownKey{width: width, md: md}
	if out, ok := markdownCache.Get(key); ok {
		return out
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	out = strings.TrimSpace(out)
	markdownCache.Add(key, out)
	return out
}

func placeToasts(body, toasts, position string, width int) string {
	if strings.TrimSpace(toasts) == "" {
		return body
	}
	align := lipgloss.Right
	if strings.HasSuffix(position, "left") {
		align = lipgloss.Left
	}
	placed := lipgloss.PlaceHorizontal(width, align, toasts)
	if strings.HasPrefix(position, "bottom") {
		return body + "\n" + placed
	}
	return placed + "\n" + body
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
