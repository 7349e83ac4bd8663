package views

import (
	"strings"
	"testing"
)

func TestRenderTaskListShowsMetadata(t *testing.T) {
	out := RenderTaskList(TaskListData{
		Items: []TaskItemData{
			{ID: 1, Text: "Buy milk", Category: "Personal", Priority: "High", DueDate: "2024-01-01"},
			{ID: 2, Text: "Ship release", Completed: true, Priority: "Low"},
		},
		Cursor: 1,
	})
	for _, want := range []string{"Buy milk", "📁 Personal", "High Priority", "📅 Due: 2024-01-01", "Ship release", "Low Priority"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderTaskListEditAndEmpty(t *testing.T) {
	out := RenderTaskList(TaskListData{
		Items:     []TaskItemData{{ID: 7, Text: "old text", Priority: "Medium"}},
		EditingID: 7,
		EditView:  "> new text",
	})
	if !strings.Contains(out, "> new text") || strings.Contains(out, "old text") {
		t.Fatalf("edit view should replace task text:\n%s", out)
	}

	empty := RenderTaskList(TaskListData{Empty: "Hi DERICK, No pending tasks to display."})
	if !strings.Contains(empty, "No pending tasks") {
		t.Fatalf("unexpected empty output %q", empty)
	}
}

func TestRenderToastsAndPlacement(t *testing.T) {
	toasts := RenderToasts([]ToastData{{Kind: "error", Message: "Please fill in all required fields."}})
	if !strings.Contains(toasts, "Please fill in all required fields.") {
		t.Fatalf("toast text missing: %q", toasts)
	}
	top := RenderApp(AppData{Header: "HEADER", Toasts: toasts, ToastPosition: "top-right"})
	if strings.Index(top, "required fields") > strings.Index(top, "HEADER") {
		t.Fatal("top toasts must precede the header")
	}
	bottom := RenderApp(AppData{Header: "HEADER", Toasts: toasts, ToastPosition: "bottom-left"})
	if strings.Index(bottom, "required fields") < strings.Index(bottom, "HEADER") {
		t.Fatal("bottom toasts must follow the body")
	}
}

func TestRenderProgressAndHeader(t *testing.T) {
	p := RenderProgress(ProgressData{BarView: "[##--]", Completed: 1, Total: 2})
	if !strings.Contains(p, "1/2 tasks completed") {
		t.Fatalf("unexpected progress %q", p)
	}
	h := RenderHeader(HeaderData{Name: "Derick", Date: "Monday, February 9"})
	if !strings.Contains(h, "Hi Derick") || !strings.Contains(h, "Monday, February 9") {
		t.Fatalf("unexpected header %q", h)
	}
	if !strings.Contains(RenderQuote("Little things make big days."), "Little things") {
		t.Fatal("quote missing")
	}
}

func TestRenderFilterBarAndForm(t *testing.T) {
	bar := RenderFilterBar(FilterBarData{Filters: []string{"all", "completed", "pending"}, Active: "pending"})
	for _, want := range []string{"All", "Completed", "Pending"} {
		if !strings.Contains(bar, want) {
			t.Fatalf("missing tab %q in %q", want, bar)
		}
	}
	form := RenderForm(FormData{Active: true, Focus: FieldCategory, Priority: "Medium"})
	if !strings.Contains(form, "› Category*") || !strings.Contains(form, "Medium") {
		t.Fatalf("unexpected form:\n%s", form)
	}
}

func TestRenderFormHintsUseBoundKeys(t *testing.T) {
	keys := FormKeys{Add: "n", Confirm: "ctrl+s", NextField: "down", Cancel: "ctrl+g", PriorityUp: "]", PriorityDown: "["}
	active := RenderForm(FormData{Active: true, Priority: "Low", Keys: keys})
	for _, want := range []string{"(]/[)", "[ctrl+s] Add Task", "[down] next field", "[ctrl+g] back"} {
		if !strings.Contains(active, want) {
			t.Fatalf("expected %q in form:\n%s", want, active)
		}
	}
	if strings.Contains(active, "[enter]") || strings.Contains(active, "[esc]") {
		t.Fatalf("default keys leaked into form:\n%s", active)
	}
	idle := RenderForm(FormData{Priority: "Low", Keys: keys})
	if !strings.Contains(idle, "[n] add a task") {
		t.Fatalf("expected add hint with bound key:\n%s", idle)
	}

	list := RenderTaskList(TaskListData{
		Items:     []TaskItemData{{ID: 1, Text: "x", Priority: "Low"}},
		EditingID: 1,
		EditView:  "> y",
		SaveKey:   "ctrl+s",
	})
	if !strings.Contains(list, "[ctrl+s] save") {
		t.Fatalf("expected save hint with bound key:\n%s", list)
	}
}

func TestStatusLineStyleFollowsErrorFlag(t *testing.T) {
	if statusLineStyle(true).GetForeground() != errorStyle.GetForeground() {
		t.Fatal("error status should use the error style")
	}
	if statusLineStyle(false).GetForeground() != statusStyle.GetForeground() {
		t.Fatal("success status should use the status style")
	}
	out := RenderApp(AppData{StatusLine: "status: added task: fix error log"})
	if !strings.Contains(out, "fix error log") {
		t.Fatalf("status line missing:\n%s", out)
	}
}

func TestRenderMarkdownFallsBackOnBlank(t *testing.T) {
	if RenderMarkdown("   ", 40) != "" {
		t.Fatal("blank markdown should render empty")
	}
	if out := RenderMarkdown("# Keys\n\n- `a` add", 60); !strings.Contains(out, "Keys") {
		t.Fatalf("unexpected markdown output %q", out)
	}
}

func TestRenderMarkdownCachesByWidth(t *testing.T) {
	md := "## Cached\n\nsome text"
	first := RenderMarkdown(md, 50)
	if _, ok := markdownCache.Get(markdownKey{width: 50, md: md}); !ok {
		t.Fatal("expected render cached")
	}
	if again := RenderMarkdown(md, 50); again != first {
		t.Fatal("expected cached output reused")
	}
	if _, ok := markdownCache.Get(markdownKey{width: 30, md: md}); ok {
		t.Fatal("unexpected cache entry for another width")
	}
}

func TestRenderWelcome(t *testing.T) {
	if !strings.Contains(RenderWelcome("", 60), "Welcome to My Todo App!") {
		t.Fatal("welcome text missing")
	}
}
