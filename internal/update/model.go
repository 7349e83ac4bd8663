package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/notify"
	"github.com/sandeepkv93/todo/internal/quote"
	"github.com/sandeepkv93/todo/internal/scheduler"
	"github.com/sandeepkv93/todo/internal/store"
	"github.com/sandeepkv93/todo/internal/todo"
	"github.com/sandeepkv93/todo/internal/views"
)

type Mode string

const (
	ModeBrowse  Mode = "browse"
	ModeForm    Mode = "form"
	ModeEdit    Mode = "edit"
	ModePalette Mode = "palette"
)

const welcomeTimerID = "welcome"

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Runtime carries the collaborators main wires in. Nil fields fall back to
// in-process defaults so the model works standalone in tests.
type Runtime struct {
	Timers   *scheduler.Engine
	Notifier notify.Notifier
	Logger   *log.Logger
	Clock    func() time.Time
}

type Model struct {
	State       todo.State
	Mode        Mode
	Cursor      int
	FormFocus   views.FormField
	Palette     CommandPaletteState
	HelpVisible bool
	Toasts      notify.Toaster
	Status      StatusBar
	Keys        config.Keymap
	Quitting    bool
	Width       int
	Timers      *scheduler.Engine

	cfg       config.Config
	notifier  notify.Notifier
	logger    *log.Logger
	now       func() time.Time
	filterSeq int

	taskInput      textinput.Model
	categoryInput  textinput.Model
	dueInput       textinput.Model
	editInput      textinput.Model
	commandInput   textinput.Model
	progressBar    progress.Model
	welcomeSpinner spinner.Model
	helpModel      help.Model
	helpViewport   viewport.Model
}

type TimerFiredMsg struct {
	Event scheduler.Event
}

// engineFiredMsg is a TimerFiredMsg that arrived through the engine channel
// and must re-arm the listener.
type engineFiredMsg struct {
	Event scheduler.Event
}

func NewModel() Model {
	return NewModelWithConfig(config.Default(), Runtime{})
}

func NewModelWithConfig(cfg config.Config, rt Runtime) Model {
	now := rt.Clock
	if now == nil {
		now = time.Now
	}
	logger := rt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	notifier := rt.Notifier
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}

	state := todo.New(store.NewWithClock(store.Clock(now)), quote.ForDay(now()))
	if f, err := model.ParseFilter(cfg.DefaultFilter); err == nil {
		state.View.Filter = f
	}
	position := notify.Position(cfg.ToastPosition)
	if !position.IsValid() {
		position = notify.PositionTopRight
	}
	state.Options = notify.Options{Position: position, AutoClose: cfg.ToastAutoClose()}
	if cfg.WelcomeMillis <= 0 {
		state = state.DismissWelcome()
	}

	m := Model{
		State:    state,
		Mode:     ModeBrowse,
		Keys:     cfg.Keys,
		Width:    views.DefaultWidth,
		Timers:   rt.Timers,
		cfg:      cfg,
		notifier: notifier,
		logger:   logger,
		now:      now,
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Placeholder = "Add a new task..."
	m.taskInput.Prompt = ""
	m.taskInput.CharLimit = 200

	m.categoryInput = textinput.New()
	m.categoryInput.Placeholder = "Work, Personal, Study, Urgent"
	m.categoryInput.Prompt = ""
	m.categoryInput.ShowSuggestions = true
	m.categoryInput.SetSuggestions(model.Categories)

	m.dueInput = textinput.New()
	m.dueInput.Placeholder = model.DateLayout
	m.dueInput.Prompt = ""
	m.dueInput.CharLimit = len(model.DateLayout)

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = 200

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add Buy milk cat:Personal due:2025-01-01"
	m.commandInput.Prompt = ""
	m.commandInput.CharLimit = 256

	m.progressBar = progress.New(progress.WithDefaultGradient())
	m.progressBar.Width = m.Width - 8

	m.welcomeSpinner = spinner.New()
	m.welcomeSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.helpModel.ShowAll = false

	m.helpViewport = viewport.New(m.Width-8, helpHeight)
}

// formDraft reads the staged form back out of the inputs.
func (m Model) formDraft() model.Draft {
	return model.Draft{
		Text:     m.taskInput.Value(),
		Category: m.categoryInput.Value(),
		Priority: m.State.View.Form.Priority,
		DueDate:  m.dueInput.Value(),
	}
}

func (m *Model) loadForm(d model.Draft) {
	m.taskInput.SetValue(d.Text)
	m.categoryInput.SetValue(d.Category)
	m.dueInput.SetValue(d.DueDate)
}
