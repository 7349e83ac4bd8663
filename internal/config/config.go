package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	appDirName            = "todo"
)

type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Toggle       string `toml:"toggle"`
	Edit         string `toml:"edit"`
	Delete       string `toml:"delete"`
	CycleFilter  string `toml:"cycle_filter"`
	FilterAll    string `toml:"filter_all"`
	FilterDone   string `toml:"filter_completed"`
	FilterOpen   string `toml:"filter_pending"`
	Palette      string `toml:"palette"`
	Help         string `toml:"help"`
	Confirm      string `toml:"confirm"`
	Cancel       string `toml:"cancel"`
	NextField    string `toml:"next_field"`
	PrevField    string `toml:"prev_field"`
	PriorityUp   string `toml:"priority_up"`
	PriorityDown string `toml:"priority_down"`
}

type Config struct {
	DisplayName          string `toml:"display_name"`
	DefaultFilter        string `toml:"default_filter"`
	WelcomeMillis        int    `toml:"welcome_ms"`
	FilterTransitionMs   int    `toml:"filter_transition_ms"`
	ToastAutoCloseMillis int    `toml:"toast_autoclose_ms"`
	ToastPosition        string `toml:"toast_position"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	TimerBuffer          int    `toml:"timer_buffer"`
	LogFile              string `toml:"log_file"`
	LogLevel             string `toml:"log_level"`
	Keys                 Keymap `toml:"keys"`
}

func Default() Config {
	return Config{
		DisplayName:          "there",
		DefaultFilter:        "all",
		WelcomeMillis:        2000,
		FilterTransitionMs:   50,
		ToastAutoCloseMillis: 3000,
		ToastPosition:        "top-right",
		DesktopNotifications: false,
		TimerBuffer:          64,
		LogLevel:             "info",
		Keys: Keymap{
			Quit:         "q",
			Add:          "a",
			Up:           "k",
			Down:         "j",
			Toggle:       " ",
			Edit:         "e",
			Delete:       "d",
			CycleFilter:  "f",
			FilterAll:    "1",
			FilterDone:   "2",
			FilterOpen:   "3",
			Palette:      "/",
			Help:         "?",
			Confirm:      "enter",
			Cancel:       "esc",
			NextField:    "tab",
			PrevField:    "shift+tab",
			PriorityUp:   "+",
			PriorityDown: "-",
		},
	}
}

func (c Config) WelcomeDuration() time.Duration {
	return time.Duration(c.WelcomeMillis) * time.Millisecond
}

func (c Config) FilterTransition() time.Duration {
	return time.Duration(c.FilterTransitionMs) * time.Millisecond
}

func (c Config) ToastAutoClose() time.Duration {
	return time.Duration(c.ToastAutoCloseMillis) * time.Millisecond
}

// ResolveConfigPath prefers TODO_CONFIG, then the user config dir, then the cwd.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv("TODO_CONFIG")); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appDirName, DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

// LoadOrCreate reads path, writing the defaults there on first launch.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("config: write defaults: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// normalized fills blanks left by a partial config file.
func (c Config) normalized() Config {
	def := Default()
	if strings.TrimSpace(c.DisplayName) == "" {
		c.DisplayName = def.DisplayName
	}
	if strings.TrimSpace(c.DefaultFilter) == "" {
		c.DefaultFilter = def.DefaultFilter
	}
	if c.WelcomeMillis < 0 {
		c.WelcomeMillis = 0
	}
	if c.FilterTransitionMs < 0 {
		c.FilterTransitionMs = 0
	}
	if c.ToastAutoCloseMillis < 0 {
		c.ToastAutoCloseMillis = 0
	}
	if strings.TrimSpace(c.ToastPosition) == "" {
		c.ToastPosition = def.ToastPosition
	}
	if c.TimerBuffer <= 0 {
		c.TimerBuffer = def.TimerBuffer
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	c.Keys = c.Keys.withDefaults(def.Keys)
	return c
}

func (k Keymap) withDefaults(def Keymap) Keymap {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&k.Quit, def.Quit)
	fill(&k.Add, def.Add)
	fill(&k.Up, def.Up)
	fill(&k.Down, def.Down)
	fill(&k.Toggle, def.Toggle)
	fill(&k.Edit, def.Edit)
	fill(&k.Delete, def.Delete)
	fill(&k.CycleFilter, def.CycleFilter)
	fill(&k.FilterAll, def.FilterAll)
	fill(&k.FilterDone, def.FilterDone)
	fill(&k.FilterOpen, def.FilterOpen)
	fill(&k.Palette, def.Palette)
	fill(&k.Help, def.Help)
	fill(&k.Confirm, def.Confirm)
	fill(&k.Cancel, def.Cancel)
	fill(&k.NextField, def.NextField)
	fill(&k.PrevField, def.PrevField)
	fill(&k.PriorityUp, def.PriorityUp)
	fill(&k.PriorityDown, def.PriorityDown)
	return k
}
