package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv applies TODO_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TODO_NAME")); v != "" {
		cfg.DisplayName = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_DEFAULT_FILTER")); v != "" {
		cfg.DefaultFilter = v
	}
	if v, ok := getEnvInt("TODO_WELCOME_MS"); ok && v >= 0 {
		cfg.WelcomeMillis = v
	}
	if v, ok := getEnvInt("TODO_FILTER_TRANSITION_MS"); ok && v >= 0 {
		cfg.FilterTransitionMs = v
	}
	if v, ok := getEnvInt("TODO_TOAST_AUTOCLOSE_MS"); ok && v >= 0 {
		cfg.ToastAutoCloseMillis = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_TOAST_POSITION")); v != "" {
		cfg.ToastPosition = v
	}
	if v, ok := getEnvBool("TODO_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TODO_TIMER_BUFFER"); ok && v > 0 {
		cfg.TimerBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
