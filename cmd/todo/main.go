package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/notify"
	"github.com/sandeepkv93/todo/internal/scheduler"
	"github.com/sandeepkv93/todo/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg)

	logger, closer, err := logging.Open(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	engine := scheduler.NewEngine(cfg.TimerBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = notify.Throttle(notify.DesktopNotifier{}, time.Second, 3)
	}

	logger.Info("starting", "filter", cfg.DefaultFilter, "desktop_notifications", cfg.DesktopNotifications)
	program := tea.NewProgram(update.NewModelWithConfig(cfg, update.Runtime{
		Timers:   engine,
		Notifier: notifier,
		Logger:   logger,
	}))
	if _, err := program.Run(); err != nil {
		return err
	}
	if dropped := engine.Dropped(); dropped > 0 {
		logger.Warn("timer events dropped", "count", dropped)
	}
	return nil
}
