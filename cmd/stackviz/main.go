package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"stackviz/internal/prefs"
	"stackviz/internal/session"
	"stackviz/internal/stack"
	"stackviz/internal/telemetry"
	"stackviz/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// config holds the parsed CLI configuration.
type config struct {
	capacity  int
	logPath   string
	prefsPath string
	animation time.Duration
}

func parseFlags() config {
	var cfg config

	flag.IntVar(&cfg.capacity, "capacity", stack.DefaultCapacity, "initial stack capacity (1-20)")
	flag.StringVar(&cfg.logPath, "log", "", "write debug logs to this file (default: discard)")
	flag.StringVar(&cfg.prefsPath, "prefs", "", "preferences file (default: $"+prefs.HomeEnv+"/"+prefs.FileName+" or ~/"+prefs.DefaultHome+"/"+prefs.FileName+")")
	flag.DurationVar(&cfg.animation, "animation", ui.DefaultAnimationWindow, "how long mutating actions are blocked after one runs")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stackviz [flags]\n\n")
		fmt.Fprintf(os.Stderr, "stackviz is an interactive terminal visualizer for a bounded stack.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if cfg.capacity < session.MinCapacity || cfg.capacity > session.MaxCapacity {
		fmt.Fprintf(os.Stderr, "error: --capacity must be between %d and %d\n", session.MinCapacity, session.MaxCapacity)
		flag.Usage()
		os.Exit(1)
	}
	if cfg.animation < 0 {
		fmt.Fprintln(os.Stderr, "error: --animation must not be negative")
		os.Exit(1)
	}
	return cfg
}

func openPrefs(path string) (*prefs.Store, error) {
	if path != "" {
		return prefs.NewStoreAt(path), nil
	}
	return prefs.NewStore()
}

func run(ctx context.Context, cfg config) error {
	// The TUI owns stdout; logs go to a file or nowhere.
	if cfg.logPath != "" {
		f, err := tea.LogToFile(cfg.logPath, "stackviz")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := openPrefs(cfg.prefsPath)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	p, err := store.Load()
	if err != nil {
		// A broken prefs file should not keep the tool from starting.
		log.Printf("load prefs: %v", err)
	}

	tp, err := telemetry.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()
	log.Printf("config: capacity=%d prefs=%s theme=%s animation=%s tracing=%v",
		cfg.capacity, store.Path(), p.Theme, cfg.animation, tp.Enabled())

	model := ui.NewAppModel(ui.Config{
		Session:         session.New(session.WithCapacity(cfg.capacity), session.WithTracer(tp.Tracer())),
		Prefs:           store,
		Theme:           p.Theme,
		AnimationWindow: cfg.animation,
		Context:         ctx,
	})
	prog := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "stackviz: %v\n", err)
		os.Exit(1)
	}
}
