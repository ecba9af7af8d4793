package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/enterexit/internal/config"
	"github.com/andyrewlee/enterexit/internal/logging"
	"github.com/andyrewlee/enterexit/internal/safego"
	"github.com/andyrewlee/enterexit/internal/ui/sticky"
)

// Version info set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = `usage:
  enterexit                      run the sticky header demo (needs a terminal)
  enterexit replay <file.yaml>...  replay scenarios and check their expectations
  enterexit --version
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "enterexit %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	case "help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return 0
	case "replay":
		return runReplay(args[1:], stdout, stderr)
	case "", "tui":
		if !term.IsTerminal(os.Stdout.Fd()) || !term.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(stderr, "enterexit: the demo needs a terminal; try 'enterexit replay <file.yaml>'")
			return 2
		}
		return runTUI(stderr)
	default:
		fmt.Fprintf(stderr, "enterexit: unknown command %q\n\n%s", sub, usage)
		return 2
	}
}

func runTUI(stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(stderr, "Warning: could not create %s: %v\n", cfg.Paths.Home, err)
	}
	if err := logging.Initialize(cfg.Paths.LogDir, logging.ParseLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()
	logging.Info("Starting enterexit %s", version)

	zones := zone.New()
	defer zones.Close()

	model := sticky.New(cfg, zones)
	defer model.Close()
	p := tea.NewProgram(model, tea.WithFilter(mouseEventFilter))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchConfig(ctx, cfg.Paths, p.Send)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(stderr, "Error running app: %v\n", err)
		return 1
	}
	logging.Info("enterexit shutdown complete")
	return 0
}

// watchConfig reloads the config file on change and forwards it to the
// program. Failures only disable live reload.
func watchConfig(ctx context.Context, paths *config.Paths, send func(tea.Msg)) {
	reload := func() {
		safego.Run("config-reload", func() {
			cfg, err := config.LoadFrom(paths)
			if err != nil {
				logging.WithError(err, "reload config")
				return
			}
			logging.Info("config reloaded from %s", paths.ConfigPath)
			send(sticky.ConfigChangedMsg{Config: cfg})
		})
	}
	w, err := config.NewWatcher(paths, reload)
	if err != nil {
		logging.Warn("config watcher disabled: %v", err)
		return
	}
	safego.GoLoop(ctx, "config-watcher", func(ctx context.Context) error {
		defer w.Close()
		return w.Run(ctx)
	})
}

var lastMouseWheelEvent time.Time

// mouseEventFilter throttles wheel events so fast scrolling doesn't queue
// a check per notch.
func mouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseWheelMsg); ok {
		now := time.Now()
		if now.Sub(lastMouseWheelEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseWheelEvent = now
	}
	return msg
}
