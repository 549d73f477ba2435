package app

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spyglass/internal/capture"
	"github.com/five82/spyglass/internal/config"
	"github.com/five82/spyglass/internal/console"
	"github.com/five82/spyglass/internal/logging"
	"github.com/five82/spyglass/internal/stats"
	"github.com/five82/spyglass/internal/stream"
	"github.com/five82/spyglass/internal/ui"
)

// Options configure the spyglass application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/spyglass/prefs.toml

	// Command-line overrides applied on top of the config file.
	MaxLines int // zero keeps the configured cap
	NoStdout bool
	NoStderr bool
	Demo     *bool // nil keeps the configured setting

	// Callback, when set, observes every fragment shown in the pane.
	Callback console.Callback
}

// apply folds the command-line overrides into a loaded config.
func (o Options) apply(cfg config.Config) config.Config {
	if o.MaxLines > 0 {
		cfg.MaxLines = o.MaxLines
	}
	if o.NoStdout {
		cfg.CaptureStdout = false
	}
	if o.NoStderr {
		cfg.CaptureStderr = false
	}
	if o.Demo != nil {
		cfg.Demo = *o.Demo
	}
	return cfg
}

// Run boots the spyglass TUI until the context is cancelled or the user
// quits. The original stdout and stderr are restored before it returns.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = opts.apply(cfg)

	// A broken log file is not fatal; diagnostics stay on the discard
	// writer and the UI still works.
	if closer, err := logging.Setup(cfg.LogFile); err == nil && closer != nil {
		defer func() { _ = closer.Close() }()
	}
	log := logging.Named("app")

	// The sink cannot point at the program yet because the program does
	// not exist until the model (which needs the redirector) is built.
	// The holder closes the loop after both ends are up.
	holder := &sinkHolder{}
	st := &stats.Store{}

	redirector := capture.New(capture.Options{
		Sink:  holder.deliver,
		Stats: st,
	})
	defer redirector.Restore()

	emitCtx, stopEmitter := context.WithCancel(ctx)
	defer stopEmitter()

	var p *tea.Program
	var onReady func()
	if cfg.Demo {
		onReady = func() {
			startEmitter(emitCtx, cfg.DemoInterval, console.NewAppender(p, st))
		}
	}

	p = ui.NewProgram(ui.Options{
		Redirector: redirector,
		Stats:      st,
		Config:     cfg,
		Callback:   opts.Callback,
		PrefsPath:  opts.PrefsPath,
		OnReady:    onReady,
	})
	holder.bind(console.Sink(p))

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Info("spyglass starting")
	_, runErr := p.Run()

	// The event loop is gone, so Program.Send no longer blocks and the
	// pumps can finish draining.
	redirector.Restore()
	redirector.Wait()

	if runErr != nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	log.Info("spyglass stopped")
	return nil
}

// sinkHolder is a late-bound stream.Sink. Writes that arrive before bind
// fall through to the adapter's write-through path, which is exactly the
// pre-UI behavior we want.
type sinkHolder struct {
	mu   sync.RWMutex
	sink stream.Sink
}

func (h *sinkHolder) bind(sink stream.Sink) {
	h.mu.Lock()
	h.sink = sink
	h.mu.Unlock()
}

func (h *sinkHolder) deliver(ev stream.Event) {
	h.mu.RLock()
	sink := h.sink
	h.mu.RUnlock()
	if sink == nil {
		panic("sink unbound") // recovered by the adapter, falls back
	}
	sink(ev)
}
