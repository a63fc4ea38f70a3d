// Package app wires the engine together: configuration, the command
// table and its overlay, the navigator, the dispatcher with its
// handler groups, delegation, and the page event plumbing.
package app

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/config"
	"github.com/auricle/auricle/internal/delegate"
	"github.com/auricle/auricle/internal/dispatcher"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handlers/tabkey"
	"github.com/auricle/auricle/internal/domnav"
	"github.com/auricle/auricle/internal/event"
	"github.com/auricle/auricle/internal/suspend"
)

// Options configures a new App.
type Options struct {
	// ConfigPath is the TOML configuration file; empty means defaults.
	ConfigPath string

	// Document is the parsed page. Required.
	Document *html.Node

	// URL is the page address reported by readCurrentURL.
	URL string

	// Output receives spoken text and adapter notices.
	Output io.Writer

	// Speech overrides the console synthesizer.
	Speech execctx.Speech

	// EventTarget receives delegation offers. Nil leaves delegation
	// off regardless of configuration.
	EventTarget delegate.EventTarget
}

// App is an assembled engine instance for one page.
type App struct {
	cfg      config.Config
	commands *command.Registry
	disp     *dispatcher.Dispatcher
	nav      *domnav.Navigator
	page     *StaticPage
	bus      *event.Bus
	scope    *suspend.Scope
	watcher  *command.Watcher
}

// New assembles an App.
func New(opts Options) (*App, error) {
	if opts.Document == nil {
		return nil, fmt.Errorf("app: document is required")
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	cfg, err := config.Load(config.OSFS{}, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	platform, err := cfg.PlatformMask()
	if err != nil {
		return nil, err
	}

	commands := command.NewDefaultRegistry()
	if cfg.OverlayPath != "" {
		patches, err := command.NewOverlayLoader(cfg.OverlayPath).Load()
		if err != nil {
			return nil, err
		}
		table, err := command.Apply(command.BuiltinTable(), patches)
		if err != nil {
			return nil, err
		}
		if err := commands.Reload(table); err != nil {
			return nil, err
		}
	}

	speech := opts.Speech
	if speech == nil {
		speech = NewConsoleSpeech(opts.Output, cfg.Speech)
	}

	page := NewStaticPage(opts.Document, opts.URL)
	page.Out = opts.Output

	nav := domnav.New(opts.Document, speech)
	scope := suspend.NewScope()

	ctx := &execctx.Context{
		Nav:        nav,
		Speech:     speech,
		Widgets:    &ConsoleWidgets{Out: opts.Output},
		Page:       page,
		Background: &ConsoleSender{Out: opts.Output},
		Suspension: scope,
	}

	disp := dispatcher.New(dispatcher.DefaultConfig().WithPlatform(platform).WithMetrics(), commands, ctx)
	disp.RegisterDefaults()

	if opts.EventTarget != nil && cfg.Delegation {
		del := delegate.New(opts.EventTarget)
		del.SetEnabled(true)
		disp.SetDelegator(del)
	}

	a := &App{
		cfg:      cfg,
		commands: commands,
		disp:     disp,
		nav:      nav,
		page:     page,
		scope:    scope,
		bus:      event.NewBus(scope),
	}
	a.subscribe()

	if cfg.WatchOverlay && cfg.OverlayPath != "" {
		w, err := command.NewWatcher(commands, cfg.OverlayPath, nil)
		if err != nil {
			return nil, err
		}
		a.watcher = w
	}

	return a, nil
}

// subscribe installs the standard event plumbing: focus changes clean
// up tab placeholders, delegation replies resume their commands.
func (a *App) subscribe() {
	a.bus.Subscribe(event.TypeFocus, func(e event.Event) {
		tabkey.Cleanup(a.disp.Context())
	})
	a.bus.Subscribe(event.TypeCommandReply, func(e event.Event) {
		// Reply errors are page bugs, not engine failures; the offer
		// simply stays unanswered.
		_, _ = a.disp.HandleReply(e.Detail)
	})
}

// Dispatch runs one command by identifier.
func (a *App) Dispatch(id string) (doDefault bool, err error) {
	return a.disp.Dispatch(id)
}

// Publish feeds a page event into the engine.
func (a *App) Publish(e event.Event) bool {
	return a.bus.Publish(e)
}

// Commands returns the command registry.
func (a *App) Commands() *command.Registry { return a.commands }

// Dispatcher returns the underlying dispatcher.
func (a *App) Dispatcher() *dispatcher.Dispatcher { return a.disp }

// Navigator returns the page navigator.
func (a *App) Navigator() *domnav.Navigator { return a.nav }

// Page returns the page adapter.
func (a *App) Page() *StaticPage { return a.page }

// Close releases the overlay watcher, if any.
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
