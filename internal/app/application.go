package app

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sourcegraph/conc"
	"github.com/spf13/afero"

	"gui-demos/internal/config"
	"gui-demos/internal/dropzone"
	"gui-demos/internal/fonts"
	guisync "gui-demos/internal/gui/sync"
	"gui-demos/internal/logger"
	"gui-demos/internal/metrics"
	"gui-demos/internal/shutdown"
	"gui-demos/internal/style"
	"gui-demos/internal/views"
)

const (
	AppID      = "io.github.gui-demos"
	AppVersion = "1.0.0"

	screenshotInterval = 33 * time.Millisecond
)

// Demo names one of the demo applications.
type Demo string

const (
	DemoMain       Demo = "demo"
	DemoFont       Demo = "font"
	DemoThreads    Demo = "threads"
	DemoScreenshot Demo = "screenshot"
)

func (d Demo) Title() string {
	switch d {
	case DemoMain:
		return "gui demo"
	case DemoFont:
		return "gui custom font demo"
	case DemoThreads:
		return "Multiple threads"
	case DemoScreenshot:
		return "Take screenshots and display them"
	default:
		return string(d)
	}
}

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	config    config.Config
	logger    logger.Logger
	lifecycle *Lifecycle
	registry  *prometheus.Registry
	fs        afero.Fs

	threads *ThreadsDriver
}

func NewApplication(demo Demo, cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(fyneapp.NewWithID(AppID), demo, cfg, log, afero.NewOsFs())
}

func newApplication(fyneApp fyne.App, demo Demo, cfg config.Config, log logger.Logger, fs afero.Fs) (*Application, error) {
	window := fyneApp.NewWindow(demo.Title())
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		config:    cfg,
		logger:    log,
		lifecycle: NewLifecycle(log),
		registry:  registry,
		fs:        fs,
	}

	log.Info("Application", "starting demo", map[string]interface{}{
		"demo":          string(demo),
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
	})

	if cfg.ProfileAddr != "" {
		srv, err := metrics.Start(cfg.ProfileAddr, registry, log)
		if err != nil {
			return nil, fmt.Errorf("start profile server: %w", err)
		}
		a.lifecycle.Register("profile server", srv)
	}

	var err error
	switch demo {
	case DemoMain:
		a.setupDemo()
	case DemoFont:
		a.setupFont()
	case DemoThreads:
		err = a.setupThreads()
	case DemoScreenshot:
		a.setupScreenshot()
	default:
		err = fmt.Errorf("unknown demo %q", demo)
	}
	if err != nil {
		if serr := a.lifecycle.Shutdown(); serr != nil {
			log.Error("Application", serr, nil)
		}
		return nil, err
	}

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

// loadTheme builds the theme for a demo. A custom font that cannot be read
// falls back to the bundled Go Mono face.
func (a *Application) loadTheme(customFont bool) *style.Theme {
	defs := fonts.Default()
	if customFont {
		data, err := fonts.LoadCustom(a.fs, a.config.Fonts.CustomPath)
		if err != nil {
			a.logger.Debug("Application", "custom font unavailable, using Go Mono", map[string]interface{}{
				"path":  a.config.Fonts.CustomPath,
				"error": err.Error(),
			})
			data, _ = fonts.LoadCustom(a.fs, "")
		}
		defs = defs.WithCustomFont(fonts.CustomName, data)
	}
	th := style.New(defs, style.DefaultStyles())
	a.fyneApp.Settings().SetTheme(th)
	return th
}

func (a *Application) setupDemo() {
	a.loadTheme(true)

	view := views.NewDemoView(a.window, dropzone.NewInspector(a.fs), a.logger)
	a.window.SetContent(view.Content())
	view.Attach()
}

func (a *Application) setupFont() {
	a.loadTheme(true)
	a.window.SetContent(views.NewFontView().Content())
}

func (a *Application) setupThreads() error {
	a.loadTheme(false)

	updates := guisync.NewCoordinator()
	driver := NewThreadsDriver(a.config.Threads, updates, a.registry, a.logger)

	view := views.NewThreadsView(driver.Push)
	view.SetSpawnHandler(driver.RequestSpawn)
	updates.SetPanelViews(view)
	updates.SetStatusBar(view)
	a.window.SetContent(view.Content())

	var wg conc.WaitGroup
	wg.Go(updates.Run)
	a.lifecycle.Register("ui updates", shutdown.Func(func() error {
		updates.Stop()
		wg.Wait()
		return nil
	}))

	a.threads = driver
	a.lifecycle.Register("panel workers", driver)
	return driver.Start(a.config.Threads.InitialWorkers)
}

func (a *Application) setupScreenshot() {
	th := a.loadTheme(false)

	view := views.NewScreenshotView(a.window, a.fyneApp, th,
		a.config.Screenshot.Path, a.config.Screenshot.Region, a.logger)
	a.window.SetContent(view.Content())

	ctx, cancel := context.WithCancel(context.Background())
	var wg conc.WaitGroup
	wg.Go(func() { view.Run(ctx, screenshotInterval) })
	a.lifecycle.Register("screenshot loop", shutdown.Func(func() error {
		cancel()
		wg.Wait()
		view.Wait()
		return nil
	}))
}

// Run shows the window and blocks until the toolkit loop ends, then tears
// everything down.
func (a *Application) Run() error {
	a.lifecycle.WatchSignals(a.fyneApp)

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.logger.Info("Application", "toolkit loop ended", nil)
	return a.lifecycle.Shutdown()
}
