package app

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"gui-demos/internal/config"
	"gui-demos/internal/logger"
	"gui-demos/internal/style"
)

func testConfig() config.Config {
	return config.Config{
		Log:    config.LogConfig{Level: "debug"},
		Window: config.WindowConfig{Width: 400, Height: 600},
		Threads: config.ThreadsConfig{
			InitialWorkers: 2,
			FrameInterval:  10 * time.Millisecond,
			StallWarning:   time.Second,
		},
		Screenshot: config.ScreenshotConfig{Path: "top_left.png", Region: 100},
	}
}

func TestEachDemoAssemblesAndShutsDown(t *testing.T) {
	for _, demo := range []Demo{DemoMain, DemoFont, DemoScreenshot} {
		t.Run(string(demo), func(t *testing.T) {
			a, err := newApplication(test.NewTempApp(t), demo, testConfig(), logger.NoOp{}, afero.NewMemMapFs())
			require.NoError(t, err)
			require.NotNil(t, a.window.Content())
			require.Equal(t, demo.Title(), a.window.Title())
			require.IsType(t, &style.Theme{}, a.fyneApp.Settings().Theme())
			require.NoError(t, a.lifecycle.Shutdown())
		})
	}
}

func TestThreadsDemoStartsInitialWorkers(t *testing.T) {
	a, err := newApplication(test.NewTempApp(t), DemoThreads, testConfig(), logger.NoOp{}, afero.NewMemMapFs())
	require.NoError(t, err)
	require.Equal(t, 2, a.threads.pool.Live())

	require.NoError(t, a.lifecycle.Shutdown())
	require.Equal(t, 2, a.threads.pool.Len())
	// later calls report the same result
	require.NoError(t, a.lifecycle.Shutdown())
}

func TestUnknownDemo(t *testing.T) {
	_, err := newApplication(test.NewTempApp(t), Demo("paint"), testConfig(), logger.NoOp{}, afero.NewMemMapFs())
	require.ErrorContains(t, err, `unknown demo "paint"`)
}

func TestProfileServerIsShutDown(t *testing.T) {
	cfg := testConfig()
	cfg.ProfileAddr = "127.0.0.1:0"

	a, err := newApplication(test.NewTempApp(t), DemoFont, cfg, logger.NoOp{}, afero.NewMemMapFs())
	require.NoError(t, err)
	require.NoError(t, a.lifecycle.Shutdown())
}

func TestMissingCustomFontFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Fonts.CustomPath = "/fonts/missing.ttf"

	a, err := newApplication(test.NewTempApp(t), DemoFont, cfg, logger.NoOp{}, afero.NewMemMapFs())
	require.NoError(t, err)
	th, ok := a.fyneApp.Settings().Theme().(*style.Theme)
	require.True(t, ok)
	require.NotNil(t, th)
	require.NoError(t, a.lifecycle.Shutdown())
}
