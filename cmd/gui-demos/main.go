package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gui-demos/internal/app"
	"gui-demos/internal/config"
	"gui-demos/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "gui-demos",
		Short:         "Small desktop GUI demos built on Fyne",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (TOML)")
	pf.String("log-level", "info", "log level: debug, info, warning, error")
	pf.Bool("json-logs", false, "write JSON logs instead of console output")
	pf.String("profile-addr", "", "serve /metrics and /debug/pprof/ on this address")

	flags := map[string]*pflag.Flag{
		"log.level":    pf.Lookup("log-level"),
		"log.json":     pf.Lookup("json-logs"),
		"profile_addr": pf.Lookup("profile-addr"),
	}

	run := func(demo app.Demo, extra map[string]*pflag.Flag) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			bound := make(map[string]*pflag.Flag, len(flags)+len(extra))
			for k, f := range flags {
				if f.Changed {
					bound[k] = f
				}
			}
			for k, f := range extra {
				if f.Changed {
					bound[k] = f
				}
			}
			return runDemo(demo, config.Options{File: configFile, Flags: bound})
		}
	}

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Fonts, text styles, form widgets, file picking, drag-and-drop and confirm-on-close",
		Args:  cobra.NoArgs,
		RunE:  run(app.DemoMain, nil),
	}

	font := &cobra.Command{
		Use:   "font",
		Short: "A multiline editor rendered with a custom font",
		Args:  cobra.NoArgs,
		RunE:  run(app.DemoFont, nil),
	}

	threads := &cobra.Command{
		Use:   "threads",
		Short: "One background worker per floating panel, synchronised every frame",
		Args:  cobra.NoArgs,
	}
	threads.Flags().Int("workers", 2, "workers to start with")
	threads.RunE = run(app.DemoThreads, map[string]*pflag.Flag{
		"threads.initial_workers": threads.Flags().Lookup("workers"),
	})

	screenshot := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture the window and save its top-left corner as PNG",
		Args:  cobra.NoArgs,
	}
	screenshot.Flags().String("out", "top_left.png", "where the saved corner is written")
	screenshot.RunE = run(app.DemoScreenshot, map[string]*pflag.Flag{
		"screenshot.path": screenshot.Flags().Lookup("out"),
	})

	root.AddCommand(demo, font, threads, screenshot)
	return root
}

func runDemo(demo app.Demo, opts config.Options) error {
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.JSON)

	application, err := app.NewApplication(demo, cfg, log)
	if err != nil {
		log.Error("main", err, map[string]interface{}{"demo": string(demo)})
		return err
	}

	if err := application.Run(); err != nil {
		log.Error("main", err, map[string]interface{}{"demo": string(demo)})
		return err
	}

	log.Info("main", "application terminated successfully", nil)
	return nil
}
