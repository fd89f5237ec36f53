package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tgienger/taskman/internal/config"
	"github.com/tgienger/taskman/internal/store"
	"github.com/tgienger/taskman/internal/ui"
	"github.com/tgienger/taskman/internal/web"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:     "taskman",
		Short:   "A task manager with a terminal UI and a small web UI",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(serve)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	cfg := config.Load()
	st := store.New(cfg.DataFile)

	app := ui.NewApp(st)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err := p.Run()
	return err
}

func runServe() error {
	cfg := config.Load()
	st := store.New(cfg.DataFile)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.WithFields(logrus.Fields{
		"data_file": cfg.DataFile,
		"port":      cfg.Port,
	}).Info("starting task manager")

	return web.NewServer(st, cfg, log).Run(cfg.Port)
}
