package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/puravida/internal/app"
	"github.com/alexanderramin/puravida/internal/cli"
	"github.com/alexanderramin/puravida/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	a := &cli.App{
		In:     os.Stdin,
		Out:    os.Stdout,
		Getenv: os.Getenv,
	}

	// Detect interactive terminal for the wizard.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	var services *app.Services
	defer func() {
		if services != nil {
			services.Close()
		}
	}()

	a.Boot = func(cfg *config.Config) error {
		logger := app.NewLogger(os.Stderr, cfg.LogLevel)
		s, err := app.Wire(cfg, logger)
		if err != nil {
			return err
		}
		services = s
		a.Planner = s.Planner
		a.Calls = s.Calls
		a.Logger = logger
		return nil
	}

	rootCmd := cli.NewRootCmd(a)
	return rootCmd.Execute()
}
