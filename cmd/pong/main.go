package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseArgs(args)
	if errors.Is(err, pflag.ErrHelp) {
		printUsage()
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 1
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	log.WithField("log", cfg.Log.File).Info("starting pong")

	application := app.NewApp(cfg, log)
	if err := application.Run(); err != nil {
		log.WithError(err).Error("pong stopped")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Up/Down or w/s      Move the left paddle")
	fmt.Fprintln(os.Stderr, "  Esc, q or Ctrl+C    Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprint(os.Stderr, config.NewFlagSet().FlagUsages())
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set with a PONG_ variable, e.g. PONG_LOG_LEVEL=debug.")
}
