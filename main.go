package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/temirov/fixcommits/cmd/cli"
)

// main runs the fixcommits command-line application; an interrupt cancels the run and stops it cleanly.
func main() {
	signalContext, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt)
	executionError := cli.Execute(signalContext)
	stopSignals()
	os.Exit(cli.ReportOutcome(executionError, os.Stdout, os.Stderr))
}
