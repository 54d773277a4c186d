package main

import (
	"fmt"
	"os"

	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/semmy-space/browserselector/internal/cli"
	"github.com/semmy-space/browserselector/internal/launch"
	"github.com/semmy-space/browserselector/internal/output"
)

var (
	version = "dev"
)

func main() {
	cliInstance := &cli.CLI{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Launcher: launch.Detached{},
	}

	parser, err := cli.NewParser(cliInstance, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitGeneral)
	}

	// Exits early when invoked by the shell for completions
	kongplete.Complete(parser,
		kongplete.WithPredictor("file", complete.PredictFiles("*.json")),
	)

	os.Exit(cli.Execute(cliInstance, parser, os.Args[1:]))
}
