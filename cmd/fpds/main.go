/*
Command fpds demonstrates the persistent data structures of this module.

	fpds tree 5 3 8 1 4          # insert values and print the tree
	fpds tree --ascending 1000   # watch the re-balancing threshold
	fpds tree --random 64 --seed 7
	fpds list 1 2 3
	fpds memo --delay 200ms 4 4 2

Tracing is configured with --trace (or FPDS_TRACE), one of error, info or debug.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

// traceKeys are the tracing keys of all packages of this module.
var traceKeys = []string{"fp.list", "fp.bst", "fp.memo"}

func run(args []string) error {
	app := cli.App{
		Name:  "fpds",
		Usage: "play with persistent lists, trees and memoized functions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level: error, info or debug",
				Value:   "error",
				EnvVars: []string{"FPDS_TRACE"},
			},
		},
		Before: setupTracing,
	}
	app.Commands = []*cli.Command{
		cmdTree,
		cmdList,
		cmdMemo,
	}
	return app.Run(args)
}

func setupTracing(cctx *cli.Context) error {
	var level tracing.TraceLevel
	switch strings.ToLower(cctx.String("trace")) {
	case "error":
		level = tracing.LevelError
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", cctx.String("trace"))
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}

// tracer traces with key 'fp.bst', which is where most of the interesting events happen.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}
