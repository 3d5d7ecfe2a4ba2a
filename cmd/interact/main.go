// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// interact runs a prompt session for one of the bundled demo schemas and
// prints the parsed value with the equivalent command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/aplane-algo/interact/internal/config"
	"github.com/aplane-algo/interact/internal/demo"
	"github.com/aplane-algo/interact/internal/logging"
	"github.com/aplane-algo/interact/internal/version"
	"github.com/aplane-algo/interact/prompt"
)

func main() {
	// Define all flags upfront before parsing
	printVersion := flag.Bool("version", false, "Print version and exit")
	listSchemas := flag.Bool("list", false, "List available schemas and exit")
	dataDir := flag.String("d", "", "Data directory (default: ~/.interact or INTERACT_DATA)")
	schema := flag.String("schema", "git", "Schema to prompt for")
	each := flag.Bool("each", false, "Prompt for repeated entries until declined")
	backend := flag.String("backend", "", "Prompt backend: auto, line, tui, script (overrides config)")
	script := flag.String("script", "", "JavaScript answer file (implies -backend script)")
	verbose := flag.Bool("verbose", false, "Show value types in prompt help")
	flag.Parse()

	// Handle early-exit flags
	if *printVersion {
		fmt.Printf("interact %s\n", version.String())
		os.Exit(0)
	}
	registry := demo.Default()
	if *listSchemas {
		demo.ShowList(os.Stdout, registry)
		os.Exit(0)
	}

	resolvedDataDir := config.GetDataDir(*dataDir)
	cfg, err := config.Load(resolvedDataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Command-line flags win over config and environment
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *script != "" {
		cfg.AnswerScript = *script
		if *backend == "" {
			cfg.Backend = config.BackendScript
		}
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &app{
		registry: registry,
		cfg:      cfg,
		logger:   logging.New(os.Stderr),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	err = app.run(ctx, *schema, *each)
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrInterrupted):
		fmt.Fprintln(os.Stderr, "\nCancelled.")
		stop()
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
