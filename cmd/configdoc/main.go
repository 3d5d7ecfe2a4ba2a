// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// configdoc generates markdown documentation from Go struct tags.
// Usage: go run ./cmd/configdoc > doc/CONFIG_REFERENCE.md
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/aplane-algo/interact/internal/config"
	"github.com/aplane-algo/interact/internal/logging"
)

// EnvVar represents an environment variable configuration
type EnvVar struct {
	Name        string
	Description string
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		fmt.Println("Usage: go run ./cmd/configdoc > doc/CONFIG_REFERENCE.md")
		fmt.Println()
		fmt.Println("Generates markdown documentation from Go struct tags.")
		os.Exit(0)
	}
	writeReference(os.Stdout)
}

func writeReference(w io.Writer) {
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	}

	p("# Configuration Reference")
	p("")
	p("Auto-generated from Go struct tags. Do not edit manually.")
	p("")
	p("---")
	p("")
	p("## interact Configuration")
	p("")
	p("File: `config.yaml` in the data directory (`-d` or `%s`)", config.EnvDataDir)
	p("")
	printStructTable(w, reflect.TypeOf(config.Config{}), "")
	p("")
	p("## Environment Variables")
	p("")
	printEnvVars(w)
	p("")
	p("### Data Directory Configuration")
	p("")
	p("Resolution order:")
	p("1. `-d <path>` flag")
	p("2. `%s` environment variable", config.EnvDataDir)
	p("3. `~/.interact`")
	p("")
	p("Command-line flags (`-backend`, `-script`, `-verbose`) override both the file and the environment.")
}

func printStructTable(w io.Writer, t reflect.Type, prefix string) {
	if prefix == "" {
		_, _ = fmt.Fprintln(w, "| Field | Type | Default | Description |")
		_, _ = fmt.Fprintln(w, "|-------|------|---------|-------------|")
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		// Handle tag options like "omitempty"
		fieldName := strings.Split(tag, ",")[0]
		if prefix != "" {
			fieldName = prefix + "." + fieldName
		}

		desc := field.Tag.Get("description")
		if field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if desc == "" {
				desc = "(nested config block)"
			}
			_, _ = fmt.Fprintf(w, "| `%s` | object | (none) | %s |\n", fieldName, desc)
			printStructTable(w, field.Type.Elem(), fieldName)
			continue
		}
		if desc == "" {
			desc = "(no description)"
		}

		def := field.Tag.Get("default")
		switch def {
		case "":
			def = "(none)"
		case `""`:
			def = "(empty string)"
		}

		_, _ = fmt.Fprintf(w, "| `%s` | %s | `%s` | %s |\n", fieldName, formatType(field.Type), def, desc)
	}
}

func formatType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Bool:
		return "bool"
	case reflect.Slice:
		return "[]" + formatType(t.Elem())
	case reflect.Ptr:
		return "*" + formatType(t.Elem())
	default:
		return t.String()
	}
}

func printEnvVars(w io.Writer) {
	envVars := []EnvVar{
		{config.EnvDataDir, "Data directory (config.yaml, history, answer scripts)"},
		{config.EnvVerbose, "Boolean; overrides `verbose`"},
		{config.EnvBackend, "Overrides `backend` (auto, line, tui, script)"},
		{logging.DebugEnv, "Set to any value to enable debug logging"},
	}

	_, _ = fmt.Fprintln(w, "| Variable | Description |")
	_, _ = fmt.Fprintln(w, "|----------|-------------|")
	for _, env := range envVars {
		_, _ = fmt.Fprintf(w, "| `%s` | %s |\n", env.Name, env.Description)
	}
}
