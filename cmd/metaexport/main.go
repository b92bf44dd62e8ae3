// Package main provides the CLI entrypoint for metaexport.
//
// metaexport introspects a unit of code and writes the structural metadata
// of one namespace's types to an XML report and to the console:
//   - export: write the <Library> report
//   - manifest: write a YAML manifest of the loaded module
//   - registry: generate Go source that compiles the metadata in
package main

import (
	"context"
	"os"
	"os/signal"

	"metaexport/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
