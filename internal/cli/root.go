// Package cli wires the metaexport commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"metaexport/internal/analyze"
	"metaexport/internal/config"
	"metaexport/internal/logging"
	"metaexport/internal/manifest"
	"metaexport/pkg/meta"
)

// app carries what every command needs once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var configFile string

	root := &cobra.Command{
		Use:   "metaexport",
		Short: "Export the type metadata of a namespace as XML",
		Long: `metaexport loads a unit of code, lists the types declared in one namespace
and writes their names, modifiers, base types and declared members to an XML
report while printing the same data to the console.

Sources:
  go        a Go package; the namespace is its import path
  manifest  a YAML description of any compiled library`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(".env"); err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}

			a.cfg = cfg
			a.logger = logging.NewOrNop(cfg.Verbose)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default ./metaexport.yaml)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("source", config.SourceGo, "Metadata source: go or manifest")
	flags.String("manifest", "", "Manifest file for the manifest source")
	flags.String("dir", "", "Directory the go tool runs in for the go source")

	root.AddCommand(newExportCommand(a))
	root.AddCommand(newManifestCommand(a))
	root.AddCommand(newRegistryCommand(a))

	return root
}

// source builds the configured meta.Source.
func (a *app) source() (meta.Source, error) {
	switch a.cfg.Source {
	case config.SourceGo:
		return analyze.NewLoader(a.cfg.Dir, a.logger), nil
	case config.SourceManifest:
		return manifest.NewLoader(a.cfg.Manifest, a.logger), nil
	default:
		return nil, fmt.Errorf("unknown source %q", a.cfg.Source)
	}
}

// Execute runs the command tree and reports a failure on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, err)
	}

	return err
}
