package cli

import (
	"github.com/spf13/cobra"

	"metaexport/internal/config"
	"metaexport/internal/export"
)

func newExportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <namespace>",
		Short: "Write the XML report for a namespace",
		Long: `Write the XML report for the types declared in exactly <namespace>.

Types of child namespaces are not included. The console transcript is
printed to stdout; warnings go to stderr.`,
		Example: `  # Report on a Go package
  metaexport export metaexport/animallibrary --output animals.xml

  # Report on a library described by a manifest
  metaexport export AnimalLibrary --source manifest --manifest classlibrary.yaml

  # Dump the descriptors while exporting
  metaexport export metaexport/animallibrary --dump -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.source()
			if err != nil {
				return err
			}

			exp := export.New(source, a.stdout, a.logger)
			if a.cfg.Dump {
				exp.WithDump(a.stderr)
			}

			res, err := exp.Run(cmd.Context(), export.Options{
				Namespace:   args[0],
				OutputPath:  a.cfg.Output,
				LibraryName: a.cfg.LibraryName,
			})
			if res != nil {
				printDiagnostics(a.stderr, res.Diagnostics, a.cfg.Verbose)
			}
			if err != nil {
				return err
			}

			printSuccess(a.stderr, "wrote %d types to %s", res.Types, res.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Report file path")
	cmd.Flags().String("library-name", "", "Library name in the report (default: the module's name)")
	cmd.Flags().Bool("dump", false, "Dump the listed descriptors to stderr")

	return cmd
}
