package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"metaexport/internal/manifest"
)

func newManifestCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "manifest <namespace>",
		Short: "Write a YAML manifest of the loaded module",
		Long: `Load the unit that defines <namespace> and write all of its types as a YAML
manifest. The manifest can be edited and fed back with --source manifest.`,
		Example: `  metaexport manifest metaexport/animallibrary --file animals.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.source()
			if err != nil {
				return err
			}

			module, err := source.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			if err := manifest.WriteFile(manifest.FromModule(module), file); err != nil {
				return err
			}

			printSuccess(a.stderr, "wrote %d types to %s", len(module.Types), file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "manifest.yaml", "Manifest file to write")

	return cmd
}
