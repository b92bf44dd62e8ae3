package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"metaexport/internal/registry"
)

func newRegistryCommand(a *app) *cobra.Command {
	var (
		outputDir   string
		packageName string
		varName     string
	)

	cmd := &cobra.Command{
		Use:   "registry <namespace>",
		Short: "Generate Go source that compiles the namespace's metadata in",
		Long: `Generate a Go file declaring a *meta.Module for the types of <namespace>.
Register it with meta.NewRegistry to report without loading at run time.`,
		Example: `  metaexport registry metaexport/animallibrary --output-dir ./animalmeta`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := args[0]

			source, err := a.source()
			if err != nil {
				return err
			}

			module, err := source.Load(cmd.Context(), namespace)
			if err != nil {
				return fmt.Errorf("loading %s: %w", namespace, err)
			}

			cfg := registry.DefaultConfig(namespace)
			if packageName != "" {
				cfg.PackageName = packageName
			}
			if varName != "" {
				cfg.VarName = varName
			}

			file, err := registry.NewGenerator(cfg).Generate(module, namespace)
			if err != nil {
				return err
			}

			path, err := registry.WriteFile(file, outputDir)
			if err != nil {
				return err
			}

			printSuccess(a.stderr, "wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the generated file")
	cmd.Flags().StringVar(&packageName, "package", "", "Package name (default: <namespace>meta)")
	cmd.Flags().StringVar(&varName, "var", "", "Variable name (default: Module)")

	return cmd
}
