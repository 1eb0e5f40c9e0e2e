package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newGenerateDocsCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate CLI documentation",
		Long: `Generate markdown documentation for all zoomctl commands.
This command introspects the command tree and writes one markdown file per
command, ensuring the documentation is always in sync with the actual
implementation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
				return fmt.Errorf("failed to generate docs: %w", err)
			}
			fmt.Printf("Documentation written to %s\n", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "docs", "Output directory")

	return cmd
}
