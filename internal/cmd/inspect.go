package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osirisproject/cli/internal/manifest"
	"github.com/osirisproject/cli/internal/output"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	var (
		outputFlag string
		diffFlag   string
	)

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the resolved manifest views",
		Long: `Resolve every view of the platform manifest and print the result, with
all defaults and precedence rules applied. With --diff, the resolved views
are compared against those of a second manifest instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.ParseFormat(outputFlag)
			if outputFlag != "" && !output.Format(outputFlag).IsValid() {
				return fmt.Errorf("invalid output format %q (valid: %v)", outputFlag, output.ValidFormats())
			}

			m, err := loadManifest()
			if err != nil {
				return err
			}

			if diffFlag != "" {
				return runInspectDiff(m, diffFlag)
			}

			if err := output.WriteViews(m, output.ViewOptions{Format: format, Writer: os.Stdout}); err != nil {
				return operational("cannot resolve manifest views", err)
			}
			return nil
		},
	}

	inspectCmd.Flags().StringVarP(&outputFlag, "output", "o", "yaml", "Output format: yaml, json")
	inspectCmd.Flags().StringVar(&diffFlag, "diff", "", "Compare resolved views against this manifest")

	return inspectCmd
}

// runInspectDiff diffs the resolved views of the loaded manifest against
// those of the manifest at otherPath.
func runInspectDiff(m *manifest.Manifest, otherPath string) error {
	other, err := manifest.ParsePath(otherPath)
	if err != nil {
		return operational(fmt.Sprintf("cannot parse platform manifest %q", otherPath), err)
	}

	from, err := output.MarshalViewsYAML(m)
	if err != nil {
		return operational("cannot resolve manifest views", err)
	}
	to, err := output.MarshalViewsYAML(other)
	if err != nil {
		return operational("cannot resolve manifest views", err)
	}

	report, err := output.DiffYAML(manifestPath(), from, otherPath, to, output.IsTTY())
	if err != nil {
		return operational("cannot diff manifest views", err)
	}

	if report == "" {
		output.Println("No changes detected.")
		return nil
	}
	output.Println(report)
	return nil
}
