package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osirisproject/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the platform manifest",
		Long: `Parse and validate the platform manifest, then resolve every declared
view. Defaults and precedence rules are applied exactly as the emerge and
build operations would, so any missing required key is reported here.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest()
			if err != nil {
				return err
			}

			if _, err := output.BuildViewDocument(m); err != nil {
				return operational("manifest does not resolve", err)
			}

			output.Println(output.FormatCheckmark("Manifest " + output.StyleNoun.Render(manifestPath()) + " is valid"))
			return nil
		},
	}
}
