package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osirisproject/cli/internal/emit"
	"github.com/osirisproject/cli/internal/output"
)

// NewEmergeCmd creates the emerge command.
func NewEmergeCmd() *cobra.Command {
	var (
		platformFlag string
		updateFlag   bool
		pathFlag     string
	)

	emergeCmd := &cobra.Command{
		Use:   "emerge",
		Short: "Create a persisting platform integration",
		Long: `Write the platform integration for the specified platform to persistent
storage. By default the integration is written to the platform directory
declared in the manifest. Existing integration is only touched when updates
are explicitly allowed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest()
			if err != nil {
				return err
			}

			platform, err := platformByID(m, platformFlag)
			if err != nil {
				return err
			}

			output.Debug("emerging platform integration",
				"platform", platform.ID,
				"update", updateFlag,
			)

			if err := emit.Emerge(m, platform, pathFlag, updateFlag); err != nil {
				return operational("cannot emerge platform integration", err)
			}

			output.Println(output.FormatCheckmark("Platform integration emerged for " + output.StyleNoun.Render(platform.ID)))
			return nil
		},
	}

	emergeCmd.Flags().StringVar(&platformFlag, "platform", "", "ID of the target platform to operate on")
	emergeCmd.Flags().BoolVar(&updateFlag, "update", false, "Whether to allow updating existing platform integration")
	emergeCmd.Flags().StringVar(&pathFlag, "path", "", "Override the platform directory")
	_ = emergeCmd.MarkFlagRequired("platform")

	return emergeCmd
}
