package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osirisproject/cli/internal/output"
	"github.com/osirisproject/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			output.Println(fmt.Sprintf("osiris-platform version %s", info.Version))
			output.Println(fmt.Sprintf("  Commit: %s", info.GitCommit))
			output.Println(fmt.Sprintf("  Built:  %s", info.BuildDate))
			output.Println(fmt.Sprintf("  Go:     %s", info.GoVersion))

			return nil
		},
	}
}
