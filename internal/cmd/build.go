package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/osirisproject/cli/internal/cargo"
	"github.com/osirisproject/cli/internal/gradle"
	"github.com/osirisproject/cli/internal/output"
)

// Runners for external tools. Package-level so tests can substitute fakes.
var (
	metadataRunner cargo.Runner  = cargo.ExecRunner{}
	buildRunner    gradle.Runner = gradle.ExecRunner{}
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var platformFlag string

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build artifacts for the specified platform",
		Long: `Perform a full build of the platform integration of the specified
platform. Without a persistent platform directory, an ephemeral integration
is emerged into the cargo target directory and built from there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest()
			if err != nil {
				return err
			}

			application, err := m.Raw.ViewApplication()
			if err != nil {
				return operational("cannot resolve application configuration", err)
			}

			platform, err := platformByID(m, platformFlag)
			if err != nil {
				return err
			}

			// The application path is relative to the manifest.
			applicationDir := filepath.Join(filepath.Dir(manifestPath()), application.Path)

			metadata, err := cargo.Query(metadataRunner, applicationDir)
			if err != nil {
				return operational("cannot query cargo metadata", err)
			}

			output.Debug("building platform integration",
				"platform", platform.ID,
				"target", metadata.TargetDirectory,
			)

			err = output.RunWithSpinner(cmd.Context(), func() error {
				return gradle.Build(m, metadata, platform, buildRunner, gradleBin())
			}, output.WithTitle(fmt.Sprintf("Building %s platform integration...", platform.ID)))
			if err != nil {
				return operational("cannot build platform integration", err)
			}

			output.Println(output.FormatCheckmark("Platform integration built for " + output.StyleNoun.Render(platform.ID)))
			return nil
		},
	}

	buildCmd.Flags().StringVar(&platformFlag, "platform", "", "ID of the target platform to operate on")
	_ = buildCmd.MarkFlagRequired("platform")

	return buildCmd
}
