package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osirisproject/cli/internal/config"
	"github.com/osirisproject/cli/internal/manifest"
	"github.com/osirisproject/cli/internal/output"
	"github.com/osirisproject/cli/internal/version"
)

var (
	// Global flags
	manifestFlag   string
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the osiris-platform CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "osiris-platform",
		Short:         "Osiris Platform Tooling",
		Long:          `Manage the platform integration of rust applications.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&manifestFlag, "manifest", "", "Path to the platform manifest relative to the working directory (env: OSIRIS_MANIFEST)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: OSIRIS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewEmergeCmd())
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands still work off defaults without a readable config.
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	cliConfig = loaded

	// Timestamps precedence: flag (if explicitly set) > config > default.
	timestamps := cliConfig.Log.Timestamps != nil && *cliConfig.Log.Timestamps
	if cmd.Flags().Changed("timestamps") {
		timestamps = timestampsFlag
	}

	output.SetupLogging(verboseFlag, timestamps)

	info := version.Get()
	output.Debug("osiris-platform started", "version", info.Version)

	return nil
}

// manifestPath resolves the manifest location from flag or configuration.
func manifestPath() string {
	if manifestFlag != "" {
		return manifestFlag
	}
	if cliConfig != nil && cliConfig.Manifest != "" {
		return cliConfig.Manifest
	}
	return config.DefaultManifestPath
}

// gradleBin resolves the Gradle binary from configuration.
func gradleBin() string {
	if cliConfig != nil && cliConfig.Gradle.Bin != "" {
		return cliConfig.Gradle.Bin
	}
	return "gradle"
}

// loadManifest parses and validates the platform manifest.
func loadManifest() (*manifest.Manifest, error) {
	path := manifestPath()

	m, err := manifest.ParsePath(path)
	if err != nil {
		return nil, operational(fmt.Sprintf("cannot parse platform manifest %q", path), err)
	}
	return m, nil
}

// platformByID looks up a platform entry, reporting unknown ids as an
// operational error.
func platformByID(m *manifest.Manifest, id string) (*manifest.RawPlatform, error) {
	platform := m.Raw.PlatformByID(id)
	if platform == nil {
		return nil, NewExitError(fmt.Errorf("no platform with ID %q", id), ExitGeneralError)
	}
	return platform, nil
}
