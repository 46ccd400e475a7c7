package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"azpull/src/config"
)

// addGlobalFlags adds persistent flags shared by all subcommands.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("dest", ".", "Destination root for downloaded container folders")
	cmd.PersistentFlags().String("config", "", "Path to a YAML config file with presets")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to confirmation prompts")
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned downloads without copying anything")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging of control-plane calls")
}

// loadConfig reads the --config file when given, or returns defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
}

// getLogger builds the run logger from the --verbose flag.
func getLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
