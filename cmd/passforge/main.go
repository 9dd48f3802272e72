// main.go sets up the passforge command-line interface using Cobra. It
// defines the root command, which launches the interactive form, and the
// generate, serve, and config subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/settings"
	"github.com/passforge/passforge-go/internal/tui"
)

var version = "dev" // set by the linker

var settingsFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "passforge",
	Short: "PassForge generates strong random passwords.",
	Long: `PassForge generates random passwords from configurable character
classes and remembers your preferences between runs.

Running without a subcommand launches the interactive form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(settingsPath())
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "settings file (default is $XDG_CONFIG_HOME/passforge/settings.yaml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// settingsPath resolves the settings file location. The --settings flag
// wins, then the PASSFORGE_SETTINGS variable, then the default location.
func settingsPath() string {
	if settingsFlag != "" {
		return settingsFlag
	}
	if env := os.Getenv("PASSFORGE_SETTINGS"); env != "" {
		return env
	}
	return settings.DefaultPath()
}

// checkLength enforces the 8..128 policy shared by the CLI commands.
func checkLength(n int) error {
	if n < generator.MinLength {
		return fmt.Errorf("password length must be at least %d", generator.MinLength)
	}
	if n > generator.MaxLength {
		return fmt.Errorf("password length must be at most %d", generator.MaxLength)
	}
	return nil
}

// flagOrDefault returns the bool flag value when it was set explicitly,
// otherwise the fallback. This is what lets --upper=false work while an
// omitted flag keeps the stored setting.
func flagOrDefault(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}
