package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the stored settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored settings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := settings.Load(settingsPath())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "length:    %d\n", cfg.Length)
		fmt.Fprintf(out, "uppercase: %t\n", cfg.Uppercase)
		fmt.Fprintf(out, "lowercase: %t\n", cfg.Lowercase)
		fmt.Fprintf(out, "digits:    %t\n", cfg.Digits)
		fmt.Fprintf(out, "special:   %t\n", cfg.Special)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), settingsPath())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update stored settings",
	Long: `Set updates the given fields and saves the settings file. Omitted
fields keep their stored values.`,
	Example: `  passforge config set --length 20
  passforge config set --special=false --digits=true`,
	RunE: runConfigSet,
}

func init() {
	configSetCmd.Flags().Int("length", 0, "password length")
	configSetCmd.Flags().Bool("upper", false, "include uppercase letters")
	configSetCmd.Flags().Bool("lower", false, "include lowercase letters")
	configSetCmd.Flags().Bool("digits", false, "include digits")
	configSetCmd.Flags().Bool("special", false, "include special characters")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := settingsPath()
	cfg := settings.Load(path)

	if cmd.Flags().Changed("length") {
		cfg.Length, _ = cmd.Flags().GetInt("length")
	}
	cfg.Uppercase = flagOrDefault(cmd, "upper", cfg.Uppercase)
	cfg.Lowercase = flagOrDefault(cmd, "lower", cfg.Lowercase)
	cfg.Digits = flagOrDefault(cmd, "digits", cfg.Digits)
	cfg.Special = flagOrDefault(cmd, "special", cfg.Special)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkLength(cfg.Length); err != nil {
		return err
	}

	if err := settings.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "settings saved to", path)
	return nil
}
