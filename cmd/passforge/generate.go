package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/settings"
)

var (
	lengthFlag int
	copyFlag   bool
	noSaveFlag bool
	countFlag  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more passwords",
	Long: `Generate prints passwords built from the stored settings. Flags
override individual settings for this run, and the merged result is saved
back unless --no-save is given.`,
	Example: `  passforge generate
  passforge generate -l 20 --special=false
  passforge generate -n 5 | sort`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&lengthFlag, "length", "l", 0, "password length (default: stored setting)")
	generateCmd.Flags().Bool("upper", false, "include uppercase letters")
	generateCmd.Flags().Bool("lower", false, "include lowercase letters")
	generateCmd.Flags().Bool("digits", false, "include digits")
	generateCmd.Flags().Bool("special", false, "include special characters")
	generateCmd.Flags().BoolVar(&copyFlag, "copy", false, "copy the password to the clipboard")
	generateCmd.Flags().BoolVar(&noSaveFlag, "no-save", false, "do not persist the merged settings")
	generateCmd.Flags().IntVarP(&countFlag, "count", "n", 1, "number of passwords to generate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := settingsPath()
	cfg := settings.Load(path)

	if lengthFlag != 0 {
		cfg.Length = lengthFlag
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
	if countFlag < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	opts := generator.Options{
		Length:    cfg.Length,
		Uppercase: cfg.Uppercase,
		Lowercase: cfg.Lowercase,
		Digits:    cfg.Digits,
		Special:   cfg.Special,
	}

	passwords := make([]string, 0, countFlag)
	for i := 0; i < countFlag; i++ {
		password, err := generator.Generate(opts)
		if err != nil {
			return err
		}
		passwords = append(passwords, password)
	}

	for _, password := range passwords {
		fmt.Fprintln(cmd.OutOrStdout(), password)
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if copyFlag {
		if err := clipboard.WriteAll(passwords[len(passwords)-1]); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not copy to clipboard:", err)
		} else if tty {
			fmt.Fprintln(cmd.OutOrStdout(), "copied to clipboard")
		}
	}

	if !noSaveFlag {
		if err := settings.Save(path, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "warning: settings not saved:", err)
		}
	}

	return nil
}
