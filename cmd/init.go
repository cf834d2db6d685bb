package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aleksamarkoni/uva-command-line/internal/config"
	"github.com/aleksamarkoni/uva-command-line/internal/judge"
)

var initCmd = &cobra.Command{
	Use:   "init [--lang <language>] or init <language>",
	Short: "Set the default submission language for this directory",
	Long: `Store a default language in ` + config.ProjectFile + ` so 'uva submit'
can be used without --lang.

Examples:
  uva init --lang c++11
  uva init java`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string

		// Support both --lang flag and positional argument
		if len(args) > 0 {
			raw = args[0]
		} else {
			raw, _ = cmd.Flags().GetString("lang")
		}
		if raw == "" {
			return fmt.Errorf("language cannot be empty. Use: uva init --lang <language>")
		}

		lang, err := judge.ParseLanguage(raw)
		if err != nil {
			return err
		}

		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		if err := config.SaveProjectConfig(dir, lang); err != nil {
			return fmt.Errorf("failed to save project config: %w", err)
		}

		fmt.Printf("✓ Project initialized!\n")
		fmt.Printf("  Language: %s (code %d)\n", lang, int(lang))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("lang", "l", "", "Default language (e.g. c++11)")
}
