package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aleksamarkoni/uva-command-line/client"
	"github.com/aleksamarkoni/uva-command-line/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear local credentials and logout",
	Long: `Clear your locally stored session.

You'll need to run 'uva login' again before submitting.

Example:
  uva logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		return logout(cmd.OutOrStdout(), e.store)
	},
}

func logout(w io.Writer, store client.CredentialStore) error {
	creds, err := store.Load()
	if err != nil {
		return fmt.Errorf("could not load credentials: %w", err)
	}
	if creds == nil {
		fmt.Fprintln(w, "Already logged out")
		return nil
	}

	if err := store.Clear(); err != nil {
		fmt.Fprintln(w, ui.Warn("⚠ Your session is still stored"))
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	fmt.Fprintln(w, "✓ Logged out successfully!")
	return nil
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
