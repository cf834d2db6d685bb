package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/aleksamarkoni/uva-command-line/ui"
)

// uhuntProfileURL is the uHunt web page for a uid
const uhuntProfileURL = "https://uhunt.onlinejudge.org/id/%s"

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is logged in",
	Long: `Show the stored login and where it is kept.

With --web, open your uHunt statistics page in the browser.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		creds, err := e.credentials()
		if err != nil {
			return err
		}

		fmt.Printf("Username:  %s\n", creds.Username)
		fmt.Printf("uHunt id:  %s\n", creds.UserID)
		fmt.Printf("Judge:     %s\n", e.settings.BaseURL)
		fmt.Printf("Storage:   %s (profile %s)\n", e.settings.Backend, e.settings.Profile)

		if web, _ := cmd.Flags().GetBool("web"); web {
			url := fmt.Sprintf(uhuntProfileURL, creds.UserID)
			fmt.Println(ui.Muted("Opening " + url))
			if err := browser.OpenURL(url); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("web", false, "Open your uHunt page in the browser")
}
