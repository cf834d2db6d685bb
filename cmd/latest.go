package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aleksamarkoni/uva-command-line/ui"
)

var latestCmd = &cobra.Command{
	Use:     "latest",
	Aliases: []string{"latest-subs"},
	Short:   "Show your most recent submissions",
	Example: "  uva latest --count 20",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		creds, err := e.credentials()
		if err != nil {
			return err
		}

		us, err := e.client.LatestSubmissions(context.Background(), creds.UserID, count)
		if err != nil {
			return explain(err)
		}

		if len(us.Submissions) == 0 {
			fmt.Println(ui.Muted("No submissions for the current user"))
			return nil
		}
		fmt.Println(ui.Info("● ") + fmt.Sprintf("Submissions for %s", us.Name))
		fmt.Println(ui.SubmissionTable(us.Submissions, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
	latestCmd.Flags().IntP("count", "n", 10, "Number of submissions to show")
}
