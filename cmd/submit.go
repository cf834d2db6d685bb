package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aleksamarkoni/uva-command-line/client"
	"github.com/aleksamarkoni/uva-command-line/internal/config"
	"github.com/aleksamarkoni/uva-command-line/internal/judge"
	"github.com/aleksamarkoni/uva-command-line/ui"
)

var submitCmd = &cobra.Command{
	Use:   "submit <problem-id> <file>",
	Short: "Submit a solution and wait for the verdict",
	Long: `Upload a solution to the UVa Online Judge, then poll uHunt until
the verdict is final.

The language comes from --lang, or from the project default set with
'uva init --lang'. Accepted values: c, java, c++, pascal, c++11, python
or their codes 1-6.

Examples:
  uva submit 100 sol.cpp --lang c++11
  uva submit 100 Main.java --lang java --no-watch`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		problemID, err := strconv.Atoi(args[0])
		if err != nil || problemID <= 0 {
			return fmt.Errorf("invalid problem id %q", args[0])
		}
		path := args[1]

		lang, err := resolveLanguage(cmd)
		if err != nil {
			return err
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		creds, err := e.credentials()
		if err != nil {
			return err
		}

		ctx := context.Background()
		fmt.Println(ui.Info("● ") + fmt.Sprintf("Submitting %s for problem %d as %s", path, problemID, lang))
		receipt, err := e.client.Submit(ctx, creds, problemID, path, lang)
		if err != nil {
			err = explain(err)
			fmt.Println(ui.Failure("✗ Submission failed"))
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("✓ Submission received with id %d", receipt.AckID)))

		if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
			fmt.Println(ui.Muted(fmt.Sprintf("Run 'uva watch %d' to follow the verdict.", receipt.AckID)))
			return nil
		}
		return e.watch(ctx, creds, receipt.QueryID())
	},
}

func resolveLanguage(cmd *cobra.Command) (judge.Language, error) {
	if raw, _ := cmd.Flags().GetString("lang"); raw != "" {
		return judge.ParseLanguage(raw)
	}

	dir, err := os.Getwd()
	if err != nil {
		return 0, fmt.Errorf("failed to get current directory: %w", err)
	}
	project, err := config.LoadProjectConfig(dir)
	if err != nil {
		return 0, err
	}
	if lang, ok := project.DefaultLanguage(); ok {
		return lang, nil
	}
	return 0, fmt.Errorf("no language given\n\n→ Pass --lang or run 'uva init --lang <language>'")
}

var watchCmd = &cobra.Command{
	Use:   "watch <submission-id>",
	Short: "Wait for the verdict of an earlier submission",
	Long: `Poll uHunt until the submission with the given id is judged.

Use the id printed by 'uva submit'.

Example:
  uva watch 558822`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ackID, err := strconv.Atoi(args[0])
		if err != nil || ackID <= 0 {
			return fmt.Errorf("invalid submission id %q", args[0])
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		creds, err := e.credentials()
		if err != nil {
			return err
		}
		return e.watch(context.Background(), creds, client.Receipt{AckID: ackID}.QueryID())
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(watchCmd)
	submitCmd.Flags().StringP("lang", "l", "", "Language name or code (e.g. c++11 or 5)")
	submitCmd.Flags().Bool("no-watch", false, "Return right after the upload")
}
