package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aleksamarkoni/uva-command-line/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log into the UVa Online Judge",
	Long: `Log into the UVa Online Judge with your username and password.

The session cookies and your uHunt id are stored locally so later
commands can submit and watch verdicts without asking again.
Your password is never stored.

Example:
  uva login -u alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		reader := bufio.NewReader(os.Stdin)
		if username == "" {
			fmt.Print("UVa username: ")
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Print("UVa password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(raw)
		}
		if username == "" || password == "" {
			return fmt.Errorf("username and password are required")
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()

		fmt.Println(ui.Info("● ") + "Logging into uva")
		creds, err := e.client.Login(context.Background(), e.store, username, password)
		if err != nil {
			err = explain(err)
			fmt.Println(ui.Failure("✗ Failed to login: " + err.Error()))
			return err
		}

		fmt.Println(ui.Success("✓ Logged in successfully!"))
		fmt.Println(ui.Muted(fmt.Sprintf("uHunt id %s saved for %s", creds.UserID, creds.Username)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("username", "u", "", "Your UVa username")
	loginCmd.Flags().StringP("password", "p", "", "Your UVa password (prompted when omitted)")
}
