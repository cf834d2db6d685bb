package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "uva",
	Short: "Submit solutions to the UVa Online Judge from your terminal",
	Long: `uva - submit to the UVa Online Judge and watch the verdict come in

Quick Start:
  1. Authenticate:      uva login
  2. Pick a language:   uva init --lang c++11
  3. Submit:            uva submit 100 sol.cpp
  4. Review history:    uva latest --count 20

Settings come from UVA_* environment variables or a .env file.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print each protocol step")
}
