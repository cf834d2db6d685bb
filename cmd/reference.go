package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleksamarkoni/uva-command-line/internal/judge"
	"github.com/aleksamarkoni/uva-command-line/ui"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the submission languages and their codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var codes []int
		var labels []string
		for _, l := range judge.Languages() {
			codes = append(codes, int(l))
			labels = append(labels, fmt.Sprintf("%s (%s)", l, l.Name()))
		}
		fmt.Println(ui.ReferenceTable("Language", codes, labels))
	},
}

var verdictsCmd = &cobra.Command{
	Use:   "verdicts",
	Short: "List the judge verdict codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var codes []int
		var labels []string
		for _, v := range judge.Verdicts() {
			codes = append(codes, int(v))
			label := ui.Verdict(v)
			if !v.Terminal() {
				label += ui.Muted(" (pending)")
			}
			labels = append(labels, label)
		}
		fmt.Println(ui.ReferenceTable("Verdict", codes, labels))
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(verdictsCmd)
}
