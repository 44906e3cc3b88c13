package cmd

import (
	"fmt"

	"github.com/jsphweid/tonality/harmony"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(betweenCmd)
}

var betweenCmd = &cobra.Command{
	Use:   "between <from> <to>",
	Short: "Prints the interval between two pitches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := harmony.ParsePitch(args[0])
		if err != nil {
			return err
		}
		to, err := harmony.ParsePitch(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), describeInterval(to.Sub(from)))
		return nil
	},
}
