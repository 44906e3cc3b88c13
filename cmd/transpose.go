package cmd

import (
	"fmt"

	"github.com/jsphweid/tonality/harmony"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <pitch> <interval>...",
	Short: "Adds intervals to a pitch",
	Long: `Adds the intervals to the pitch one after the other and prints every
step, so "transpose C4 j3 m3" prints E4 and G4. Use a leading '-' to go down:
"transpose Bb4 -- -j3".`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := harmony.ParsePitch(args[0])
		if err != nil {
			return err
		}
		for _, arg := range args[1:] {
			i, err := harmony.ParseInterval(arg)
			if err != nil {
				return err
			}
			p = p.Add(i)
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}
