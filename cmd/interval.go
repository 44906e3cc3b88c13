package cmd

import (
	"fmt"

	"github.com/jsphweid/tonality/harmony"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <interval>...",
	Short: "Describes intervals",
	Long: `Parses each interval and prints its canonical spelling, its diatonic and
chromatic steps and its octave reduction. Qualities are d, m, p, j (or M) and a,
or a parenthesized number: "m3", "j3", "a4", "(-3)5", "-j3".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			i, err := harmony.ParseInterval(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeInterval(i))
		}
		return nil
	},
}

func describeInterval(i harmony.Interval) string {
	return fmt.Sprintf("%s\tdiatonic=%d chromatic=%d reduced=%s", i, i.Diatonic, i.Chromatic, i.ReduceOctave())
}
