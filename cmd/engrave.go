package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonality/engrave"
	"github.com/jsphweid/tonality/harmony"
	"github.com/spf13/cobra"
)

var engraveKey string

func init() {
	engraveCmd.Flags().StringVar(&engraveKey, "key", "C", `key signature, e.g. "Bb major", "g minor", "D dorian"`)
	rootCmd.AddCommand(engraveCmd)
}

var engraveCmd = &cobra.Command{
	Use:   "engrave <pitch | \"|\">...",
	Short: "Prints the accidentals a score needs",
	Long: `Reads pitches in the order they are played, with "|" for barlines, and
prints each pitch with the accidental that has to be written in front of it
in --key ("n" for a natural, nothing when the reader already knows it).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := engrave.ParseKey(engraveKey)
		if err != nil {
			return err
		}
		calc := engrave.NewCalculator(key)
		var bars [][]string
		var bar []string
		for _, arg := range args {
			if arg == "|" {
				bars = append(bars, bar)
				bar = nil
				calc.Clear()
				continue
			}
			p, err := harmony.ParsePitch(arg)
			if err != nil {
				return err
			}
			note := p.String()
			if acc, ok := calc.Next(p); ok {
				note += "[" + engrave.Mark(acc) + "]"
			}
			bar = append(bar, note)
		}
		bars = append(bars, bar)

		out := cmd.OutOrStdout()
		if key.String() != "" {
			fmt.Fprintf(out, "key: %s\n", key)
		}
		lines := make([]string, len(bars))
		for i, b := range bars {
			lines[i] = strings.Join(b, " ")
		}
		fmt.Fprintln(out, strings.Join(lines, " | "))
		return nil
	},
}
