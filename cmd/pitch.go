package cmd

import (
	"fmt"

	"github.com/jsphweid/tonality/harmony"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <pitch>...",
	Short: "Describes pitches",
	Long: `Parses each pitch ("Eb4", "F###5", "C(3#)4", "Bb-1") and prints its
canonical spelling, staff position, MIDI key and frequency at A4 = 440Hz.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			p, err := harmony.ParsePitch(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describePitch(p))
		}
		return nil
	},
}

func describePitch(p harmony.Pitch) string {
	midi := "-"
	if key, ok := p.ToChromatic().MIDI(); ok {
		midi = fmt.Sprint(key)
	}
	return fmt.Sprintf("%s\tdiatonic=%d chromatic=%d midi=%s frequency=%.2f", p, p.Diatonic, p.Chromatic, midi, p.Frequency())
}
