package cmd

import (
	"fmt"

	"github.com/jsphweid/tonality/chord"
	"github.com/jsphweid/tonality/engrave"
	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/midi"
	"github.com/spf13/cobra"
)

var (
	chordScale  string
	chordRoot   string
	chordDegree int
	chordSize   int
	chordMidi   string
	chordKey    string
)

func init() {
	chordCmd.Flags().StringVar(&chordScale, "scale", "major", "scale to stack the chord in")
	chordCmd.Flags().StringVar(&chordRoot, "root", "C4", "root of the scale")
	chordCmd.Flags().IntVar(&chordDegree, "degree", 0, "scale degree of the chord root, zero based")
	chordCmd.Flags().IntVar(&chordSize, "size", 3, "number of notes")
	chordCmd.Flags().StringVar(&chordMidi, "midi", "", "list the chords of this MIDI file instead")
	chordCmd.Flags().StringVar(&chordKey, "key", "C", "key to spell MIDI notes in")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord [pitch...]",
	Short: "Builds and names chords",
	Long: `With pitches, names the chord they form. Without, stacks thirds on
--degree of --scale from --root. With --midi, lists every chord sounding in
the file, spelled in --key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if chordMidi != "" {
			return printMidiChords(cmd, chordMidi, chordKey)
		}

		var pitches []harmony.Pitch
		if len(args) > 0 {
			for _, arg := range args {
				p, err := harmony.ParsePitch(arg)
				if err != nil {
					return err
				}
				pitches = append(pitches, p)
			}
		} else {
			store, err := openStore()
			if err != nil {
				return err
			}
			s, err := lookupScale(cmd.Context(), store, chordScale)
			if err != nil {
				return err
			}
			root, err := harmony.ParsePitch(chordRoot)
			if err != nil {
				return err
			}
			pitches = chord.Diatonic(s, root, chordDegree, chordSize)
		}
		fmt.Fprintf(out, "%s\t%s\n", chord.Key(pitches), chord.Quality(pitches))
		return nil
	},
}

func printMidiChords(cmd *cobra.Command, path, keyName string) error {
	key, err := engrave.ParseKey(keyName)
	if err != nil {
		return err
	}
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	events := midi.Events(s)
	logger.Debug("read midi file", "path", path, "events", len(events))
	for _, sonority := range midi.Sonorities(events, key.Spell) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", sonority.Tick, sonority.Key(), chord.Quality(sonority.Pitches))
	}
	return nil
}
