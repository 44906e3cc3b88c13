package cmd

import (
	"fmt"

	"github.com/jsphweid/tonality/engrave"
	"github.com/jsphweid/tonality/midi"
	"github.com/spf13/cobra"
)

var (
	spellKey   string
	spellBeats int
	spellTrack int
)

func init() {
	spellCmd.Flags().StringVar(&spellKey, "key", "C", "key signature to spell in")
	spellCmd.Flags().IntVar(&spellBeats, "beats", 4, "quarter notes per bar, 0 for no barlines")
	spellCmd.Flags().IntVar(&spellTrack, "track", -1, "only spell this track")
	rootCmd.AddCommand(spellCmd)
}

var spellCmd = &cobra.Command{
	Use:   "spell <file.mid>",
	Short: "Spells the notes of a MIDI file",
	Long: `Names every note of a MIDI file in --key and prints the accidental a
score would show in front of it. Accidentals last until the end of the bar.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := engrave.ParseKey(spellKey)
		if err != nil {
			return err
		}
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		var ticksPerBar int64
		if spellBeats > 0 {
			if ticksPerBar, err = midi.TicksPerBar(s, spellBeats); err != nil {
				return err
			}
		}

		events := midi.Events(s)
		if spellTrack >= 0 {
			events = midi.Tracks(events)[spellTrack]
		}
		notes := midi.Spell(events, key, ticksPerBar)
		logger.Debug("spelled midi file", "path", args[0], "notes", len(notes), "ticksPerBar", ticksPerBar)

		out := cmd.OutOrStdout()
		for _, n := range notes {
			mark := ""
			if n.Printed {
				mark = engrave.Mark(n.Accidental)
			}
			fmt.Fprintf(out, "%d\t%d\t%d\t%s\t%s\n", n.Bar, n.Tick, n.Track, n.Pitch, mark)
		}
		return nil
	},
}
