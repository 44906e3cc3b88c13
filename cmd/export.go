package cmd

import (
	"os"

	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportTicks uint32
	exportScale string
	exportRoot  string
	exportCount int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "out.mid", "file to write")
	exportCmd.Flags().Uint32Var(&exportTicks, "ticks", midi.TicksPerQuarter, "length of each note in ticks")
	exportCmd.Flags().StringVar(&exportScale, "scale", "", "play this scale instead of the given pitches")
	exportCmd.Flags().StringVar(&exportRoot, "root", "C4", "root of --scale")
	exportCmd.Flags().IntVar(&exportCount, "count", 0, "number of scale pitches, one octave by default")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [pitch...]",
	Short: "Writes pitches to a MIDI file",
	Long: `Writes the pitches, or --count pitches of --scale from --root, as a
single track MIDI file with one note after the other.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var pitches []harmony.Pitch
		switch {
		case exportScale != "":
			store, err := openStore()
			if err != nil {
				return err
			}
			s, err := lookupScale(cmd.Context(), store, exportScale)
			if err != nil {
				return err
			}
			root, err := harmony.ParsePitch(exportRoot)
			if err != nil {
				return err
			}
			count := exportCount
			if count <= 0 {
				count = s.Len() + 1
			}
			if err := checkCount(count); err != nil {
				return err
			}
			pitches = s.IterFrom(root).Take(count)
		case len(args) > 0:
			for _, arg := range args {
				p, err := harmony.ParsePitch(arg)
				if err != nil {
					return err
				}
				pitches = append(pitches, p)
			}
		default:
			return errors.New("need pitches or --scale")
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return errors.Wrap(err, "could not create midi file")
		}
		defer f.Close()
		if err := midi.WriteSequence(f, pitches, exportTicks); err != nil {
			return err
		}
		logger.Info("wrote midi file", "path", exportOut, "notes", len(pitches))
		return f.Close()
	},
}
