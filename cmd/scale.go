package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	scaleRoot  string
	scaleCount int
	scaleMode  int
	scaleSave  string
	scaleList  bool
)

func init() {
	scaleCmd.Flags().StringVar(&scaleRoot, "root", "C4", "pitch to lay the scale out from")
	scaleCmd.Flags().IntVar(&scaleCount, "count", 0, "number of pitches to print, one octave by default")
	scaleCmd.Flags().IntVar(&scaleMode, "mode", 0, "rotate to this mode first (zero based)")
	scaleCmd.Flags().StringVar(&scaleSave, "save", "", "store the scale under this name")
	scaleCmd.Flags().BoolVar(&scaleList, "list", false, "list every known scale")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale [name | intervals...]",
	Short: "Prints a scale and its pitches",
	Long: `Looks up a scale by name ("dorian", "harmonic-minor", or one saved with
--save) or reads it from intervals ("1 2 m3 4 5 6 7"; a bare 2, 3 or 6 is
major and a bare 7 minor) and prints it from --root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if scaleList {
			scales, err := allScales(cmd.Context(), store)
			if err != nil {
				return err
			}
			for _, name := range util.GetKeys(scales) {
				fmt.Fprintf(out, "%s\t%s\n", name, scales[name])
			}
			return nil
		}

		if len(args) == 0 {
			return errors.New("need a scale name or intervals")
		}
		s, err := lookupScale(cmd.Context(), store, strings.Join(args, " "))
		if err != nil {
			return err
		}
		s = s.NthMode(scaleMode)
		root, err := harmony.ParsePitch(scaleRoot)
		if err != nil {
			return err
		}
		if scaleSave != "" {
			if err := store.Put(cmd.Context(), scaleSave, s); err != nil {
				return err
			}
			logger.Info("saved scale", "name", scaleSave, "scale", s.String())
		}

		count := scaleCount
		if count <= 0 {
			count = s.Len() + 1
		}
		if err := checkCount(count); err != nil {
			return err
		}
		fmt.Fprintln(out, s)
		fmt.Fprintln(out, joinPitches(s.IterFrom(root).Take(count)))
		return nil
	},
}

func joinPitches(pitches []harmony.Pitch) string {
	parts := make([]string, len(pitches))
	for i, p := range pitches {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
