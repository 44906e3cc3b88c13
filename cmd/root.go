package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// logger is the package-wide structured logger. It is slog.Default() until
// initLogger runs.
var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

var debug bool

var rootCmd = &cobra.Command{
	Use:   "tonality",
	Short: "Pitch, interval and scale arithmetic",
	Long: `tonality does arithmetic on pitches and intervals that keeps their
spelling: C4 + m3 is Eb4, not D#4. It builds scales and modes, decides
which accidentals a score has to print and serves all of it over HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output with source locations")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
