package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns what it printed. Flags of
// earlier runs are reset first.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DYNAMO_ENDPOINT", "")
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, name := range []string{"interval", "pitch", "transpose", "between", "scale", "chord", "engrave", "spell", "export", "serve"} {
		assert.Contains(t, names, name)
	}
}

func TestPitchCommand(t *testing.T) {
	out, err := run(t, "pitch", "A4")
	require.NoError(t, err)
	assert.Equal(t, "A4\tdiatonic=5 chromatic=9 midi=69 frequency=440.00\n", out)

	_, err = run(t, "pitch", "H4")
	assert.Error(t, err)
}

func TestIntervalCommand(t *testing.T) {
	out, err := run(t, "interval", "M10", "(-2)5")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"j10\tdiatonic=9 chromatic=16 reduced=j3",
		"d5\tdiatonic=4 chromatic=6 reduced=d5",
	}, lines(out))

	_, err = run(t, "interval", "m5")
	assert.Error(t, err)
}

func TestBetweenCommand(t *testing.T) {
	out, err := run(t, "between", "C4", "Eb5")
	require.NoError(t, err)
	assert.Equal(t, "m10\tdiatonic=9 chromatic=15 reduced=m3\n", out)

	out, err = run(t, "between", "E4", "C4")
	require.NoError(t, err)
	assert.Equal(t, "-j3\tdiatonic=-2 chromatic=-4 reduced=m6\n", out)
}

func TestTransposeCommand(t *testing.T) {
	out, err := run(t, "transpose", "C4", "j3", "m3")
	require.NoError(t, err)
	assert.Equal(t, []string{"E4", "G4"}, lines(out))

	out, err = run(t, "transpose", "C4", "--", "-m2")
	require.NoError(t, err)
	assert.Equal(t, "B3\n", out)
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale", "major")
	require.NoError(t, err)
	assert.Equal(t, []string{"1 j2 j3 4 5 j6 j7", "C4 D4 E4 F4 G4 A4 B4 C5"}, lines(out))

	out, err = run(t, "scale", "major", "--mode", "1", "--root", "D4")
	require.NoError(t, err)
	assert.Equal(t, "D4 E4 F4 G4 A4 B4 C5 D5", lines(out)[1])

	out, err = run(t, "scale", "1", "j2", "m3", "4", "5", "m6", "j7", "--root", "A3", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, "A3 B3 C4", lines(out)[1])

	_, err = run(t, "scale", "major", "--count", "5000")
	assert.Error(t, err)
	_, err = run(t, "scale", "no-such-scale")
	assert.Error(t, err)
	_, err = run(t, "scale")
	assert.Error(t, err)
}

func TestScaleListCommand(t *testing.T) {
	out, err := run(t, "scale", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "dorian\t1 j2 m3 4 5 j6 m7\n")
	assert.Contains(t, out, "harmonic-minor\t")
}

func TestChordCommand(t *testing.T) {
	out, err := run(t, "chord", "G4", "C4", "E4")
	require.NoError(t, err)
	assert.Equal(t, "C4-E4-G4\tmajor\n", out)

	out, err = run(t, "chord", "--scale", "major", "--root", "C4", "--degree", "1")
	require.NoError(t, err)
	assert.Equal(t, "D4-F4-A4\tminor\n", out)

	out, err = run(t, "chord", "--degree", "6")
	require.NoError(t, err)
	assert.Equal(t, "B4-D5-F5\tdiminished\n", out)
}

func TestEngraveCommand(t *testing.T) {
	out, err := run(t, "engrave", "C4", "C#4", "C#4", "|", "C#4", "C4")
	require.NoError(t, err)
	assert.Equal(t, "C4 C#4[#] C#4 | C#4[#] C4[n]\n", out)

	out, err = run(t, "engrave", "--key", "Bb", "Bb4", "B4", "Eb5")
	require.NoError(t, err)
	assert.Equal(t, []string{"key: Bb Eb", "Bb4 B4[n] Eb5"}, lines(out))

	_, err = run(t, "engrave", "--key", "X", "C4")
	assert.Error(t, err)
}

func TestExportAndSpell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.mid")
	_, err := run(t, "export", "--out", path, "C4", "C#4", "C#4", "D4")
	require.NoError(t, err)

	out, err := run(t, "spell", path)
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 4)

	var names, marks []string
	for _, row := range rows {
		fields := strings.Split(row, "\t")
		require.Len(t, fields, 5)
		assert.Equal(t, "0", fields[0])
		names = append(names, fields[3])
		marks = append(marks, fields[4])
	}
	assert.Equal(t, []string{"C4", "C#4", "C#4", "D4"}, names)
	assert.Equal(t, []string{"", "#", "", ""}, marks)

	out, err = run(t, "spell", path, "--key", "F", "--beats", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\t0\t0\tC4\t", lines(out)[0])
	assert.Equal(t, "Db4", strings.Split(lines(out)[1], "\t")[3])
	assert.Equal(t, "b", strings.Split(lines(out)[2], "\t")[4])
}

func TestExportScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scale.mid")
	_, err := run(t, "export", "--out", path, "--scale", "minor", "--root", "A3")
	require.NoError(t, err)

	out, err := run(t, "chord", "--midi", path, "--key", "a")
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 8)
	assert.Equal(t, "0\tA3\tother", rows[0])
	assert.Equal(t, "960\tB3\tother", rows[1])

	_, err = run(t, "export", "--out", path)
	assert.Error(t, err)
}
