package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rps/internal/game"
)

// resetFlags restores every flag in the tree so state does not leak
// between executions of the shared root command.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RPS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAuto_HumanSweep(t *testing.T) {
	out, err := execute(t, "auto", "r", "rock", "R", "--target", "3", "--computer", "s")
	require.NoError(t, err)

	assert.Contains(t, out, "First to 3 wins. Good luck!")
	assert.Contains(t, out, "Round 3: ✅ You: rock vs Computer: scissors → WIN")
	assert.Contains(t, out, "🎉 Congratulations! You won the match!")
	assert.Contains(t, out, "Final Score: You 3 - 0 Computer (0 ties)")
}

func TestAuto_StopsAtTarget(t *testing.T) {
	out, err := execute(t, "auto", "r", "r", "r", "--target", "1", "--computer", "p")
	require.NoError(t, err)

	assert.Contains(t, out, "Round 1:")
	assert.NotContains(t, out, "Round 2:")
	assert.Contains(t, out, "💻 Computer wins the match! Better luck next time!")
}

func TestAuto_TiesDoNotScore(t *testing.T) {
	out, err := execute(t, "auto", "r", "p", "--target", "1", "--computer", "r,r")
	require.NoError(t, err)

	assert.Contains(t, out, "Round 1: 🤝 You: rock vs Computer: rock → TIE")
	assert.Contains(t, out, "Round 2: ✅ You: paper vs Computer: rock → WIN")
	assert.Contains(t, out, "Final Score: You 1 - 0 Computer (1 ties)")
}

func TestAuto_Unfinished(t *testing.T) {
	out, err := execute(t, "auto", "s", "--target", "5", "--computer", "s")
	require.NoError(t, err)

	assert.Contains(t, out, "Match unfinished after 1 rounds.")
}

func TestAuto_SeededIsReproducible(t *testing.T) {
	first, err := execute(t, "auto", "r", "p", "s", "r", "p", "--target", "7", "--seed", "99")
	require.NoError(t, err)
	second, err := execute(t, "auto", "r", "p", "s", "r", "p", "--target", "7", "--seed", "99")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAuto_InvalidMove(t *testing.T) {
	_, err := execute(t, "auto", "lizard", "--computer", "r")
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidMove)
}

func TestAuto_InvalidComputerMove(t *testing.T) {
	_, err := execute(t, "auto", "r", "--computer", "spock")
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidMove)
}

func TestAuto_InvalidTarget(t *testing.T) {
	_, err := execute(t, "auto", "r", "--target=-2", "--computer", "r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestAuto_RequiresMoves(t *testing.T) {
	_, err := execute(t, "auto")
	require.Error(t, err)
}

func TestAuto_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "rps.log")
	cfgPath := filepath.Join(dir, "config.hcl")
	body := `
match {
  target  = 1
  targets = [1, 3]
}
log {
  file  = "` + filepath.ToSlash(logPath) + `"
  level = "debug"
}
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, err := execute(t, "auto", "p", "--config", cfgPath, "--computer", "r")
	require.NoError(t, err)
	assert.Contains(t, out, "First to 1 wins. Good luck!")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(logged), "auto match"), "log file: %s", logged)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rps (devel)\n", out)
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(devel)", "(devel)"},
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"v0.4.0-rc.1", "v0.4.0-rc.1"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayVersion(tt.in), tt.in)
	}
}
