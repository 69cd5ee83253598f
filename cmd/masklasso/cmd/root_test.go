package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every changed flag to its default so that commands can
// be executed repeatedly against the shared root.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	cmd.PersistentFlags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := GetRootCommand()
	resetFlags(root)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, "masklasso version")
}

func TestRootHelpListsSubcommands(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "refine")
	require.Contains(t, out, "score")
	require.Contains(t, out, "batch")
}

func TestRefineRequiresArguments(t *testing.T) {
	_, err := executeCommand(t, "refine")
	require.Error(t, err)
}

func TestScoreRejectsSingleArgument(t *testing.T) {
	_, err := executeCommand(t, "score", "only-one.png")
	require.Error(t, err)
}
