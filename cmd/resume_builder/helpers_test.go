package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// workspace is a data and export directory shared by consecutive CLI invocations
type workspace struct {
	dataDir   string
	exportDir string
	config    string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	t.Setenv("RESUME_DATA_DIR", "")
	t.Setenv("CHROME_PATH", "")
	t.Setenv("PORT", "")

	root := t.TempDir()
	ws := &workspace{
		dataDir:   filepath.Join(root, "data"),
		exportDir: filepath.Join(root, "exports"),
		config:    filepath.Join(root, "config.yaml"),
	}
	cfg := "storage: file\ngeneration_delay_ms: 1\nexport_dir: " + ws.exportDir + "\n"
	require.NoError(t, os.WriteFile(ws.config, []byte(cfg), 0644))
	return ws
}

// run executes the CLI in-process and returns everything it printed
func (ws *workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", ws.config, "--data-dir", ws.dataDir))

	err := rootCmd.Execute()
	closeApp()
	return out.String(), err
}

func (ws *workspace) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := ws.run(t, args...)
	require.NoError(t, err, out)
	return out
}

// resetFlags restores every flag to its default so invocations do not leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
