package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// sampleRecords is a small records file used across command tests.
const sampleRecords = `
tasks:
  - title: Weekly report
    dueDate: 2024-03-04T09:00:00Z
    isRecurring: true
    recurringEndDate: 2024-03-08T09:00:00Z
    recurringPattern: daily
    progress: 0.5
    rawStatusLabel: Waiting on client
  - title: Fix login
    dueDate: 2024-03-06T15:00:00Z
    status: stuck
    progress: 20
  - title: Send invoice
    dueDate: 2024-03-01T10:00:00Z
    progress: 0
  - title: Archive
    dueDate: 2024-03-06T11:00:00Z
    status: done
    progress: 1
meetings:
  - title: Kickoff
    date: 2024-03-06T10:00:00Z
    status: scheduled
  - title: Retro
    date: 2024-03-12T16:00:00Z
    status: cancelled
projects:
  - name: Apollo
    progress: 100
  - name: Zeus
    progress: 0.4
`

// fixedNow is the clock used by command tests.
var fixedNow = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

// setupCommandTest isolates a command test: a temporary home, a fixed clock
// and a fresh Viper with the persistent flags bound again.
func setupCommandTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", "")
	homedir.DisableCache = true

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	prevNow := now
	now = func() time.Time { return fixedNow }

	viper.Reset()
	bindFlags()

	t.Cleanup(func() {
		now = prevNow
		_ = os.Chdir(wd)
		resetFlags(rootCmd)
		viper.Reset()
		bindFlags()
	})
	return dir
}

// writeRecords writes sampleRecords under dir and returns the path.
func writeRecords(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "records.yaml")
	if err := os.WriteFile(path, []byte(sampleRecords), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// executeCommand runs the root command with args and returns its combined output.
func executeCommand(args ...string) (string, error) {
	b := bytes.NewBufferString("")
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	resetFlags(rootCmd)
	return b.String(), err
}

// resetFlags puts every flag of c and its children back to its default, since
// cobra keeps flag values between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
