package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/carmax/dotnet-gen/internal/config"
	"github.com/carmax/dotnet-gen/internal/template"
	"github.com/carmax/dotnet-gen/internal/toolchain"
	"github.com/carmax/dotnet-gen/internal/ui"
)

// recordingRunner records commands and fakes the few outputs the
// generator reads back.
type recordingRunner struct {
	commands []string
	fail     string
}

func (r *recordingRunner) Run(_ context.Context, cmd toolchain.Command) (toolchain.Result, error) {
	line := strings.Join(cmd.Args, " ")
	r.commands = append(r.commands, line)
	if r.fail != "" && strings.HasPrefix(line, r.fail) {
		return toolchain.Result{ExitCode: 1}, &toolchain.InvocationError{Command: cmd, ExitCode: 1, Output: "boom"}
	}
	if line == "--version" {
		return toolchain.Result{Output: "8.0.100\n"}, nil
	}
	return toolchain.Result{}, nil
}

// withTestDeps installs headless, colorless dependencies backed by runner
// and restores the previous ones when the test ends.
func withTestDeps(t *testing.T, runner toolchain.Runner) *Dependencies {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates: %v", err)
	}
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	d := &Dependencies{
		Config:    config.NewLoader(nil),
		Runner:    runner,
		Templates: fsys,
		Headless:  hm,
		Theme:     newTheme(true),
		Logger:    newLogger(&bytes.Buffer{}, false),
	}

	orig := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(orig) })
	return d
}

// executeCommand runs the root command with args and returns its output.
// Flag values are reset first because cobra keeps them between runs.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

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

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
