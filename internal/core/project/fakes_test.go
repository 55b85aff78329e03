package project

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/carmax/dotnet-gen/internal/toolchain"
)

// fakeDotNet simulates the dotnet CLI: it records every command and creates
// the files the real templates would create.
type fakeDotNet struct {
	t        *testing.T
	version  string
	failOn   func(toolchain.Command) bool
	commands []toolchain.Command
}

func newFakeDotNet(t *testing.T) *fakeDotNet {
	return &fakeDotNet{t: t, version: "8.0.100"}
}

func (f *fakeDotNet) Run(_ context.Context, cmd toolchain.Command) (toolchain.Result, error) {
	f.commands = append(f.commands, cmd)

	if f.failOn != nil && f.failOn(cmd) {
		return toolchain.Result{ExitCode: 1, Output: "error: simulated failure"},
			&toolchain.InvocationError{Command: cmd, ExitCode: 1, Output: "error: simulated failure"}
	}

	args := cmd.Args
	switch {
	case len(args) == 1 && args[0] == "--version":
		return toolchain.Result{Output: f.version + "\n"}, nil
	case len(args) >= 4 && args[0] == "new" && args[1] == "sln":
		f.write(cmd.Dir, args[3]+".sln", "")
	case len(args) >= 4 && args[0] == "new":
		name := args[3]
		out := name
		if i := slices.Index(args, "-o"); i >= 0 && i+1 < len(args) {
			out = args[i+1]
		}
		f.write(cmd.Dir, filepath.Join(out, name+".csproj"), "<Project />")
		switch args[1] {
		case "webapi", "webapp", "mvc":
			f.write(cmd.Dir, filepath.Join(out, "appsettings.json"), `{"Logging":{"LogLevel":{"Default":"Information"}},"AllowedHosts":"*"}`)
			f.write(cmd.Dir, filepath.Join(out, "appsettings.Development.json"), `{}`)
		}
	}
	return toolchain.Result{}, nil
}

func (f *fakeDotNet) write(dir, rel, content string) {
	f.t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		f.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		f.t.Fatal(err)
	}
}

// lines renders the recorded commands without the binary name.
func (f *fakeDotNet) lines() []string {
	out := make([]string, len(f.commands))
	for i, c := range f.commands {
		out[i] = strings.Join(c.Args, " ")
	}
	return out
}

// recordingReporter captures reporter events.
type recordingReporter struct {
	welcome []string
	events  []string
}

func (r *recordingReporter) Welcome(msg string) { r.welcome = append(r.welcome, msg) }
func (r *recordingReporter) PhaseStarted(phase State, total int) {
	r.events = append(r.events, "phase "+phase.String())
}
func (r *recordingReporter) StepStarted(step Step) { r.events = append(r.events, "start "+step.Name) }
func (r *recordingReporter) StepFinished(step Step, err error) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	r.events = append(r.events, status+" "+step.Name)
}
func (r *recordingReporter) PhaseFinished(phase State) {
	r.events = append(r.events, "end "+phase.String())
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
