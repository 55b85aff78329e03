package cli

import (
	"fmt"
	"io"

	"github.com/carmax/dotnet-gen/internal/core/project"
	"github.com/carmax/dotnet-gen/internal/ui"
)

// progressReporter shows generator progress: a spinner while the
// toolchain is checked and a progress bar for each step phase.
type progressReporter struct {
	out      io.Writer
	theme    *ui.Theme
	progress ui.Progress

	bar     ui.ProgressBar
	spinner ui.Spinner
	failed  bool
}

// Compile-time interface compliance check.
var _ project.Reporter = (*progressReporter)(nil)

func newProgressReporter(out io.Writer, theme *ui.Theme, progress ui.Progress) *progressReporter {
	return &progressReporter{out: out, theme: theme, progress: progress}
}

func (r *progressReporter) Welcome(msg string) {
	_, _ = fmt.Fprintln(r.out, r.theme.Title.Render(msg))
}

func (r *progressReporter) PhaseStarted(phase project.State, total int) {
	if total == 0 {
		return
	}
	if phase == project.StateInit {
		r.spinner = r.progress.Spinner(phaseTitle(phase))
		return
	}
	r.bar = r.progress.Start(phaseTitle(phase), total)
}

func (r *progressReporter) StepStarted(step project.Step) {
	switch {
	case r.spinner != nil:
		r.spinner.SetTitle(step.Name)
	case r.bar != nil:
		r.bar.SetTitle(step.Name)
	}
}

func (r *progressReporter) StepFinished(_ project.Step, err error) {
	if err != nil {
		r.failed = true
		return
	}
	if r.bar != nil {
		r.bar.Increment(1)
	}
}

func (r *progressReporter) PhaseFinished(phase project.State) {
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
	if r.bar != nil {
		status := " finished"
		if r.failed {
			status = " failed"
		}
		r.bar.SetTitle(phaseTitle(phase) + status)
		r.bar.Done()
		r.bar = nil
	}
}

func phaseTitle(phase project.State) string {
	switch phase {
	case project.StateInit:
		return "Checking the .NET SDK"
	case project.StateConfiguring:
		return "Writing workspace files"
	case project.StateInvoking:
		return "Running dotnet"
	}
	return phase.String()
}
