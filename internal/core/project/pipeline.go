package project

import (
	"context"
	"io"
	"log/slog"

	"github.com/carmax/dotnet-gen/internal/template"
	"github.com/carmax/dotnet-gen/internal/toolchain"
)

// Step is one named pipeline action.
type Step struct {
	Phase State
	Name  string
	Run   func(ctx context.Context) error
}

// Pipeline builds and executes the steps of one run against a single
// workspace root.
type Pipeline struct {
	mat      template.Materializer
	runner   toolchain.Runner
	dotnet   toolchain.DotNet
	reporter Reporter
	logger   *slog.Logger

	warnings []string
}

// NewPipeline creates a Pipeline. A nil reporter or logger discards output.
func NewPipeline(mat template.Materializer, runner toolchain.Runner, dotnet toolchain.DotNet, reporter Reporter, logger *slog.Logger) *Pipeline {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		mat:      mat,
		runner:   runner,
		dotnet:   dotnet,
		reporter: reporter,
		logger:   logger,
	}
}

// Root returns the absolute workspace root.
func (p *Pipeline) Root() string {
	return p.mat.Root()
}

// Warnings returns the non-fatal problems recorded by executed steps.
func (p *Pipeline) Warnings() []string {
	return append([]string(nil), p.warnings...)
}

func (p *Pipeline) warn(msg string) {
	p.logger.Warn(msg)
	p.warnings = append(p.warnings, msg)
}

// Execute runs steps in order and stops at the first failure, returning a
// *StepError that names it. completed lists the names of the steps that
// succeeded. Cancellation is observed between steps; effects of completed
// steps are kept.
func (p *Pipeline) Execute(ctx context.Context, phase State, steps []Step) (completed []string, err error) {
	p.reporter.PhaseStarted(phase, len(steps))
	defer p.reporter.PhaseFinished(phase)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return completed, &StepError{Phase: step.Phase, Step: step.Name, Err: err}
		}

		p.logger.Debug("running step", "phase", step.Phase, "step", step.Name)
		p.reporter.StepStarted(step)
		runErr := step.Run(ctx)
		p.reporter.StepFinished(step, runErr)

		if runErr != nil {
			p.logger.Debug("step failed", "phase", step.Phase, "step", step.Name, "error", runErr)
			return completed, &StepError{Phase: step.Phase, Step: step.Name, Err: runErr}
		}
		completed = append(completed, step.Name)
	}
	return completed, nil
}

// invoke validates and runs one toolchain command.
func (p *Pipeline) invoke(ctx context.Context, cmd toolchain.Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	res, err := p.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	p.logger.Debug("toolchain command finished", "cmd", cmd.String(), "output_bytes", len(res.Output))
	return nil
}

// invokeStep wraps a command in a Step.
func (p *Pipeline) invokeStep(name string, cmd toolchain.Command) Step {
	return Step{
		Phase: StateInvoking,
		Name:  name,
		Run: func(ctx context.Context) error {
			return p.invoke(ctx, cmd)
		},
	}
}

// materializeStep wraps a template descriptor in a Step.
func (p *Pipeline) materializeStep(phase State, name string, d template.Descriptor) Step {
	return Step{
		Phase: phase,
		Name:  name,
		Run: func(ctx context.Context) error {
			_, err := p.mat.Materialize(ctx, d)
			return err
		},
	}
}
