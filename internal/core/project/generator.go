package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/carmax/dotnet-gen/internal/cli/wizard"
	"github.com/carmax/dotnet-gen/internal/config"
	"github.com/carmax/dotnet-gen/internal/template"
	"github.com/carmax/dotnet-gen/internal/toolchain"
)

// Variant selects which workspace the generator produces.
type Variant int

const (
	// VariantWorkspace creates a solution with an optional project, unit
	// tests and workspace configuration files.
	VariantWorkspace Variant = iota
	// VariantSample creates a single console project with sample files.
	VariantSample
)

// Options configures one generator run.
type Options struct {
	Root          string           // Workspace root; created when Configuring starts.
	Variant       Variant          // Which workspace to generate.
	Collector     wizard.Collector // Source of answers.
	SkipToolCheck bool             // Skip the dotnet SDK version check.
}

// Result summarizes a run. It is returned alongside a failure so callers
// can report how far the run got.
type Result struct {
	Root        string
	State       State
	Answers     wizard.Answers
	Completed   []string // Names of completed steps, in order.
	Warnings    []string // Non-fatal problems.
	ToolVersion string   // Detected SDK version; empty when the check was skipped.
}

// enter moves r to next, refusing transitions the lifecycle does not allow.
func (r *Result) enter(next State) error {
	if !r.State.canTransition(next) {
		return fmt.Errorf("invalid state transition %s -> %s", r.State, next)
	}
	r.State = next
	return nil
}

// Generator runs the provisioning state machine.
type Generator struct {
	cfg      *config.Config
	runner   toolchain.Runner
	fsys     fs.FS
	reporter Reporter
	logger   *slog.Logger
}

// NewGenerator creates a Generator. fsys holds the templates; in production
// it comes from template.EmbeddedTemplates.
func NewGenerator(cfg *config.Config, runner toolchain.Runner, fsys fs.FS, reporter Reporter, logger *slog.Logger) *Generator {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		cfg:      cfg,
		runner:   runner,
		fsys:     fsys,
		reporter: reporter,
		logger:   logger,
	}
}

// Run executes Init, Prompting, Configuring and Invoking in order. Each
// phase completes before the next begins. On failure the Result is in
// StateFailed and the error names the failing step; files written by
// earlier steps are left in place.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{State: StateInit}

	p, err := g.initialize(ctx, opts, res)
	if err != nil {
		return g.fail(res, err)
	}

	// Prompting
	if err := res.enter(StatePrompting); err != nil {
		return g.fail(res, err)
	}
	answers, err := opts.Collector.Collect(ctx, g.questions(opts.Variant, res.Root))
	if err != nil {
		return g.fail(res, fmt.Errorf("collect answers: %w", err))
	}
	res.Answers = answers

	layout := NewLayout(g.cfg)
	if ws, err := InspectWorkspace(res.Root); err == nil {
		for _, c := range ws.Conflicts(answers, layout) {
			p.warn(c)
		}
		res.Warnings = p.Warnings()
	}

	var configure, invoke []Step
	switch opts.Variant {
	case VariantSample:
		invoke = p.SampleSteps(answers, layout)
	default:
		configure = p.ConfigureSteps(answers, layout)
		invoke = p.InvokeSteps(answers, layout)
	}

	// Configuring
	if err := res.enter(StateConfiguring); err != nil {
		return g.fail(res, err)
	}
	if err := ensureRoot(res.Root); err != nil {
		return g.fail(res, err)
	}
	if err := g.execute(ctx, p, res, StateConfiguring, configure); err != nil {
		return g.fail(res, err)
	}

	// Invoking
	if err := res.enter(StateInvoking); err != nil {
		return g.fail(res, err)
	}
	if err := g.execute(ctx, p, res, StateInvoking, invoke); err != nil {
		return g.fail(res, err)
	}

	if err := res.enter(StateDone); err != nil {
		return g.fail(res, err)
	}
	g.logger.Info("workspace generated", "root", res.Root, "steps", len(res.Completed), "warnings", len(res.Warnings))
	return res, nil
}

// initialize validates options, greets the user and checks the toolchain.
// It writes nothing to disk; a missing root is checked from its closest
// existing ancestor.
func (g *Generator) initialize(ctx context.Context, opts Options, res *Result) (*Pipeline, error) {
	if opts.Collector == nil {
		return nil, ErrNoCollector
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, opts.Root, err)
	}
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	res.Root = root

	mat, err := template.NewMaterializer(root, g.fsys, g.logger)
	if err != nil {
		return nil, err
	}
	dotnet := toolchain.NewDotNet(g.cfg.Toolchain.Binary)
	p := NewPipeline(mat, g.runner, dotnet, g.reporter, g.logger)

	g.reporter.Welcome(welcomeMessage(opts.Variant, g.cfg.Namespace))
	g.logger.Debug("generator started", "root", root, "variant", opts.Variant)

	if opts.SkipToolCheck {
		return p, nil
	}

	check := Step{
		Phase: StateInit,
		Name:  "check " + dotnet.Binary + " SDK",
		Run: func(ctx context.Context) error {
			v, err := dotnet.CheckInstalled(ctx, g.runner, nearestDir(root), g.cfg.Toolchain.MinVersion)
			if err != nil {
				return err
			}
			res.ToolVersion = v.String()
			return nil
		},
	}
	if _, err := p.Execute(ctx, StateInit, []Step{check}); err != nil {
		return nil, err
	}
	return p, nil
}

// execute runs one phase and records its progress in res.
func (g *Generator) execute(ctx context.Context, p *Pipeline, res *Result, phase State, steps []Step) error {
	completed, err := p.Execute(ctx, phase, steps)
	res.Completed = append(res.Completed, completed...)
	res.Warnings = p.Warnings()
	return err
}

func (g *Generator) fail(res *Result, err error) (*Result, error) {
	res.State = StateFailed
	g.logger.Debug("generator failed", "error", err)
	return res, err
}

// questions returns the questions for variant, with configured defaults.
func (g *Generator) questions(variant Variant, root string) []wizard.Question {
	if variant == VariantSample {
		return wizard.SampleQuestions()
	}
	questions := wizard.DefaultQuestions(root, g.cfg.Namespace)
	if src := g.cfg.NuGet.DefaultSource; src != "" {
		questions = wizard.WithDefault(questions, wizard.KeyNugetSource, src)
	}
	return questions
}

func welcomeMessage(variant Variant, namespace string) string {
	if variant == VariantSample {
		return "Creating a console sample project."
	}
	return fmt.Sprintf("Welcome to the %s .NET workspace generator.", namespace)
}
