package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/carmax/dotnet-gen/internal/cli/wizard"
	"github.com/carmax/dotnet-gen/internal/core/project"
	"github.com/carmax/dotnet-gen/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new [directory]",
	Short: "Create a .NET workspace",
	Long: heredoc.Doc(`
		Create a .NET workspace in directory (default: the current directory).

		The generator asks for a project name, solution name, project type,
		sample files, a unit test project and optional .editorconfig and
		nuget.config files. It then writes the configuration files and runs
		the dotnet CLI to create the solution and projects.

		Examples:
		  dotnet-gen new                     Generate in the current directory
		  dotnet-gen new orders-service      Create ./orders-service and generate inside it
		  dotnet-gen new --answers ci.yaml   Use scripted answers instead of prompts`),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, project.VariantWorkspace)
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample [directory]",
	Short: "Create a console sample project",
	Long: heredoc.Doc(`
		Create a console project named SampleProject in directory (default:
		the current directory) and add the selected sample files: README.md,
		MyClass.cs, IMyInterface.cs, Dockerfile and bitbucket-pipelines.yml.`),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, project.VariantSample)
	},
}

func init() {
	for _, c := range []*cobra.Command{newCmd, sampleCmd} {
		c.Flags().String("answers", "", "YAML file with scripted answers; skips the prompts")
		c.Flags().Bool("skip-tool-check", false, "Do not check the installed dotnet SDK version")
		rootCmd.AddCommand(c)
	}
}

// runGenerate resolves the workspace, loads configuration and runs the
// generator, then prints a summary card.
func runGenerate(cmd *cobra.Command, args []string, variant project.Variant) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	collector, err := wizard.SelectCollector(getStringFlag(cmd, "answers"), d.Headless.IsHeadless())
	if err != nil {
		return err
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	root, err := project.ResolveRoot(dir)
	if err != nil {
		return err
	}

	cfg, err := d.Config.Load(root, getStringFlag(cmd, "config"))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	reporter := newProgressReporter(out, d.Theme, ui.NewProgressWriter(d.Theme, d.Headless, out))
	gen := project.NewGenerator(cfg, d.Runner, d.Templates, reporter, d.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := gen.Run(ctx, project.Options{
		Root:          root,
		Variant:       variant,
		Collector:     collector,
		SkipToolCheck: getBoolFlag(cmd, "skip-tool-check"),
	})
	if res != nil && len(res.Warnings) > 0 {
		_, _ = fmt.Fprintln(out, renderWarnings(d.Theme, res.Warnings))
	}
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, d.Theme.Muted.Render("Cancelled. Nothing was written."))
			return err
		}
		_, _ = fmt.Fprintln(out, renderErrorCard(d.Theme, "Generation failed", failureDetails(res, err)...))
		return err
	}

	_, _ = fmt.Fprintln(out, renderSuccessCard(d.Theme, "Workspace ready", summaryDetails(res)...))
	_, _ = fmt.Fprint(out, renderMarkdown(d.Theme, nextStepsMarkdown(res, variant)))
	return nil
}
