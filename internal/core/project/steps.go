package project

import (
	"context"
	"fmt"
	"path"

	"github.com/carmax/dotnet-gen/internal/cli/wizard"
	"github.com/carmax/dotnet-gen/internal/defs"
	"github.com/carmax/dotnet-gen/internal/template"
	"github.com/carmax/dotnet-gen/pkg/models"
)

// ConfigureSteps returns the file-writing steps, in order: editorconfig
// (if requested), nuget.config (if requested), .gitignore, readme.md.
func (p *Pipeline) ConfigureSteps(a wizard.Answers, _ Layout) []Step {
	var steps []Step

	if a.WantsEditorConfig() {
		steps = append(steps, p.materializeStep(StateConfiguring, "write "+defs.EditorConfig, template.Descriptor{
			Source: template.EditorConfigTemplate,
			Dest:   defs.EditorConfig,
		}))
	}

	if source, ok := a.NugetSource(); ok {
		steps = append(steps, p.nugetConfigStep(source))
	}

	steps = append(steps,
		p.materializeStep(StateConfiguring, "write "+defs.GitIgnore, template.Descriptor{
			Source: template.GitIgnoreTemplate,
			Dest:   defs.GitIgnore,
		}),
		p.materializeStep(StateConfiguring, "write "+defs.ReadmeMD, template.Descriptor{
			Source: template.ReadmeTemplate,
			Dest:   defs.ReadmeMD,
			Vars:   map[string]string{"Title": a.ProjectName()},
		}),
	)

	return steps
}

// nugetConfigStep writes nuget.config for a private feed. A URL that does
// not parse is written as given, without a label, and recorded as a warning.
func (p *Pipeline) nugetConfigStep(source string) Step {
	return Step{
		Phase: StateConfiguring,
		Name:  "write " + defs.NuGetConfig,
		Run: func(ctx context.Context) error {
			label := template.FeedLabel(source)
			if label == "" {
				p.warn(fmt.Sprintf("NuGet source %q is not an absolute URL; package source written without a label", source))
			}
			_, err := p.mat.Materialize(ctx, template.Descriptor{
				Source: template.NuGetConfigTemplate,
				Dest:   defs.NuGetConfig,
				Vars: map[string]string{
					"FeedLabel": label,
					"FeedURL":   template.CanonicalURL(source),
				},
			})
			return err
		},
	}
}

// InvokeSteps returns the toolchain steps, in order: solution, then the
// main project block when a project type was chosen, then the unit test
// block when tests were requested. The test block needs the main project
// path, so it only runs alongside the project block.
func (p *Pipeline) InvokeSteps(a wizard.Answers, l Layout) []Step {
	root := p.Root()
	name := a.ProjectName()
	sln := l.SolutionFile(a.SolutionName())

	steps := []Step{
		p.invokeStep("create solution "+sln, p.dotnet.NewSolution(root, a.SolutionName())),
	}

	pt := a.ProjectType()
	if !pt.HasProject() {
		return steps
	}

	projectDir := l.ProjectDir(name)
	steps = append(steps,
		p.invokeStep(fmt.Sprintf("create %s project %s", pt.Template(), projectDir), p.dotnet.NewProject(root, pt.Template(), name, projectDir)),
		p.invokeStep("add "+name+" to solution", p.dotnet.SolutionAdd(root, sln, l.ProjectFile(name))),
		p.removeStep(path.Join(projectDir, l.DevSettingsFile)),
		p.settingsMergeStep(pt, path.Join(projectDir, l.SettingsFile), l.EnvironmentKey, l.EnvironmentValue),
	)

	steps = append(steps, p.sampleFileSteps(a.SampleFiles(), sampleTarget{
		projectName: name,
		projectDir:  projectDir,
		projectFile: l.ProjectFile(name),
		buildTarget: sln,
	})...)

	if a.WantsUnitTests() {
		testName := l.TestProjectName(name)
		testDir := l.TestProjectDir(name)
		steps = append(steps,
			p.invokeStep(fmt.Sprintf("create %s project %s", l.TestFramework, testDir), p.dotnet.NewTestProject(root, l.TestFramework, testName, testDir)),
			p.invokeStep("reference "+name+" from "+testName, p.dotnet.AddReference(root, l.TestProjectFile(name), l.ProjectFile(name))),
			p.invokeStep("add package "+l.MockingPackage, p.dotnet.AddPackage(root, l.TestProjectFile(name), l.MockingPackage)),
			p.invokeStep("add "+testName+" to solution", p.dotnet.SolutionAdd(root, sln, l.TestProjectFile(name))),
		)
	}

	return steps
}

// SampleSteps returns the steps of the console sample workspace: a console
// project named after the layout's sample project, then the selected sample
// files.
func (p *Pipeline) SampleSteps(a wizard.Answers, l Layout) []Step {
	name := l.SampleProject
	steps := []Step{
		p.invokeStep("create console project "+name, p.dotnet.NewConsole(p.Root(), name, "")),
	}
	return append(steps, p.sampleFileSteps(a.SampleFiles(), sampleTarget{
		projectName: name,
		projectDir:  name,
		projectFile: l.SampleProjectFile(),
		buildTarget: l.SampleProjectFile(),
	})...)
}

// removeStep deletes a file generated by a dotnet template.
func (p *Pipeline) removeStep(rel string) Step {
	return Step{
		Phase: StateInvoking,
		Name:  "remove " + rel,
		Run: func(context.Context) error {
			removed, err := p.mat.RemoveIfExists(rel)
			if err != nil {
				return err
			}
			p.logger.Debug("development settings", "path", rel, "removed", removed)
			return nil
		},
	}
}

// settingsMergeStep sets key to value in the project's settings file.
// A missing file is skipped; it is only worth a warning for project types
// whose template normally creates one.
func (p *Pipeline) settingsMergeStep(pt models.ProjectType, rel, key, value string) Step {
	return Step{
		Phase: StateInvoking,
		Name:  fmt.Sprintf("set %s in %s", key, rel),
		Run: func(context.Context) error {
			outcome, err := p.mat.MergeJSON(rel, key, value)
			if err != nil {
				return err
			}
			if outcome == template.MergeSkipped && pt.HasAppSettings() {
				p.warn(fmt.Sprintf("%s not found; %s was not set", rel, key))
			}
			p.logger.Debug("settings merge", "path", rel, "outcome", outcome)
			return nil
		},
	}
}

// sampleTarget names the project that sample files are written for.
type sampleTarget struct {
	projectName string
	projectDir  string
	projectFile string
	buildTarget string
}

// sampleFileSteps writes the selected sample files. Project-scoped files go
// into the project directory; the others go to the workspace root.
func (p *Pipeline) sampleFileSteps(files []models.SampleFile, t sampleTarget) []Step {
	steps := make([]Step, 0, len(files))
	for _, f := range files {
		d, ok := sampleDescriptor(f, t)
		if !ok {
			continue
		}
		steps = append(steps, p.materializeStep(StateInvoking, "write "+d.Dest, d))
	}
	return steps
}

// sampleDescriptor maps a sample file to its template.
func sampleDescriptor(f models.SampleFile, t sampleTarget) (template.Descriptor, bool) {
	dir := ""
	if f.ProjectScoped() {
		dir = t.projectDir
	}

	switch f {
	case models.SampleReadme:
		return template.Descriptor{
			Source: template.ProjectReadmeTemplate,
			Dest:   path.Join(dir, defs.ProjectReadmeMD),
			Vars:   map[string]string{"Title": t.projectName},
		}, true
	case models.SampleClass:
		return template.Descriptor{
			Source: template.ClassTemplate,
			Dest:   path.Join(dir, defs.MyClassCS),
			Vars:   map[string]string{"Namespace": t.projectName},
		}, true
	case models.SampleInterface:
		return template.Descriptor{
			Source: template.InterfaceTemplate,
			Dest:   path.Join(dir, defs.MyInterfaceCS),
			Vars:   map[string]string{"Namespace": t.projectName},
		}, true
	case models.SampleDockerfile:
		return template.Descriptor{
			Source: template.DockerfileTemplate,
			Dest:   path.Join(dir, defs.Dockerfile),
			Vars:   map[string]string{"ProjectName": t.projectName, "ProjectPath": t.projectFile},
		}, true
	case models.SamplePipelines:
		return template.Descriptor{
			Source: template.PipelinesTemplate,
			Dest:   path.Join(dir, defs.PipelinesYAML),
			Vars:   map[string]string{"BuildTarget": t.buildTarget},
		}, true
	}
	return template.Descriptor{}, false
}
