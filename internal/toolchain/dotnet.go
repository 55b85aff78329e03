package toolchain

// DefaultBinary is the name of the .NET CLI.
const DefaultBinary = "dotnet"

// DotNet builds commands for the .NET CLI. Builders are pure; nothing runs
// until a Command is passed to a Runner.
type DotNet struct {
	Binary string
}

// NewDotNet returns a builder for binary, or for DefaultBinary when empty.
func NewDotNet(binary string) DotNet {
	if binary == "" {
		binary = DefaultBinary
	}
	return DotNet{Binary: binary}
}

func (d DotNet) command(dir string, args ...string) Command {
	return Command{Name: d.Binary, Args: args, Dir: dir}
}

// Version reports the SDK version: dotnet --version.
func (d DotNet) Version(dir string) Command {
	return d.command(dir, "--version")
}

// NewConsole creates a console application. An empty output keeps the
// CLI default of a directory named after the project.
func (d DotNet) NewConsole(dir, name, output string) Command {
	args := []string{"new", "console", "-n", name}
	if output != "" {
		args = append(args, "-o", output)
	}
	return d.command(dir, args...)
}

// NewSolution creates <name>.sln in dir.
func (d DotNet) NewSolution(dir, name string) Command {
	return d.command(dir, "new", "sln", "-n", name)
}

// NewProject creates a project from a template such as webapi or mvc.
func (d DotNet) NewProject(dir, template, name, output string) Command {
	return d.command(dir, "new", template, "-n", name, "-o", output)
}

// SolutionAdd adds the project at path to the solution file sln.
func (d DotNet) SolutionAdd(dir, sln, path string) Command {
	return d.command(dir, "sln", sln, "add", path)
}

// NewTestProject creates a test project using framework as the template
// (xunit, nunit, mstest).
func (d DotNet) NewTestProject(dir, framework, name, output string) Command {
	return d.command(dir, "new", framework, "-n", name, "-o", output)
}

// AddReference adds a project reference from one project to another.
func (d DotNet) AddReference(dir, from, to string) Command {
	return d.command(dir, "add", from, "reference", to)
}

// AddPackage adds a NuGet package dependency to project.
func (d DotNet) AddPackage(dir, project, pkg string) Command {
	return d.command(dir, "add", project, "package", pkg)
}
