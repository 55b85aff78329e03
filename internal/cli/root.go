package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/carmax/dotnet-gen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "dotnet-gen",
	Short: "Scaffold .NET solutions with the team's conventions",
	Long: heredoc.Doc(`
		dotnet-gen creates a .NET workspace: a solution, an optional main
		project with a unit test project, and the configuration files every
		repository needs (.editorconfig, nuget.config, .gitignore, readme.md).

		It asks a short series of questions, then drives the dotnet CLI.
		Answers can be scripted with --answers for CI.`),
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command. Cancelling
// ctx stops the generator between steps.
func Execute(ctx context.Context) error {
	InitDependencies()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("dotnet-gen %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().Bool("verbose", false, "Log generator activity to stderr")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: <directory>/.dotnet-gen.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and animations")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return nil
		}
		if getBoolFlag(cmd, "verbose") {
			deps.SetLogger(newLogger(cmd.ErrOrStderr(), true))
		}
		if getBoolFlag(cmd, "no-color") {
			deps.Theme = newTheme(true)
		}
		return nil
	}
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
