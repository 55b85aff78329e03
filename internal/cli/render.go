package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/carmax/dotnet-gen/internal/core/project"
	"github.com/carmax/dotnet-gen/internal/ui"
)

func symSuccess(t *ui.Theme) string { return t.Success.Render("✓") }
func symError(t *ui.Theme) string   { return t.Error.Render("✗") }
func symWarning(t *ui.Theme) string { return t.Warning.Render("!") }

// renderSuccessCard renders a success message inside a bordered card.
func renderSuccessCard(t *ui.Theme, title string, details ...string) string {
	return renderCard(t, symSuccess(t)+" "+title, details)
}

// renderErrorCard renders a failure message inside a bordered card.
func renderErrorCard(t *ui.Theme, title string, details ...string) string {
	return renderCard(t, symError(t)+" "+title, details)
}

func renderCard(t *ui.Theme, titleLine string, details []string) string {
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.Card.Render(body.String())
}

// renderWarnings lists non-fatal problems, one per line.
func renderWarnings(t *ui.Theme, warnings []string) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = symWarning(t) + " " + w
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// summaryDetails describes a finished run for the success card.
func summaryDetails(res *project.Result) []string {
	details := []string{
		"Workspace: " + res.Root,
		fmt.Sprintf("Steps:     %d completed", len(res.Completed)),
	}
	if res.ToolVersion != "" {
		details = append(details, "SDK:       "+res.ToolVersion)
	}
	return details
}

// failureDetails describes how far a failed run got.
func failureDetails(res *project.Result, err error) []string {
	details := []string{err.Error()}
	if res == nil {
		return details
	}
	if len(res.Completed) > 0 {
		details = append(details, "", fmt.Sprintf("Completed before the failure (%d):", len(res.Completed)))
		for _, s := range res.Completed {
			details = append(details, "  - "+s)
		}
	}
	if res.Root != "" {
		details = append(details, "", "Files written so far were left in "+res.Root)
	}
	return details
}

// nextStepsMarkdown returns the follow-up instructions for a workspace.
func nextStepsMarkdown(res *project.Result, variant project.Variant) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")

	dir := res.Root
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, res.Root); err == nil && !strings.HasPrefix(rel, "..") {
			dir = rel
		}
	}
	if dir != "." {
		fmt.Fprintf(&b, "1. `cd %s`\n", filepath.ToSlash(dir))
	} else {
		b.WriteString("1. Stay in the current directory\n")
	}

	if variant == project.VariantSample {
		b.WriteString("2. `dotnet run --project SampleProject`\n")
		return b.String()
	}

	b.WriteString("2. `dotnet build`\n")
	if res.Answers.WantsUnitTests() {
		b.WriteString("3. `dotnet test`\n")
	}
	return b.String()
}

// renderMarkdown renders md for the terminal. Without color the markdown
// is rendered with the plain-text style; rendering errors fall back to the
// source text.
func renderMarkdown(t *ui.Theme, md string) string {
	style := "dark"
	if t.NoColor {
		style = "notty"
	} else if !lipgloss.HasDarkBackground() {
		style = "light"
	}

	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return out
}
