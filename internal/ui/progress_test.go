package ui

import (
	"bytes"
	"strings"
	"testing"
)

func testTheme() *Theme {
	return NewTheme(ThemeConfig{Mode: "dark", NoColor: true})
}

func headlessProgress(theme *Theme, buf *bytes.Buffer) Progress {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return NewProgressWriter(theme, hm, buf)
}

func TestLineSpinnerWritesTitles(t *testing.T) {
	var buf bytes.Buffer
	p := headlessProgress(NewTheme(ThemeConfig{Mode: "dark"}), &buf)

	s := p.Spinner("Checking the .NET SDK")
	s.SetTitle("check dotnet SDK")
	s.Stop()
	s.SetTitle("ignored after stop")
	s.Stop()

	want := "Checking the .NET SDK\ncheck dotnet SDK\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLineProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := headlessProgress(testTheme(), &buf)

	bar := p.Start("Writing workspace files", 3)
	bar.SetTitle("write .editorconfig")
	bar.Increment(1)
	bar.SetTitle("write .gitignore")
	bar.Increment(5)
	bar.SetTitle("Writing workspace files finished")
	bar.Done()
	bar.Done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"[1/3] write .editorconfig", "[3/3] write .gitignore", "[3/3] Writing workspace files finished"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNoColorThemeUsesLineOutput(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	p := NewProgressWriter(testTheme(), hm, &buf)
	s := p.Spinner("Working")
	s.Stop()

	if _, ok := s.(*lineTask); !ok {
		t.Errorf("spinner = %T, want *lineTask for NoColor theme", s)
	}
	if buf.String() != "Working\n" {
		t.Errorf("output = %q", buf.String())
	}
}
