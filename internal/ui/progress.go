package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// barWidth is the width of the animated progress bar in cells.
const barWidth = 32

// progressImpl implements Progress. Each indicator is a task: a
// determinate task (total > 0) renders as a bar, an indeterminate one as
// a spinner.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress that writes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return NewProgressWriter(theme, hm, os.Stdout)
}

// NewProgressWriter creates a Progress that writes to w. Animated output
// is used only when a terminal is attached and color is enabled; otherwise
// every update is a plain line.
func NewProgressWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

func (p *progressImpl) animated() bool {
	return !p.headless.IsHeadless() && !p.theme.NoColor
}

// Start creates a determinate progress bar with the given total.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if !p.animated() {
		return newLineTask(title, total, p.writer)
	}
	return startTask(newTaskModel(p.theme, title, total), p.writer)
}

// Spinner creates an indeterminate spinner.
func (p *progressImpl) Spinner(title string) Spinner {
	if !p.animated() {
		t := newLineTask(title, 0, p.writer)
		t.println(title)
		return t
	}
	return startTask(newTaskModel(p.theme, title, 0), p.writer)
}

// Messages accepted by taskModel.
type (
	taskTitleMsg   string
	taskAdvanceMsg int
	taskFinishMsg  struct{}
)

// taskModel is the bubbletea model behind both indicators.
type taskModel struct {
	spinner spinner.Model
	bar     progress.Model
	check   lipgloss.Style

	title    string
	current  int
	total    int
	finished bool
}

func newTaskModel(theme *Theme, title string, total int) taskModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))

	return taskModel{
		spinner: s,
		bar:     progress.New(progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary), progress.WithWidth(barWidth), progress.WithoutPercentage()),
		check:   theme.Success,
		title:   title,
		total:   total,
	}
}

func (m taskModel) determinate() bool {
	return m.total > 0
}

func (m taskModel) Init() tea.Cmd {
	if m.determinate() {
		return nil
	}
	return m.spinner.Tick
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskTitleMsg:
		m.title = string(msg)
	case taskAdvanceMsg:
		m.current = min(m.current+int(msg), m.total)
	case taskFinishMsg:
		m.current = m.total
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current frame. A finished bar leaves a summary line
// behind; a finished spinner leaves nothing.
func (m taskModel) View() string {
	if m.finished {
		if !m.determinate() {
			return ""
		}
		return m.check.Render("✓") + " " + m.title + "\n"
	}
	if !m.determinate() {
		return m.spinner.View() + " " + m.title + "\n"
	}
	pct := float64(m.current) / float64(m.total)
	return fmt.Sprintf("%s %d/%d %s\n", m.bar.ViewAs(pct), m.current, m.total, m.title)
}

// interactiveTask drives a taskModel in its own tea.Program. It reads no
// input, so an interrupt reaches the process signal handler.
type interactiveTask struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func startTask(m taskModel, w io.Writer) *interactiveTask {
	t := newInteractiveTask(tea.NewProgram(m, tea.WithInput(nil), tea.WithOutput(w)))
	go t.run()
	return t
}

func newInteractiveTask(p *tea.Program) *interactiveTask {
	return &interactiveTask{program: p, done: make(chan struct{})}
}

func (t *interactiveTask) run() {
	defer close(t.done)
	_, _ = t.program.Run()
}

// SetTitle updates the title shown next to the indicator.
func (t *interactiveTask) SetTitle(title string) {
	t.program.Send(taskTitleMsg(title))
}

// Increment advances a bar by n.
func (t *interactiveTask) Increment(n int) {
	t.program.Send(taskAdvanceMsg(n))
}

// Done completes the task and waits for the final frame.
func (t *interactiveTask) Done() {
	t.once.Do(func() {
		t.program.Send(taskFinishMsg{})
		<-t.done
	})
}

// Stop is Done for spinners.
func (t *interactiveTask) Stop() {
	t.Done()
}

// lineTask is the plain-line fallback. Bars print "[n/total] title" on
// every increment; spinners print each new title.
type lineTask struct {
	w       io.Writer
	title   string
	current int
	total   int
	stopped bool
}

func newLineTask(title string, total int, w io.Writer) *lineTask {
	return &lineTask{w: w, title: title, total: total}
}

func (t *lineTask) println(s string) {
	_, _ = fmt.Fprintln(t.w, s)
}

func (t *lineTask) counted() {
	t.println(fmt.Sprintf("[%d/%d] %s", t.current, t.total, t.title))
}

// SetTitle updates the title; spinners print it immediately.
func (t *lineTask) SetTitle(title string) {
	t.title = title
	if t.total == 0 && !t.stopped {
		t.println(title)
	}
}

// Increment advances the count by n and prints the current step.
func (t *lineTask) Increment(n int) {
	t.current = min(t.current+n, t.total)
	t.counted()
}

// Done completes the bar.
func (t *lineTask) Done() {
	if t.stopped {
		return
	}
	t.stopped = true
	if t.total > 0 {
		t.current = t.total
		t.counted()
	}
}

// Stop halts the spinner. Later titles are not printed.
func (t *lineTask) Stop() {
	t.stopped = true
}
