// Package ui provides terminal feedback for dotnet-gen: TTY detection,
// animated spinners and progress bars, and plain-line fallbacks for
// headless runs such as CI.
package ui

// Progress creates progress indicators.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar tracks completion of a known number of steps.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner indicates an operation of unknown length.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
