package project

// Reporter receives generator progress events. Implementations must not
// block; they are called synchronously from the pipeline.
type Reporter interface {
	// Welcome is emitted once in the Init state.
	Welcome(message string)
	// PhaseStarted is emitted before the steps of a phase run.
	PhaseStarted(phase State, total int)
	// StepStarted is emitted before a step runs.
	StepStarted(step Step)
	// StepFinished is emitted after a step runs; err is nil on success.
	StepFinished(step Step, err error)
	// PhaseFinished is emitted after the last step of a phase, or after
	// the step that failed.
	PhaseFinished(phase State)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Welcome(string) {}
func (NopReporter) PhaseStarted(State, int) {}
func (NopReporter) StepStarted(Step) {}
func (NopReporter) StepFinished(Step, error) {}
func (NopReporter) PhaseFinished(State) {}

// Compile-time interface compliance check.
var _ Reporter = NopReporter{}
