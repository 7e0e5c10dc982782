package history

// RunStore defines the interface for persisting and listing analysis runs.
type RunStore interface {
	RecordRun(run Run) error
	ListRuns() ([]Run, error)
	Clear() error
}
