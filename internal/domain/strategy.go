package domain

// SelectionStrategy defines the interface every stock-selection strategy
// implements. Select is a pure function of the snapshot (and of any
// construction-time parameters): it never mutates the snapshot, returns at
// most ten symbols in selection order, and an empty result is a valid
// outcome meaning "nothing to buy", not an error.
type SelectionStrategy interface {
	// Name returns a short identifier used in logs and rendered output
	Name() string

	// Select returns the ordered symbols the strategy would buy from the
	// given snapshot
	Select(snap *Snapshot) []string
}
