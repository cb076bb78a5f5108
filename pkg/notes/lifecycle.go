package notes

// LoadState is the explicit three-state load lifecycle guarding persistence:
// an empty collection right after startup must never be mistaken for "no
// data" and overwritten by the fallback seed.
type LoadState int

const (
	// LoadUninitialized means Load has not completed; saves are suppressed.
	LoadUninitialized LoadState = iota
	// Loaded means the saved collection (or seed fallback) is in memory.
	Loaded
	// LoadFailed means the read errored; the seed is in memory and saves
	// proceed, since in-memory state is now the source of truth.
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load-failed"
	default:
		return "uninitialized"
	}
}
