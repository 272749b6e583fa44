// Package dlx implements Knuth's Dancing Links (Algorithm X) for the exact
// cover problem: given a sparse 0/1 matrix, enumerate every subset of rows
// that covers each mandatory column exactly once and each optional column at
// most once.
//
// The matrix lives in a contiguous arena of value records linked by integer
// indices, so the whole structure can be snapshotted by copying one slice.
// Solutions are delivered through a callback while the search runs; the
// callback may stop the search cooperatively via State.Terminate.
package dlx

// Strategy selects how the search picks the next column to branch on.
type Strategy int

const (
	// StrategyFirst branches on the first mandatory column in the ring.
	StrategyFirst Strategy = iota
	// StrategyMinSize branches on the mandatory column with the fewest
	// live cells, ties broken by ring position.
	StrategyMinSize
)

func (s Strategy) String() string {
	switch s {
	case StrategyFirst:
		return "first"
	case StrategyMinSize:
		return "minsize"
	default:
		return "unknown"
	}
}

// Problem describes one exact-cover instance. R is the caller's opaque row
// identifier; it is copied into solutions as-is.
//
// Rows must call emit once per matrix row with the column indices the row
// covers, each in [0, Constraints()+OptionalConstraints()). Rows with an
// empty column list are skipped. A row listing the same column twice has
// undefined behavior. Rows stops and returns the first error emit returns.
type Problem[R any] interface {
	// Constraints is the number of mandatory columns M.
	Constraints() int
	// OptionalConstraints is the number of optional columns K. Optional
	// columns may be covered at most once but need not be covered.
	OptionalConstraints() int
	// Rows enumerates the matrix rows.
	Rows(emit func(id R, columns []int) error) error
}

// Solution is one exact cover: the row identifiers of the chosen rows, in
// the order the search selected them.
type Solution[R any] struct {
	Rows []R
}

// State carries the cooperative termination flag shared between the search
// and the solution callback. A fresh State is created for every solve.
type State struct {
	terminated bool
}

// Terminate asks the search to unwind without delivering further solutions.
func (s *State) Terminate() { s.terminated = true }

// Terminated reports whether Terminate has been called.
func (s *State) Terminated() bool { return s.terminated }

// Callback receives each solution as it is found. It runs inline on the
// solving goroutine and must return before the search continues. The
// Solution's row slice is owned by the callee and safe to retain.
type Callback[R any] func(Solution[R], *State)
