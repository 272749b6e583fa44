package dlx

// Solve enumerates the exact covers of p, invoking fn once per solution in
// discovery order. It returns an error only on build failure;
// callback-initiated termination is a normal return. The search is single-threaded and fn runs
// inline; independent solves on independent problems may run concurrently.
func Solve[R any](p Problem[R], strategy Strategy, fn Callback[R]) error {
	return solve(p, strategy, fn, false)
}

// SolveIterative is Solve on the explicit-stack driver. Observable behavior
// is identical; it exists for stacks too shallow for deep recursion.
func SolveIterative[R any](p Problem[R], strategy Strategy, fn Callback[R]) error {
	return solve(p, strategy, fn, true)
}

func solve[R any](p Problem[R], strategy Strategy, fn Callback[R], iterative bool) error {
	mx, err := build(p)
	if err != nil {
		return err
	}
	if mx == nil {
		// no mandatory constraints, no solutions
		return nil
	}
	s := &search[R]{mx: mx, strategy: strategy, state: &State{}, fn: fn}
	if iterative {
		s.runIterative()
	} else {
		s.run()
	}
	return nil
}

// SolveFirst returns the first solution found, or nil if none exists.
func SolveFirst[R any](p Problem[R], strategy Strategy) (*Solution[R], error) {
	var out *Solution[R]
	err := Solve(p, strategy, func(sol Solution[R], st *State) {
		out = &sol
		st.Terminate()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SolveMany collects up to limit solutions in discovery order. A limit of
// zero or less yields no solutions (and no search).
func SolveMany[R any](p Problem[R], strategy Strategy, limit int) ([]Solution[R], error) {
	if limit <= 0 {
		return nil, nil
	}
	var out []Solution[R]
	err := Solve(p, strategy, func(sol Solution[R], st *State) {
		out = append(out, sol)
		if len(out) >= limit {
			st.Terminate()
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SolveAll collects every solution in discovery order.
func SolveAll[R any](p Problem[R], strategy Strategy) ([]Solution[R], error) {
	var out []Solution[R]
	err := Solve(p, strategy, func(sol Solution[R], st *State) {
		out = append(out, sol)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
