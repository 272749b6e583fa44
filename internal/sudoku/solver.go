package sudoku

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"svw.info/dlx/internal/dlx"
	"svw.info/dlx/internal/domain"
	"svw.info/dlx/internal/ports"
)

// ErrNoSolution reports a board with no valid completion.
var ErrNoSolution = errors.New("sudoku: no solution")

// Solver implements ports.Solver on the exact-cover engine.
type Solver struct {
	Strategy dlx.Strategy
}

func NewSolver() *Solver { return &Solver{Strategy: dlx.StrategyMinSize} }

// Solve returns the first completion of b. Cancellation is cooperative: the
// context is checked inside the solution callback, so a cancel takes effect
// at the next solution boundary.
func (s *Solver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	p := newProblem(b)
	var sol *dlx.Solution[Candidate]
	err := dlx.Solve[Candidate](p, s.Strategy, func(found dlx.Solution[Candidate], st *dlx.State) {
		if ctx.Err() != nil {
			st.Terminate()
			return
		}
		sol = &found
		st.Terminate()
	})
	stats := ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	if ctx.Err() != nil {
		return nil, stats, ctx.Err()
	}
	if sol == nil {
		return nil, stats, ErrNoSolution
	}
	out := &domain.Board{Fixed: b.Fixed}
	for _, cand := range sol.Rows {
		r, c := cand.Cell()
		out.Values[r][c] = cand.Value()
	}
	return out, stats, nil
}

// Enumerate collects completions of b in discovery order, up to limit;
// limit <= 0 collects all of them. No solutions is not an error here, the
// caller sees an empty slice.
func (s *Solver) Enumerate(ctx context.Context, b *domain.Board, limit int) ([]*domain.Board, ports.Stats, error) {
	start := time.Now()
	p := newProblem(b)
	var out []*domain.Board
	err := dlx.Solve[Candidate](p, s.Strategy, func(found dlx.Solution[Candidate], st *dlx.State) {
		if ctx.Err() != nil {
			st.Terminate()
			return
		}
		sol := &domain.Board{Fixed: b.Fixed}
		for _, cand := range found.Rows {
			r, c := cand.Cell()
			sol.Values[r][c] = cand.Value()
		}
		out = append(out, sol)
		if limit > 0 && len(out) >= limit {
			st.Terminate()
		}
	})
	stats := ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	return out, stats, ctx.Err()
}

// Unique counts completions up to 2 and reports whether exactly one exists.
func (s *Solver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	p := newProblem(b)
	count := 0
	err := dlx.Solve[Candidate](p, s.Strategy, func(_ dlx.Solution[Candidate], st *dlx.State) {
		if ctx.Err() != nil {
			st.Terminate()
			return
		}
		count++
		if count >= 2 {
			st.Terminate()
		}
	})
	stats := ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}
	if err != nil {
		return false, stats, err
	}
	if ctx.Err() != nil {
		return false, stats, ctx.Err()
	}
	return count == 1, stats, nil
}

// Count enumerates completions up to limit; limit <= 0 counts all.
func (s *Solver) Count(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	p := newProblem(b)
	count := 0
	err := dlx.Solve[Candidate](p, s.Strategy, func(_ dlx.Solution[Candidate], st *dlx.State) {
		if ctx.Err() != nil {
			st.Terminate()
			return
		}
		count++
		if limit > 0 && count >= limit {
			st.Terminate()
		}
	})
	stats := ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}
	if err != nil {
		return 0, stats, err
	}
	return count, stats, ctx.Err()
}
