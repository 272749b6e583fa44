// Package queens encodes the N-Queens puzzle as an exact-cover problem.
// Ranks and files are mandatory constraints; the 2(2N-1) diagonals are
// optional, since a diagonal may hold at most one queen but need not hold
// any.
package queens

import (
	"strings"

	"svw.info/dlx/internal/dlx"
)

// Placement puts a queen on the given rank and file, both 0-based.
type Placement struct {
	Rank int
	File int
}

// Board lists the file of the queen on each rank.
type Board []int

type problem struct{ n int }

// Problem builds the exact-cover encoding for an n by n board.
func Problem(n int) dlx.Problem[Placement] { return problem{n} }

func (p problem) Constraints() int { return 2 * p.n }

func (p problem) OptionalConstraints() int {
	if p.n == 0 {
		return 0
	}
	return 2 * (2*p.n - 1)
}

// Rows emits one candidate per square. Column layout: ranks occupy
// [0,n), files [n,2n), diagonals (rank+file) [2n,2n+2n-1), and
// anti-diagonals (rank-file, shifted by n-1) the rest.
func (p problem) Rows(emit func(Placement, []int) error) error {
	n := p.n
	diag := 2 * n
	anti := diag + 2*n - 1
	for r := 0; r < n; r++ {
		for f := 0; f < n; f++ {
			cols := []int{r, n + f, diag + r + f, anti + r - f + n - 1}
			if err := emit(Placement{Rank: r, File: f}, cols); err != nil {
				return err
			}
		}
	}
	return nil
}

func boardOf(sol dlx.Solution[Placement], n int) Board {
	b := make(Board, n)
	for _, p := range sol.Rows {
		b[p.Rank] = p.File
	}
	return b
}

// Solve returns up to limit solutions for an n by n board; limit <= 0
// returns all of them.
func Solve(n, limit int) ([]Board, error) {
	var out []Board
	err := dlx.Solve[Placement](Problem(n), dlx.StrategyMinSize, func(sol dlx.Solution[Placement], st *dlx.State) {
		out = append(out, boardOf(sol, n))
		if limit > 0 && len(out) >= limit {
			st.Terminate()
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of distinct solutions for an n by n board.
func Count(n int) (int, error) {
	count := 0
	err := dlx.Solve[Placement](Problem(n), dlx.StrategyMinSize, func(dlx.Solution[Placement], *dlx.State) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FormatBoard renders a solution as an ASCII grid, one rank per line.
func FormatBoard(b Board) string {
	var sb strings.Builder
	for _, file := range b {
		for f := 0; f < len(b); f++ {
			if f > 0 {
				sb.WriteByte(' ')
			}
			if f == file {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
