package generator

import (
	"context"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"svw.info/dlx/internal/domain"
	"svw.info/dlx/internal/ports"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// UniqueGenerator creates puzzles whose solution is unique. A full grid is
// produced by seeding the three diagonal boxes with random permutations and
// letting the solver complete them; clues are then removed one by one as long
// as the puzzle keeps a single completion.
type UniqueGenerator struct {
	Solver ports.Solver
	// CarveTimeout is the time, counted from the start of Generate, after
	// which no further clues are removed; zero means 900ms.
	CarveTimeout time.Duration
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Generate derives a puzzle from seed at the given difficulty. The same seed
// and difficulty produce the same puzzle as long as clue removal reaches the
// target before CarveTimeout; a run cut off by the deadline keeps more clues.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, st, err := g.fullGrid(ctx, rng)
	if err != nil {
		return nil, st, err
	}
	nodes := st.Nodes

	positions := rng.Perm(81)
	target := targetGivens(diff)
	carve := g.CarveTimeout
	if carve == 0 {
		carve = 900 * time.Millisecond
	}
	deadline := start.Add(carve)

	b := domain.Board{Values: full.Values}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = true
		}
	}
	for _, pos := range positions {
		if b.Givens() <= target || time.Now().After(deadline) {
			break
		}
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		r, c := pos/9, pos%9
		old := b.Values[r][c]
		b.Values[r][c] = 0
		b.Fixed[r][c] = false
		unique, ust, err := g.Solver.Unique(ctx, &domain.Board{Values: b.Values})
		nodes += ust.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if !unique {
			b.Values[r][c] = old
			b.Fixed[r][c] = true
		}
	}

	log.WithFields(log.Fields{
		"seed":       seed,
		"difficulty": diff.String(),
		"givens":     b.Givens(),
		"target":     target,
		"nodes":      nodes,
	}).Debug("generated puzzle")

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      b,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fullGrid builds a complete random solution. The diagonal boxes share no
// row, column, or box, so independent permutations of 1..9 there are always
// consistent, and the solver fills in the rest.
func (g *UniqueGenerator) fullGrid(ctx context.Context, rng *rand.Rand) (*domain.Board, ports.Stats, error) {
	seedBoard := &domain.Board{}
	for box := 0; box < 3; box++ {
		perm := rng.Perm(9)
		for i, v := range perm {
			seedBoard.Values[box*3+i/3][box*3+i%3] = uint8(v + 1)
		}
	}
	return g.Solver.Solve(ctx, seedBoard)
}
