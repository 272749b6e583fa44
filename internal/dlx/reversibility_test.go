package dlx

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func randomProblem(rng *rand.Rand) listProblem {
	m := 1 + rng.Intn(6)
	k := rng.Intn(3)
	p := listProblem{m: m, k: k}
	nRows := rng.Intn(12)
	for i := 0; i < nRows; i++ {
		var cols []int
		for c := 0; c < m+k; c++ {
			if rng.Intn(3) == 0 {
				cols = append(cols, c)
			}
		}
		p.rows = append(p.rows, listRow{id: fmt.Sprintf("r%d", i), cols: cols})
	}
	return p
}

// verifySearch mirrors the recursive driver but snapshots the arena around
// every cover/uncover pair, asserting the pair restores the structure
// bit for bit.
func verifySearch(t *testing.T, mx *matrix[string], strategy Strategy) {
	t.Helper()
	c := mx.chooseColumn(strategy)
	if c == none {
		return
	}
	before := append([]record(nil), mx.recs...)

	mx.cover(c)
	rs := mx.recs
	for v := rs[c].down; v != c; v = rs[v].down {
		for x := rs[v].right; x != v; x = rs[x].right {
			mx.cover(rs[x].col)
		}
		verifySearch(t, mx, strategy)
		for x := rs[v].left; x != v; x = rs[x].left {
			mx.uncover(rs[x].col)
		}
	}
	mx.uncover(c)

	if diff := cmp.Diff(before, mx.recs, cmpRecords); diff != "" {
		t.Fatalf("arena changed across matched cover/uncover (-before +after):\n%s", diff)
	}
}

func TestRandomMatrixReversibility(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p := randomProblem(rng)
		for _, strategy := range []Strategy{StrategyFirst, StrategyMinSize} {
			mx, err := build[string](p)
			require.NoError(t, err)
			if mx == nil {
				continue
			}
			verifySearch(t, mx, strategy)
		}
	}
}

func TestFullSearchRestoresArena(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		p := randomProblem(rng)
		mx, err := build[string](p)
		require.NoError(t, err)
		if mx == nil {
			continue
		}
		before := append([]record(nil), mx.recs...)
		s := &search[string]{
			mx:       mx,
			strategy: StrategyMinSize,
			state:    &State{},
			fn:       func(Solution[string], *State) {},
		}
		s.run()
		require.Empty(t, s.path, "path must be empty after an unterminated solve")
		if diff := cmp.Diff(before, mx.recs, cmpRecords); diff != "" {
			t.Fatalf("arena not restored after full search (-before +after):\n%s", diff)
		}
	}
}
