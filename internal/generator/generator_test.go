package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dlx/internal/domain"
	"svw.info/dlx/internal/sudoku"
	"svw.info/dlx/internal/validator"
)

func TestGenerateAllDifficultiesUnder1s(t *testing.T) {
	s := sudoku.NewSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)
			assert.Less(t, st.Duration, time.Second)

			givens := p.Board.Givens()
			require.GreaterOrEqual(t, givens, 17, "below the minimum for a unique puzzle")
			require.LessOrEqual(t, givens, 81)

			ok, conf, err := validator.New().Validate(ctx, &p.Board)
			require.NoError(t, err)
			assert.True(t, ok, "conflicts=%v", conf)

			unique, _, err := s.Unique(ctx, &p.Board)
			require.NoError(t, err)
			assert.True(t, unique, "puzzle for %s is not unique", tc.name)
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewUniqueGenerator(sudoku.NewSolver())
	ctx := context.Background()

	p1, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	p2, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, p1.Board.Values, p2.Board.Values)

	p3, _, err := g.Generate(ctx, 8, domain.Easy)
	require.NoError(t, err)
	assert.NotEqual(t, p1.Board.Values, p3.Board.Values)
}

func TestGenerateFixedMatchesValues(t *testing.T) {
	g := NewUniqueGenerator(sudoku.NewSolver())
	p, _, err := g.Generate(context.Background(), 99, domain.Medium)
	require.NoError(t, err)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Equal(t, p.Board.Values[r][c] != 0, p.Board.Fixed[r][c],
				"fixed flag out of sync at r=%d c=%d", r, c)
		}
	}
}
