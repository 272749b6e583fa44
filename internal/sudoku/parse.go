package sudoku

import (
	"strings"

	"svw.info/dlx/internal/domain"
)

// Parse reads a puzzle from its one-line form: the digits 1-9 are givens,
// 0 or '.' denote empty cells, and all other runes are ignored. It reports
// false unless exactly 81 significant runes are present.
func Parse(s string) (*domain.Board, bool) {
	b := &domain.Board{}
	i := 0
	for _, r := range s {
		var v uint8
		switch {
		case r >= '1' && r <= '9':
			v = uint8(r - '0')
		case r == '0' || r == '.':
			v = 0
		default:
			continue
		}
		if i >= 81 {
			return nil, false
		}
		if v != 0 {
			b.Values[i/9][i%9] = v
			b.Fixed[i/9][i%9] = true
		}
		i++
	}
	if i != 81 {
		return nil, false
	}
	return b, true
}

// Format renders the board in the one-line form Parse reads, '.' for empty.
func Format(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// FormatGrid renders the board as a 9-line grid for terminal output.
func FormatGrid(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
				if c%3 == 0 {
					sb.WriteString("| ")
				}
			}
			if v := b.Values[r][c]; v != 0 {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
