package dlx

// listProblem is a literal exact-cover instance for tests: rows are named
// and emitted in declaration order.
type listProblem struct {
	m, k int
	rows []listRow
}

type listRow struct {
	id   string
	cols []int
}

func (p listProblem) Constraints() int         { return p.m }
func (p listProblem) OptionalConstraints() int { return p.k }

func (p listProblem) Rows(emit func(string, []int) error) error {
	for _, r := range p.rows {
		if err := emit(r.id, r.cols); err != nil {
			return err
		}
	}
	return nil
}

// knuth is the 6x7 matrix from Knuth's Dancing Links paper; its unique
// exact cover is {A, D, E}.
var knuth = listProblem{
	m: 7,
	rows: []listRow{
		{"A", []int{2, 4, 5}},
		{"B", []int{0, 3, 6}},
		{"C", []int{1, 2, 5}},
		{"D", []int{0, 3}},
		{"E", []int{1, 6}},
		{"F", []int{3, 4, 6}},
	},
}

func rowNames(sols []Solution[string]) [][]string {
	out := make([][]string, len(sols))
	for i, s := range sols {
		out[i] = s.Rows
	}
	return out
}
