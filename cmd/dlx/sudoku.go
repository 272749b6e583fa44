package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/dlx/internal/dlx"
	"svw.info/dlx/internal/generator"
	"svw.info/dlx/internal/sudoku"
	"svw.info/dlx/internal/usecase"
	"svw.info/dlx/internal/validator"
)

func newSudokuCmd() *cobra.Command {
	var (
		strategy dlx.Strategy
		limit    int
		all      bool
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sudoku [puzzle]",
		Short: "Solve a Sudoku given in one-line form (81 cells, '.' or 0 for empty)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := puzzleInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			b, ok := sudoku.Parse(line)
			if !ok {
				return errors.New("input is not an 81-cell puzzle")
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			s := &sudoku.Solver{Strategy: strategy}
			if all || limit > 1 {
				n := limit
				if all {
					n = 0
				}
				boards, st, err := s.Enumerate(ctx, b, n)
				if err != nil {
					return err
				}
				if len(boards) == 0 {
					return sudoku.ErrNoSolution
				}
				for i, sol := range boards {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					fmt.Fprint(cmd.OutOrStdout(), sudoku.FormatGrid(sol))
				}
				log.WithFields(log.Fields{"solutions": len(boards), "nodes": st.Nodes, "dur": st.Duration}).Debug("enumerated")
				return nil
			}

			svc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New())
			out, st, err := svc.Solve(ctx, b)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sudoku.FormatGrid(out))
			log.WithFields(log.Fields{"nodes": st.Nodes, "dur": st.Duration}).Debug("solved")
			return nil
		},
	}
	strategyFlag(cmd.Flags(), &strategy)
	cmd.Flags().IntVar(&limit, "limit", 1, "print up to this many solutions")
	cmd.Flags().BoolVar(&all, "all", false, "print every solution")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long")
	return cmd
}

// puzzleInput takes the puzzle from the argument if present, otherwise from
// stdin so puzzles can be piped in.
func puzzleInput(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "read puzzle from stdin")
	}
	return string(raw), nil
}
