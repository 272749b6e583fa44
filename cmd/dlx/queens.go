package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"svw.info/dlx/internal/queens"
)

func newQueensCmd() *cobra.Command {
	var (
		n         int
		limit     int
		countOnly bool
	)
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place n non-attacking queens on an n by n board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return errors.Errorf("invalid board size %d", n)
			}
			if countOnly {
				total, err := queens.Count(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), total)
				return nil
			}
			boards, err := queens.Solve(n, limit)
			if err != nil {
				return err
			}
			if len(boards) == 0 {
				return errors.Errorf("no solution for n=%d", n)
			}
			for i, b := range boards {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), queens.FormatBoard(b))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "board size")
	cmd.Flags().IntVar(&limit, "limit", 1, "print up to this many solutions, 0 for all")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of solutions")
	return cmd
}
