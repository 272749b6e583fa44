package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/dlx/internal/domain"
	"svw.info/dlx/internal/generator"
	"svw.info/dlx/internal/sudoku"
)

func newGenerateCmd() *cobra.Command {
	var (
		seed       int64
		difficulty string
		grid       bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g := generator.NewUniqueGenerator(sudoku.NewSolver())
			p, st, err := g.Generate(cmd.Context(), seed, domain.ParseDifficulty(difficulty))
			if err != nil {
				return err
			}
			if grid {
				fmt.Fprint(cmd.OutOrStdout(), sudoku.FormatGrid(&p.Board))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), sudoku.Format(&p.Board))
			}
			log.WithFields(log.Fields{
				"seed":   p.Seed,
				"givens": p.Board.Givens(),
				"nodes":  st.Nodes,
				"dur":    st.Duration,
			}).Info("generated")
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().BoolVar(&grid, "grid", false, "print as a grid instead of one line")
	return cmd
}
