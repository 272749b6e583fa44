package usecase

import (
	"context"

	"github.com/pkg/errors"

	"svw.info/dlx/internal/domain"
	"svw.info/dlx/internal/ports"
)

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrInvalidBoard reports givens that already violate a constraint.
	ErrInvalidBoard = errors.New("usecase: board has conflicting givens")
)

// Service bundles the solver, generator, and validator behind one facade so
// callers wire a single dependency.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator) *Service {
	return &Service{Solver: s, Generator: g, Validator: v}
}

// Solve validates the givens first, so obviously broken boards fail with
// ErrInvalidBoard and the conflict list instead of a full search.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	ok, conf, err := u.Validator.Validate(ctx, b)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if !ok {
		return nil, ports.Stats{}, errors.Wrapf(ErrInvalidBoard, "conflicts at %v", conf)
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}
