package usecase

import (
	"context"
	"errors"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Renderer  ports.Renderer
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, r ports.Renderer, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Renderer: r, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, p)
}

func (u *Service) Validate(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (bool, []domain.LineRef, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, p, g)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p, g)
}

func (u *Service) Render(g *domain.Grid) (string, error) {
	if u.Renderer == nil {
		return "", errNotConfigured
	}
	return u.Renderer.Render(g), nil
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.SavedPuzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.SavedPuzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
