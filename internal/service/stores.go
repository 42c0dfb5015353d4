package service

import (
	"context"

	"wrestling-hub/internal/domain"
)

// Store lookups return (nil, nil) when the record is absent so stale
// references degrade to logged no-ops instead of failures.

type WrestlerStore interface {
	Get(ctx context.Context, id int64) (*domain.Wrestler, error)
	List(ctx context.Context) ([]domain.Wrestler, error)
	FindByNameFold(ctx context.Context, name string) (*domain.Wrestler, error)
	HoldersOf(ctx context.Context, championshipID int64) ([]domain.Wrestler, error)
	Update(ctx context.Context, w *domain.Wrestler) error
}

type ChampionshipStore interface {
	Get(ctx context.Context, id int64) (*domain.Championship, error)
	List(ctx context.Context) ([]domain.Championship, error)
	Update(ctx context.Context, c *domain.Championship) error
}

type ShowStore interface {
	Insert(ctx context.Context, s *domain.Show) (int64, error)
	GetBySlot(ctx context.Context, brandID *int64, season, week int) (*domain.Show, error)
	LatestForBrand(ctx context.Context, brandID int64) (*domain.Show, error)
}
