package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

type ChampionshipRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewChampionshipRepository(sqlDB *sql.DB, logger zerolog.Logger) *ChampionshipRepository {
	return &ChampionshipRepository{db: sqlDB, logger: logger}
}

const championshipColumns = "id, name, brand_id, image, current_champion_ids, history"

func scanChampionship(row interface{ Scan(...any) error }) (*domain.Championship, error) {
	var (
		c        domain.Championship
		brandID  sql.NullInt64
		holders  string
		history  string
	)
	err := row.Scan(&c.ID, &c.Name, &brandID, &c.Image, &holders, &history)
	if err != nil {
		return nil, err
	}
	c.BrandID = idPtr(brandID)
	if c.CurrentChampionIDs, err = decodeIDs(holders); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(history), &c.History); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if c.History == nil {
		c.History = []domain.ReignEntry{}
	}
	return &c, nil
}

func (r *ChampionshipRepository) collect(rows *sql.Rows) ([]domain.Championship, error) {
	defer rows.Close()
	var titles []domain.Championship
	for rows.Next() {
		c, err := scanChampionship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan championship: %w", err)
		}
		titles = append(titles, *c)
	}
	return titles, rows.Err()
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]domain.Championship, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+championshipColumns+" FROM championships ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}
	return r.collect(rows)
}

func (r *ChampionshipRepository) ListByBrand(ctx context.Context, brandID int64) ([]domain.Championship, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+championshipColumns+" FROM championships WHERE brand_id = ? ORDER BY id", brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships for brand %d: %w", brandID, err)
	}
	return r.collect(rows)
}

func (r *ChampionshipRepository) Get(ctx context.Context, id int64) (*domain.Championship, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+championshipColumns+" FROM championships WHERE id = ?", id)
	c, err := scanChampionship(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get championship %d: %w", id, err)
	}
	return c, nil
}

func (r *ChampionshipRepository) GetByNameAndBrand(ctx context.Context, name string, brandID int64) (*domain.Championship, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+championshipColumns+" FROM championships WHERE name = ? AND brand_id = ? ORDER BY id LIMIT 1",
		name, brandID)
	c, err := scanChampionship(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get championship %q in brand %d: %w", name, brandID, err)
	}
	return c, nil
}

func (r *ChampionshipRepository) Insert(ctx context.Context, c *domain.Championship) (int64, error) {
	holders, err := encodeIDs(c.CurrentChampionIDs)
	if err != nil {
		return 0, err
	}
	history, err := encodeHistory(c.History)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO championships (name, brand_id, image, current_champion_ids, history)
		VALUES (?, ?, ?, ?, ?)`,
		c.Name, nullableID(c.BrandID), c.Image, holders, history,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert championship %q: %w", c.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read championship id: %w", err)
	}
	c.ID = id
	return id, nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, c *domain.Championship) error {
	holders, err := encodeIDs(c.CurrentChampionIDs)
	if err != nil {
		return err
	}
	history, err := encodeHistory(c.History)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE championships SET
			name = ?, brand_id = ?, image = ?, current_champion_ids = ?,
			history = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		c.Name, nullableID(c.BrandID), c.Image, holders, history, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update championship %d: %w", c.ID, err)
	}
	return nil
}

func (r *ChampionshipRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM championships WHERE id IN ("+placeholders(len(ids))+")", idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("failed to delete championships: %w", err)
	}
	r.logger.Debug().Ints64("championship_ids", ids).Msg("championships deleted")
	return nil
}

func (r *ChampionshipRepository) DeleteByBrand(ctx context.Context, brandIDs []int64) error {
	if len(brandIDs) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM championships WHERE brand_id IN ("+placeholders(len(brandIDs))+")", idArgs(brandIDs)...)
	if err != nil {
		return fmt.Errorf("failed to delete championships by brand: %w", err)
	}
	return nil
}

func encodeHistory(history []domain.ReignEntry) (string, error) {
	if history == nil {
		history = []domain.ReignEntry{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("failed to encode history: %w", err)
	}
	return string(raw), nil
}
