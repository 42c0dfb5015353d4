package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

type ShowRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewShowRepository(sqlDB *sql.DB, logger zerolog.Logger) *ShowRepository {
	return &ShowRepository{db: sqlDB, logger: logger}
}

const showColumns = "id, name, date, brand_id, type, season, week, valuation, image, card"

func scanShow(row interface{ Scan(...any) error }) (*domain.Show, error) {
	var (
		s       domain.Show
		brandID sql.NullInt64
		card    string
	)
	err := row.Scan(&s.ID, &s.Name, &s.Date, &brandID, &s.Type, &s.Season, &s.Week, &s.Valuation, &s.Image, &card)
	if err != nil {
		return nil, err
	}
	s.BrandID = idPtr(brandID)
	if err := json.Unmarshal([]byte(card), &s.Card); err != nil {
		return nil, fmt.Errorf("failed to decode card: %w", err)
	}
	return &s, nil
}

func (r *ShowRepository) collect(rows *sql.Rows) ([]domain.Show, error) {
	defer rows.Close()
	var shows []domain.Show
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, *s)
	}
	return shows, rows.Err()
}

func (r *ShowRepository) List(ctx context.Context) ([]domain.Show, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+showColumns+" FROM shows ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return r.collect(rows)
}

func (r *ShowRepository) Get(ctx context.Context, id int64) (*domain.Show, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+showColumns+" FROM shows WHERE id = ?", id)
	s, err := scanShow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show %d: %w", id, err)
	}
	return s, nil
}

func (r *ShowRepository) GetByName(ctx context.Context, name string) (*domain.Show, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+showColumns+" FROM shows WHERE name = ? ORDER BY id LIMIT 1", name)
	s, err := scanShow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show %q: %w", name, err)
	}
	return s, nil
}

// GetBySlot finds the produced show occupying a (brand, season, week)
// slot. Catalog placeholders carry season and week 0 and never collide.
func (r *ShowRepository) GetBySlot(ctx context.Context, brandID *int64, season, week int) (*domain.Show, error) {
	var row *sql.Row
	if brandID == nil {
		row = r.db.QueryRowContext(ctx,
			"SELECT "+showColumns+" FROM shows WHERE brand_id IS NULL AND season = ? AND week = ? LIMIT 1",
			season, week)
	} else {
		row = r.db.QueryRowContext(ctx,
			"SELECT "+showColumns+" FROM shows WHERE brand_id = ? AND season = ? AND week = ? LIMIT 1",
			*brandID, season, week)
	}
	s, err := scanShow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show for slot S%dW%d: %w", season, week, err)
	}
	return s, nil
}

// LatestForBrand returns the most recent produced show of a brand by
// season/week ordering.
func (r *ShowRepository) LatestForBrand(ctx context.Context, brandID int64) (*domain.Show, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+showColumns+` FROM shows
		WHERE brand_id = ? AND season > 0
		ORDER BY season DESC, week DESC LIMIT 1`, brandID)
	s, err := scanShow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest show for brand %d: %w", brandID, err)
	}
	return s, nil
}

func (r *ShowRepository) Insert(ctx context.Context, s *domain.Show) (int64, error) {
	card, err := json.Marshal(s.Card)
	if err != nil {
		return 0, fmt.Errorf("failed to encode card: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO shows (name, date, brand_id, type, season, week, valuation, image, card)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Date, nullableID(s.BrandID), s.Type, s.Season, s.Week, s.Valuation, s.Image, string(card),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert show %q: %w", s.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read show id: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *ShowRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM shows WHERE id IN ("+placeholders(len(ids))+")", idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("failed to delete shows: %w", err)
	}
	r.logger.Debug().Ints64("show_ids", ids).Msg("shows deleted")
	return nil
}
