package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

type BrandRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewBrandRepository(sqlDB *sql.DB, logger zerolog.Logger) *BrandRepository {
	return &BrandRepository{db: sqlDB, logger: logger}
}

const brandColumns = "id, name, primary_color, secondary_color, logo, arena, music"

func scanBrand(row interface{ Scan(...any) error }) (*domain.Brand, error) {
	var b domain.Brand
	err := row.Scan(&b.ID, &b.Name, &b.PrimaryColor, &b.SecondaryColor, &b.Logo, &b.Arena, &b.Music)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+brandColumns+" FROM brands ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, *b)
	}
	return brands, rows.Err()
}

func (r *BrandRepository) Get(ctx context.Context, id int64) (*domain.Brand, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+brandColumns+" FROM brands WHERE id = ?", id)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand %d: %w", id, err)
	}
	return b, nil
}

func (r *BrandRepository) GetByName(ctx context.Context, name string) (*domain.Brand, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+brandColumns+" FROM brands WHERE name = ? ORDER BY id LIMIT 1", name)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand %q: %w", name, err)
	}
	return b, nil
}

func (r *BrandRepository) Insert(ctx context.Context, b *domain.Brand) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO brands (name, primary_color, secondary_color, logo, arena, music)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.Name, b.PrimaryColor, b.SecondaryColor, b.Logo, b.Arena, b.Music,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert brand %q: %w", b.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read brand id: %w", err)
	}
	b.ID = id
	return id, nil
}

func (r *BrandRepository) Update(ctx context.Context, b *domain.Brand) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE brands SET
			name = ?, primary_color = ?, secondary_color = ?, logo = ?,
			arena = ?, music = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		b.Name, b.PrimaryColor, b.SecondaryColor, b.Logo, b.Arena, b.Music, b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update brand %d: %w", b.ID, err)
	}
	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM brands WHERE id IN ("+placeholders(len(ids))+")", idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("failed to delete brands: %w", err)
	}
	r.logger.Debug().Ints64("brand_ids", ids).Msg("brands deleted")
	return nil
}
