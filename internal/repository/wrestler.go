package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

type WrestlerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewWrestlerRepository(sqlDB *sql.DB, logger zerolog.Logger) *WrestlerRepository {
	return &WrestlerRepository{db: sqlDB, logger: logger}
}

const wrestlerColumns = `id, name, brand_id, gender, alignment, wins, losses, draws,
	current_title_ids, historical_title_ids, injury_status, moral, contract,
	rating, faction, avatar, image`

func scanWrestler(row interface{ Scan(...any) error }) (*domain.Wrestler, error) {
	var (
		w          domain.Wrestler
		brandID    sql.NullInt64
		current    string
		historical string
	)
	err := row.Scan(
		&w.ID, &w.Name, &brandID, &w.Gender, &w.Alignment,
		&w.Wins, &w.Losses, &w.Draws, &current, &historical,
		&w.InjuryStatus, &w.Moral, &w.Contract, &w.Rating,
		&w.Faction, &w.Avatar, &w.Image,
	)
	if err != nil {
		return nil, err
	}
	w.BrandID = idPtr(brandID)
	if w.CurrentTitleIDs, err = decodeIDs(current); err != nil {
		return nil, err
	}
	if w.HistoricalTitleIDs, err = decodeIDs(historical); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WrestlerRepository) collect(rows *sql.Rows) ([]domain.Wrestler, error) {
	defer rows.Close()
	var wrestlers []domain.Wrestler
	for rows.Next() {
		w, err := scanWrestler(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wrestler: %w", err)
		}
		wrestlers = append(wrestlers, *w)
	}
	return wrestlers, rows.Err()
}

func (r *WrestlerRepository) List(ctx context.Context) ([]domain.Wrestler, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+wrestlerColumns+" FROM wrestlers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list wrestlers: %w", err)
	}
	return r.collect(rows)
}

func (r *WrestlerRepository) ListByBrand(ctx context.Context, brandID int64) ([]domain.Wrestler, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+wrestlerColumns+" FROM wrestlers WHERE brand_id = ? ORDER BY name", brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wrestlers for brand %d: %w", brandID, err)
	}
	return r.collect(rows)
}

func (r *WrestlerRepository) Get(ctx context.Context, id int64) (*domain.Wrestler, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+wrestlerColumns+" FROM wrestlers WHERE id = ?", id)
	w, err := scanWrestler(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wrestler %d: %w", id, err)
	}
	return w, nil
}

// FindByNameFold matches by name ignoring case, for import files whose
// casing may not match storage.
func (r *WrestlerRepository) FindByNameFold(ctx context.Context, name string) (*domain.Wrestler, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+wrestlerColumns+" FROM wrestlers WHERE name = ? COLLATE NOCASE ORDER BY id LIMIT 1", name)
	w, err := scanWrestler(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find wrestler %q: %w", name, err)
	}
	return w, nil
}

func (r *WrestlerRepository) FindByNameAndBrand(ctx context.Context, name string, brandID int64) (*domain.Wrestler, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+wrestlerColumns+" FROM wrestlers WHERE name = ? AND brand_id = ? ORDER BY id LIMIT 1",
		name, brandID)
	w, err := scanWrestler(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find wrestler %q in brand %d: %w", name, brandID, err)
	}
	return w, nil
}

// HoldersOf returns every wrestler whose current holdings include the
// championship, in id order.
func (r *WrestlerRepository) HoldersOf(ctx context.Context, championshipID int64) ([]domain.Wrestler, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+wrestlerColumns+` FROM wrestlers
		WHERE EXISTS (
			SELECT 1 FROM json_each(wrestlers.current_title_ids)
			WHERE json_each.value = ?
		)
		ORDER BY id`, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holders of championship %d: %w", championshipID, err)
	}
	return r.collect(rows)
}

func (r *WrestlerRepository) Insert(ctx context.Context, w *domain.Wrestler) (int64, error) {
	current, err := encodeIDs(w.CurrentTitleIDs)
	if err != nil {
		return 0, err
	}
	historical, err := encodeIDs(w.HistoricalTitleIDs)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO wrestlers (
			name, brand_id, gender, alignment, wins, losses, draws,
			current_title_ids, historical_title_ids, injury_status,
			moral, contract, rating, faction, avatar, image
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Name, nullableID(w.BrandID), w.Gender, w.Alignment,
		w.Wins, w.Losses, w.Draws, current, historical,
		w.InjuryStatus, w.Moral, w.Contract, w.Rating,
		w.Faction, w.Avatar, w.Image,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert wrestler %q: %w", w.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read wrestler id: %w", err)
	}
	w.ID = id
	return id, nil
}

func (r *WrestlerRepository) Update(ctx context.Context, w *domain.Wrestler) error {
	current, err := encodeIDs(w.CurrentTitleIDs)
	if err != nil {
		return err
	}
	historical, err := encodeIDs(w.HistoricalTitleIDs)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE wrestlers SET
			name = ?, brand_id = ?, gender = ?, alignment = ?,
			wins = ?, losses = ?, draws = ?,
			current_title_ids = ?, historical_title_ids = ?,
			injury_status = ?, moral = ?, contract = ?, rating = ?,
			faction = ?, avatar = ?, image = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		w.Name, nullableID(w.BrandID), w.Gender, w.Alignment,
		w.Wins, w.Losses, w.Draws, current, historical,
		w.InjuryStatus, w.Moral, w.Contract, w.Rating,
		w.Faction, w.Avatar, w.Image, w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wrestler %d: %w", w.ID, err)
	}
	return nil
}

func (r *WrestlerRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM wrestlers WHERE id IN ("+placeholders(len(ids))+")", idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("failed to delete wrestlers: %w", err)
	}
	r.logger.Debug().Ints64("wrestler_ids", ids).Msg("wrestlers deleted")
	return nil
}

func (r *WrestlerRepository) DeleteByBrand(ctx context.Context, brandIDs []int64) error {
	if len(brandIDs) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM wrestlers WHERE brand_id IN ("+placeholders(len(brandIDs))+")", idArgs(brandIDs)...)
	if err != nil {
		return fmt.Errorf("failed to delete wrestlers by brand: %w", err)
	}
	return nil
}
