package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

// NPCs are plain records outside the consistency engine.
type NPCRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewNPCRepository(sqlDB *sql.DB, logger zerolog.Logger) *NPCRepository {
	return &NPCRepository{db: sqlDB, logger: logger}
}

func (r *NPCRepository) List(ctx context.Context) ([]domain.NPC, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, role, brand_id, image, music FROM npcs ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list npcs: %w", err)
	}
	defer rows.Close()

	var npcs []domain.NPC
	for rows.Next() {
		var (
			n       domain.NPC
			brandID sql.NullInt64
		)
		if err := rows.Scan(&n.ID, &n.Name, &n.Role, &brandID, &n.Image, &n.Music); err != nil {
			return nil, fmt.Errorf("failed to scan npc: %w", err)
		}
		n.BrandID = idPtr(brandID)
		npcs = append(npcs, n)
	}
	return npcs, rows.Err()
}

func (r *NPCRepository) Insert(ctx context.Context, n *domain.NPC) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO npcs (name, role, brand_id, image, music) VALUES (?, ?, ?, ?, ?)",
		n.Name, n.Role, nullableID(n.BrandID), n.Image, n.Music,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert npc %q: %w", n.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read npc id: %w", err)
	}
	n.ID = id
	return id, nil
}

func (r *NPCRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM npcs WHERE id IN ("+placeholders(len(ids))+")", idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("failed to delete npcs: %w", err)
	}
	return nil
}
