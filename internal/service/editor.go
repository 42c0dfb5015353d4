package service

import (
	"context"
	"fmt"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

// WrestlerEdit carries a direct edit to a single wrestler. Nil fields
// are left untouched. FreeAgent releases the wrestler from their brand
// and takes precedence over BrandID.
type WrestlerEdit struct {
	BrandID   *int64
	FreeAgent bool
	Alignment *domain.Alignment
	Rating    *int
	Moral     *int
	Faction   *string
	Contract  *string
	TitleIDs  *[]int64
}

// EditorService applies direct edits to wrestlers, routing any title
// holdings change through the resolver so championship records stay in
// step.
type EditorService struct {
	wrestlers WrestlerStore
	titles    ChampionshipStore
	resolver  *TitleResolver
	logger    zerolog.Logger
}

func NewEditorService(wrestlers WrestlerStore, titles ChampionshipStore, resolver *TitleResolver, logger zerolog.Logger) *EditorService {
	return &EditorService{wrestlers: wrestlers, titles: titles, resolver: resolver, logger: logger}
}

// ApplyEdit loads the wrestler, diffs the requested title holdings
// against the current ones, releases removed titles and grants added
// ones, applies the scalar fields and persists the wrestler once.
func (s *EditorService) ApplyEdit(ctx context.Context, wrestlerID int64, edit WrestlerEdit) (*domain.Wrestler, error) {
	w, err := s.wrestlers.Get(ctx, wrestlerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wrestler %d: %w", wrestlerID, err)
	}
	if w == nil {
		return nil, ErrWrestlerNotFound
	}

	if edit.TitleIDs != nil {
		wanted := sanitizeHolders(*edit.TitleIDs, len(*edit.TitleIDs))
		removed := diffIDs(w.CurrentTitleIDs, wanted)
		added := diffIDs(wanted, w.CurrentTitleIDs)
		for _, id := range removed {
			if err := s.resolver.ReleaseTitleFrom(ctx, id, w); err != nil {
				return nil, fmt.Errorf("failed to release title %d: %w", id, err)
			}
		}
		for _, id := range added {
			eligible, err := s.eligibleFor(ctx, w, id)
			if err != nil {
				return nil, err
			}
			if !eligible {
				s.logger.Warn().
					Int64("wrestler_id", w.ID).
					Int64("championship_id", id).
					Msg("title division does not match wrestler gender, skipping grant")
				continue
			}
			if err := s.resolver.GrantTitleTo(ctx, id, w); err != nil {
				return nil, fmt.Errorf("failed to grant title %d: %w", id, err)
			}
		}
		if len(removed)+len(added) > 0 {
			s.logger.Info().
				Int64("wrestler_id", w.ID).
				Ints64("released", removed).
				Ints64("granted", added).
				Msg("title holdings edited")
		}
	}

	switch {
	case edit.FreeAgent:
		w.BrandID = nil
	case edit.BrandID != nil:
		w.BrandID = edit.BrandID
	}
	if edit.Alignment != nil {
		w.Alignment = *edit.Alignment
	}
	if edit.Rating != nil {
		w.Rating = *edit.Rating
	}
	if edit.Moral != nil {
		w.Moral = *edit.Moral
	}
	if edit.Faction != nil {
		w.Faction = *edit.Faction
	}
	if edit.Contract != nil {
		w.Contract = *edit.Contract
	}

	if err := s.wrestlers.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to persist wrestler %d: %w", w.ID, err)
	}
	return w, nil
}

// eligibleFor checks that the title's division matches the wrestler's
// gender. Unknown titles count as eligible and fail later as stale
// reference no-ops.
func (s *EditorService) eligibleFor(ctx context.Context, w *domain.Wrestler, championshipID int64) (bool, error) {
	title, err := s.titles.Get(ctx, championshipID)
	if err != nil {
		return false, fmt.Errorf("failed to load championship %d: %w", championshipID, err)
	}
	if title == nil {
		return true, nil
	}
	return title.IsWomens() == (w.Gender == domain.GenderFemale), nil
}
