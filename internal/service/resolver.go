package service

import (
	"context"
	"fmt"
	"strings"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

// TitleResolver keeps the wrestler/championship holdership relation
// consistent: every mutating flow funnels title movements through it.
type TitleResolver struct {
	wrestlers WrestlerStore
	titles    ChampionshipStore
	logger    zerolog.Logger
}

func NewTitleResolver(wrestlers WrestlerStore, titles ChampionshipStore, logger zerolog.Logger) *TitleResolver {
	return &TitleResolver{wrestlers: wrestlers, titles: titles, logger: logger}
}

// AssignHolders replaces the full holder set of a championship. Former
// holders are stripped before new ones are granted so no intermediate
// read sees more holders than the title allows. A reign history entry
// is appended only when the holder set actually changed.
func (r *TitleResolver) AssignHolders(ctx context.Context, championshipID int64, holders []int64) error {
	title, err := r.titles.Get(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("failed to load championship %d: %w", championshipID, err)
	}
	if title == nil {
		r.logger.Warn().Int64("championship_id", championshipID).Msg("championship not found, skipping title resolution")
		return nil
	}

	incoming := sanitizeHolders(holders, title.HolderCap())

	former, err := r.wrestlers.HoldersOf(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("failed to load holders of championship %d: %w", championshipID, err)
	}

	if sameIDSet(wrestlerIDs(former), incoming) {
		r.logger.Debug().
			Int64("championship_id", championshipID).
			Ints64("holders", incoming).
			Msg("holder set unchanged, nothing to resolve")
		return nil
	}

	for _, f := range former {
		if containsID(incoming, f.ID) {
			continue
		}
		f := f
		f.RemoveTitle(championshipID)
		if err := r.wrestlers.Update(ctx, &f); err != nil {
			return fmt.Errorf("failed to strip championship %d from wrestler %d: %w", championshipID, f.ID, err)
		}
		r.logger.Info().
			Int64("championship_id", championshipID).
			Int64("wrestler_id", f.ID).
			Str("wrestler", f.Name).
			Msg("former champion stripped")
	}

	var (
		names []string
		kept  []int64
	)
	for _, id := range incoming {
		w, err := r.wrestlers.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load wrestler %d: %w", id, err)
		}
		if w == nil {
			r.logger.Warn().
				Int64("championship_id", championshipID).
				Int64("wrestler_id", id).
				Msg("new holder not found, skipping")
			continue
		}
		w.AddTitle(championshipID)
		if err := r.wrestlers.Update(ctx, w); err != nil {
			return fmt.Errorf("failed to grant championship %d to wrestler %d: %w", championshipID, id, err)
		}
		names = append(names, w.Name)
		kept = append(kept, id)
	}

	title.CurrentChampionIDs = kept
	if len(names) > 0 {
		title.History = append(title.History, domain.ReignEntry{
			WrestlerName: strings.Join(names, " & "),
			ReignNumber:  len(title.History) + 1,
			TotalWeeks:   0,
		})
	}
	if err := r.titles.Update(ctx, title); err != nil {
		return fmt.Errorf("failed to update championship %d: %w", championshipID, err)
	}

	r.logger.Info().
		Int64("championship_id", championshipID).
		Str("championship", title.Name).
		Ints64("holders", kept).
		Str("champion", strings.Join(names, " & ")).
		Msg("championship changed hands")
	return nil
}

// GrantTitleTo adds one wrestler to a championship's holder set,
// evicting whoever has to go: every other holder for a singular title,
// the oldest surplus holder for a tag title. The wrestler is mutated
// in memory; the caller persists it.
func (r *TitleResolver) GrantTitleTo(ctx context.Context, championshipID int64, w *domain.Wrestler) error {
	title, err := r.titles.Get(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("failed to load championship %d: %w", championshipID, err)
	}
	if title == nil {
		r.logger.Warn().Int64("championship_id", championshipID).Msg("championship not found, skipping grant")
		return nil
	}

	holders, err := r.wrestlers.HoldersOf(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("failed to load holders of championship %d: %w", championshipID, err)
	}

	var others []domain.Wrestler
	for _, h := range holders {
		if h.ID != w.ID {
			others = append(others, h)
		}
	}

	var kept []int64
	if title.IsTagTeam() {
		if len(others)+1 > domain.TagHolderCap {
			evicted := others[0]
			evicted.RemoveTitle(championshipID)
			if err := r.wrestlers.Update(ctx, &evicted); err != nil {
				return fmt.Errorf("failed to evict wrestler %d from championship %d: %w", evicted.ID, championshipID, err)
			}
			r.logger.Info().
				Int64("championship_id", championshipID).
				Int64("wrestler_id", evicted.ID).
				Str("wrestler", evicted.Name).
				Msg("oldest tag champion evicted")
			others = others[1:]
		}
		for _, o := range others {
			kept = append(kept, o.ID)
		}
	} else {
		for _, o := range others {
			o := o
			o.RemoveTitle(championshipID)
			if err := r.wrestlers.Update(ctx, &o); err != nil {
				return fmt.Errorf("failed to strip championship %d from wrestler %d: %w", championshipID, o.ID, err)
			}
		}
	}

	w.AddTitle(championshipID)
	title.CurrentChampionIDs = append(kept, w.ID)
	if err := r.titles.Update(ctx, title); err != nil {
		return fmt.Errorf("failed to update championship %d: %w", championshipID, err)
	}

	r.logger.Info().
		Int64("championship_id", championshipID).
		Int64("wrestler_id", w.ID).
		Str("wrestler", w.Name).
		Msg("championship granted")
	return nil
}

// ReleaseTitleFrom removes the wrestler from a championship's holder
// set, leaving other holders untouched. The wrestler is mutated in
// memory; the caller persists it.
func (r *TitleResolver) ReleaseTitleFrom(ctx context.Context, championshipID int64, w *domain.Wrestler) error {
	w.RemoveTitle(championshipID)

	title, err := r.titles.Get(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("failed to load championship %d: %w", championshipID, err)
	}
	if title == nil {
		r.logger.Warn().Int64("championship_id", championshipID).Msg("championship not found, skipping release")
		return nil
	}
	if !title.HasChampion(w.ID) {
		return nil
	}

	var kept []int64
	for _, id := range title.CurrentChampionIDs {
		if id != w.ID {
			kept = append(kept, id)
		}
	}
	title.CurrentChampionIDs = kept
	if err := r.titles.Update(ctx, title); err != nil {
		return fmt.Errorf("failed to update championship %d: %w", championshipID, err)
	}

	r.logger.Info().
		Int64("championship_id", championshipID).
		Int64("wrestler_id", w.ID).
		Str("wrestler", w.Name).
		Msg("championship vacated by wrestler")
	return nil
}
