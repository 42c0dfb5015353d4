package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wrestling-hub/internal/constants"
	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the portable configuration format. Wrestlers reference
// their titles by name so a snapshot survives id churn across
// databases. Championships carry their first holder id for
// compatibility with older readers.
type Snapshot struct {
	Version       int                    `json:"version"`
	Timestamp     time.Time              `json:"timestamp"`
	Wrestlers     []SnapshotWrestler     `json:"wrestlers"`
	Championships []SnapshotChampionship `json:"championships"`
}

// SnapshotWrestler uses pointer fields so a partial snapshot leaves
// the unmentioned fields of an existing wrestler untouched on import.
type SnapshotWrestler struct {
	Name               string            `json:"name"`
	Rating             *int              `json:"rating,omitempty"`
	Faction            *string           `json:"faction,omitempty"`
	Alignment          *domain.Alignment `json:"alignment,omitempty"`
	BrandID            *int64            `json:"brandId,omitempty"`
	Wins               *int              `json:"wins,omitempty"`
	Losses             *int              `json:"losses,omitempty"`
	Draws              *int              `json:"draws,omitempty"`
	InjuryStatus       *string           `json:"injuryStatus,omitempty"`
	Moral              *int              `json:"moral,omitempty"`
	CurrentTitlesNames []string          `json:"currentTitlesNames"`
}

type SnapshotChampionship struct {
	Name              string `json:"name"`
	CurrentChampionID *int64 `json:"currentChampionId,omitempty"`
}

// ImportResult summarizes what a snapshot import changed.
type ImportResult struct {
	Matched      int `json:"matched"`
	Skipped      int `json:"skipped"`
	TitlesLinked int `json:"titlesLinked"`
}

// TransferService moves wrestler and championship configuration in and
// out of the database as a JSON snapshot.
type TransferService struct {
	wrestlers WrestlerStore
	titles    ChampionshipStore
	resolver  *TitleResolver
	logger    zerolog.Logger
}

func NewTransferService(wrestlers WrestlerStore, titles ChampionshipStore, resolver *TitleResolver, logger zerolog.Logger) *TransferService {
	return &TransferService{wrestlers: wrestlers, titles: titles, resolver: resolver, logger: logger}
}

// Export builds a snapshot of the full roster and title roll.
func (s *TransferService) Export(ctx context.Context) (*Snapshot, error) {
	var (
		wrestlers []domain.Wrestler
		titles    []domain.Championship
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wrestlers, err = s.wrestlers.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		titles, err = s.titles.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load snapshot data: %w", err)
	}

	titleName := make(map[int64]string, len(titles))
	for _, t := range titles {
		titleName[t.ID] = t.Name
	}

	snap := &Snapshot{
		Version:       constants.SnapshotVersion,
		Timestamp:     time.Now().UTC(),
		Wrestlers:     make([]SnapshotWrestler, 0, len(wrestlers)),
		Championships: make([]SnapshotChampionship, 0, len(titles)),
	}
	for i := range wrestlers {
		w := &wrestlers[i]
		names := make([]string, 0, len(w.CurrentTitleIDs))
		for _, tid := range w.CurrentTitleIDs {
			if name, ok := titleName[tid]; ok {
				names = append(names, name)
			}
		}
		snap.Wrestlers = append(snap.Wrestlers, SnapshotWrestler{
			Name:               w.Name,
			Rating:             &w.Rating,
			Faction:            &w.Faction,
			Alignment:          &w.Alignment,
			BrandID:            w.BrandID,
			Wins:               &w.Wins,
			Losses:             &w.Losses,
			Draws:              &w.Draws,
			InjuryStatus:       &w.InjuryStatus,
			Moral:              &w.Moral,
			CurrentTitlesNames: names,
		})
	}
	for i := range titles {
		t := &titles[i]
		sc := SnapshotChampionship{Name: t.Name}
		if len(t.CurrentChampionIDs) > 0 {
			sc.CurrentChampionID = &t.CurrentChampionIDs[0]
		}
		snap.Championships = append(snap.Championships, sc)
	}
	return snap, nil
}

// Import applies a snapshot: wrestlers are matched by case-insensitive
// name, unmatched entries are skipped and counted, and title names
// that resolve against the current title roll are granted through the
// resolver. Unknown title names are logged and dropped.
func (s *TransferService) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.Wrestlers == nil {
		return nil, ErrInvalidSnapshot
	}

	titles, err := s.titles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load championships: %w", err)
	}
	titleByName := make(map[string]int64, len(titles))
	for _, t := range titles {
		titleByName[t.Name] = t.ID
	}

	res := &ImportResult{}
	for _, sw := range snap.Wrestlers {
		w, err := s.wrestlers.FindByNameFold(ctx, sw.Name)
		if err != nil {
			return res, fmt.Errorf("failed to look up wrestler %q: %w", sw.Name, err)
		}
		if w == nil {
			s.logger.Warn().Str("name", sw.Name).Msg("snapshot wrestler not in roster, skipping")
			res.Skipped++
			continue
		}

		var resolved []int64
		for _, tn := range sw.CurrentTitlesNames {
			tid, ok := titleByName[tn]
			if !ok {
				s.logger.Warn().Str("title", tn).Str("wrestler", sw.Name).Msg("snapshot title not found, dropping")
				continue
			}
			resolved = append(resolved, tid)
		}
		if len(resolved) > 0 {
			for _, tid := range diffIDs(w.CurrentTitleIDs, resolved) {
				if err := s.resolver.ReleaseTitleFrom(ctx, tid, w); err != nil {
					return res, fmt.Errorf("failed to release title %d: %w", tid, err)
				}
			}
			for _, tid := range diffIDs(resolved, w.CurrentTitleIDs) {
				if err := s.resolver.GrantTitleTo(ctx, tid, w); err != nil {
					return res, fmt.Errorf("failed to grant title %d: %w", tid, err)
				}
				res.TitlesLinked++
			}
		}

		if sw.Rating != nil {
			w.Rating = *sw.Rating
		}
		if sw.Faction != nil {
			w.Faction = *sw.Faction
		}
		if sw.Alignment != nil {
			w.Alignment = *sw.Alignment
		}
		if sw.Wins != nil {
			w.Wins = *sw.Wins
		}
		if sw.Losses != nil {
			w.Losses = *sw.Losses
		}
		if sw.Draws != nil {
			w.Draws = *sw.Draws
		}
		if sw.InjuryStatus != nil {
			w.InjuryStatus = *sw.InjuryStatus
		}
		if sw.Moral != nil {
			w.Moral = *sw.Moral
		}
		if err := s.wrestlers.Update(ctx, w); err != nil {
			return res, fmt.Errorf("failed to persist wrestler %q: %w", w.Name, err)
		}
		res.Matched++
	}

	s.logger.Info().
		Int("matched", res.Matched).
		Int("skipped", res.Skipped).
		Int("titles_linked", res.TitlesLinked).
		Msg("snapshot imported")
	return res, nil
}
