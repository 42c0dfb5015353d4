package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

// ErrReconcileRunning is returned when a reconcile is requested while
// an earlier run has not finished.
var ErrReconcileRunning = errors.New("seed reconciliation already running")

type BrandStore interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Insert(ctx context.Context, b *domain.Brand) (int64, error)
	Update(ctx context.Context, b *domain.Brand) error
	Delete(ctx context.Context, ids []int64) error
}

type WrestlerStore interface {
	List(ctx context.Context) ([]domain.Wrestler, error)
	Insert(ctx context.Context, w *domain.Wrestler) (int64, error)
	Update(ctx context.Context, w *domain.Wrestler) error
	Delete(ctx context.Context, ids []int64) error
	DeleteByBrand(ctx context.Context, brandIDs []int64) error
}

type ChampionshipStore interface {
	List(ctx context.Context) ([]domain.Championship, error)
	Insert(ctx context.Context, c *domain.Championship) (int64, error)
	Update(ctx context.Context, c *domain.Championship) error
	Delete(ctx context.Context, ids []int64) error
	DeleteByBrand(ctx context.Context, brandIDs []int64) error
}

type ShowStore interface {
	List(ctx context.Context) ([]domain.Show, error)
	Insert(ctx context.Context, s *domain.Show) (int64, error)
	Delete(ctx context.Context, ids []int64) error
}

type reconcileState int

const (
	stateIdle reconcileState = iota
	stateRunning
)

// Result counts what a reconcile run touched.
type Result struct {
	BrandsCreated        int
	BrandsUpdated        int
	BrandsPruned         int
	ChampionshipsCreated int
	ChampionshipsUpdated int
	ChampionshipsPruned  int
	WrestlersCreated     int
	WrestlersUpdated     int
	WrestlersPruned      int
	ShowsCreated         int
	ShowsPruned          int
	TitlesLinked         int
	Elapsed              time.Duration
}

// Summary renders the result as a single log-friendly line.
func (r Result) Summary() string {
	return fmt.Sprintf(
		"brands +%d ~%d -%d, championships +%d ~%d -%d, wrestlers +%d ~%d -%d, shows +%d -%d, titles linked %d in %s",
		r.BrandsCreated, r.BrandsUpdated, r.BrandsPruned,
		r.ChampionshipsCreated, r.ChampionshipsUpdated, r.ChampionshipsPruned,
		r.WrestlersCreated, r.WrestlersUpdated, r.WrestlersPruned,
		r.ShowsCreated, r.ShowsPruned,
		r.TitlesLinked, r.Elapsed.Round(time.Millisecond),
	)
}

// Reconciler converges the database onto the built-in catalog: missing
// records are created, presentation fields of existing ones refreshed,
// records that left the catalog pruned, and duplicates collapsed onto
// their first occurrence. User-authored state (records under the free
// agent brand, produced shows, stats, title history) is never touched.
// Runs are serialized; a second concurrent call fails fast.
type Reconciler struct {
	mu     sync.Mutex
	state  reconcileState
	brands BrandStore
	roster WrestlerStore
	titles ChampionshipStore
	shows  ShowStore
	logger zerolog.Logger
}

func NewReconciler(brands BrandStore, roster WrestlerStore, titles ChampionshipStore, shows ShowStore, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		brands: brands,
		roster: roster,
		titles: titles,
		shows:  shows,
		logger: logger,
	}
}

// Run executes one full reconcile: brands, then championships, then
// wrestlers with title cross-linking, then shows. Each pass first
// computes its plan against a fresh read, then applies it.
func (r *Reconciler) Run(ctx context.Context) (Result, error) {
	r.mu.Lock()
	if r.state == stateRunning {
		r.mu.Unlock()
		return Result{}, ErrReconcileRunning
	}
	r.state = stateRunning
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.state = stateIdle
		r.mu.Unlock()
	}()

	start := time.Now()
	var res Result

	brandIDs, err := r.reconcileBrands(ctx, &res)
	if err != nil {
		return res, err
	}
	titleIDs, err := r.reconcileChampionships(ctx, brandIDs, &res)
	if err != nil {
		return res, err
	}
	if err := r.reconcileWrestlers(ctx, brandIDs, titleIDs, &res); err != nil {
		return res, err
	}
	if err := r.reconcileShows(ctx, brandIDs, &res); err != nil {
		return res, err
	}

	res.Elapsed = time.Since(start)
	r.logger.Info().Str("summary", res.Summary()).Msg("seed reconciliation finished")
	return res, nil
}

// reconcileBrands returns a name to id map of catalog brands plus the
// protected free agent brand. Pruning a brand cascades to its
// wrestlers and championships.
func (r *Reconciler) reconcileBrands(ctx context.Context, res *Result) (map[string]int64, error) {
	existing, err := r.brands.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	byName := make(map[string]*domain.Brand)
	var pruneIDs []int64
	seen := make(map[string]bool)
	for i := range existing {
		b := &existing[i]
		key := strings.TrimSpace(b.Name)
		inCatalog := key == domain.BrandFreeAgent
		for _, sb := range Brands {
			if sb.Name == key {
				inCatalog = true
				break
			}
		}
		if !inCatalog || seen[key] {
			pruneIDs = append(pruneIDs, b.ID)
			continue
		}
		seen[key] = true
		byName[key] = b
	}

	if len(pruneIDs) > 0 {
		if err := r.roster.DeleteByBrand(ctx, pruneIDs); err != nil {
			return nil, fmt.Errorf("failed to prune wrestlers of removed brands: %w", err)
		}
		if err := r.titles.DeleteByBrand(ctx, pruneIDs); err != nil {
			return nil, fmt.Errorf("failed to prune championships of removed brands: %w", err)
		}
		if err := r.brands.Delete(ctx, pruneIDs); err != nil {
			return nil, fmt.Errorf("failed to prune brands: %w", err)
		}
		res.BrandsPruned += len(pruneIDs)
	}

	ids := make(map[string]int64)
	for _, sb := range Brands {
		if b, ok := byName[sb.Name]; ok {
			if b.PrimaryColor != sb.PrimaryColor || b.SecondaryColor != sb.SecondaryColor || b.Logo != sb.Logo {
				b.PrimaryColor = sb.PrimaryColor
				b.SecondaryColor = sb.SecondaryColor
				b.Logo = sb.Logo
				if err := r.brands.Update(ctx, b); err != nil {
					return nil, fmt.Errorf("failed to refresh brand %q: %w", sb.Name, err)
				}
				res.BrandsUpdated++
			}
			ids[sb.Name] = b.ID
			continue
		}
		b := &domain.Brand{
			Name:           sb.Name,
			PrimaryColor:   sb.PrimaryColor,
			SecondaryColor: sb.SecondaryColor,
			Logo:           sb.Logo,
		}
		b.ID, err = r.brands.Insert(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("failed to create brand %q: %w", sb.Name, err)
		}
		ids[sb.Name] = b.ID
		res.BrandsCreated++
	}

	if _, ok := byName[domain.BrandFreeAgent]; !ok {
		fa := &domain.Brand{Name: domain.BrandFreeAgent, PrimaryColor: "#666666", SecondaryColor: "#000000"}
		if fa.ID, err = r.brands.Insert(ctx, fa); err != nil {
			return nil, fmt.Errorf("failed to create free agent brand: %w", err)
		}
		res.BrandsCreated++
	}
	return ids, nil
}

// reconcileChampionships returns a "name_brand" keyed id map of the
// surviving titles.
func (r *Reconciler) reconcileChampionships(ctx context.Context, brandIDs map[string]int64, res *Result) (map[string]int64, error) {
	existing, err := r.titles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}

	brandName := make(map[int64]string, len(brandIDs))
	for name, id := range brandIDs {
		brandName[id] = name
	}
	key := func(name, brand string) string { return strings.TrimSpace(name) + "_" + brand }

	byKey := make(map[string]*domain.Championship)
	var pruneIDs []int64
	for i := range existing {
		c := &existing[i]
		var bName string
		if c.BrandID != nil {
			bName = brandName[*c.BrandID]
		}
		k := key(c.Name, bName)
		inCatalog := false
		for _, sc := range Championships {
			if strings.TrimSpace(sc.Name) == strings.TrimSpace(c.Name) && sc.BrandName == bName {
				inCatalog = true
				break
			}
		}
		if !inCatalog || byKey[k] != nil {
			pruneIDs = append(pruneIDs, c.ID)
			continue
		}
		byKey[k] = c
	}
	if len(pruneIDs) > 0 {
		if err := r.titles.Delete(ctx, pruneIDs); err != nil {
			return nil, fmt.Errorf("failed to prune championships: %w", err)
		}
		res.ChampionshipsPruned += len(pruneIDs)
	}

	ids := make(map[string]int64)
	for _, sc := range Championships {
		bID, ok := brandIDs[sc.BrandName]
		if !ok {
			continue
		}
		k := key(sc.Name, sc.BrandName)
		if c, found := byKey[k]; found {
			if c.Image != sc.Image {
				c.Image = sc.Image
				if err := r.titles.Update(ctx, c); err != nil {
					return nil, fmt.Errorf("failed to refresh championship %q: %w", sc.Name, err)
				}
				res.ChampionshipsUpdated++
			}
			ids[k] = c.ID
			continue
		}
		c := &domain.Championship{Name: strings.TrimSpace(sc.Name), BrandID: &bID, Image: sc.Image}
		if c.ID, err = r.titles.Insert(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to create championship %q: %w", sc.Name, err)
		}
		ids[k] = c.ID
		res.ChampionshipsCreated++
	}
	return ids, nil
}

// reconcileWrestlers upserts the catalog roster and cross-links title
// records whose holder set still has room. Holder sets with champions
// already recorded are never overridden.
func (r *Reconciler) reconcileWrestlers(ctx context.Context, brandIDs map[string]int64, titleIDs map[string]int64, res *Result) error {
	existing, err := r.roster.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list wrestlers: %w", err)
	}

	brandName := make(map[int64]string, len(brandIDs))
	for name, id := range brandIDs {
		brandName[id] = name
	}
	key := func(name, brand string) string { return strings.TrimSpace(name) + "_" + brand }

	byKey := make(map[string]*domain.Wrestler)
	var pruneIDs []int64
	for i := range existing {
		w := &existing[i]
		if w.BrandID == nil {
			// Free agents are user state, not catalog state.
			continue
		}
		bName := brandName[*w.BrandID]
		k := key(w.Name, bName)
		inCatalog := false
		for _, sw := range Wrestlers {
			if strings.TrimSpace(sw.Name) == strings.TrimSpace(w.Name) && sw.BrandName == bName {
				inCatalog = true
				break
			}
		}
		if !inCatalog || byKey[k] != nil {
			pruneIDs = append(pruneIDs, w.ID)
			continue
		}
		byKey[k] = w
	}
	if len(pruneIDs) > 0 {
		if err := r.roster.Delete(ctx, pruneIDs); err != nil {
			return fmt.Errorf("failed to prune wrestlers: %w", err)
		}
		res.WrestlersPruned += len(pruneIDs)
	}

	for _, sw := range Wrestlers {
		bID, ok := brandIDs[sw.BrandName]
		if !ok {
			continue
		}
		var holdIDs []int64
		for _, tn := range sw.HoldsTitleNames {
			if tid, found := titleIDs[key(tn, sw.BrandName)]; found {
				holdIDs = append(holdIDs, tid)
			}
		}

		k := key(sw.Name, sw.BrandName)
		if w, found := byKey[k]; found {
			if w.Image != sw.Image || w.Avatar != sw.Avatar || w.Gender != sw.Gender {
				w.Image = sw.Image
				w.Avatar = sw.Avatar
				w.Gender = sw.Gender
				if err := r.roster.Update(ctx, w); err != nil {
					return fmt.Errorf("failed to refresh wrestler %q: %w", sw.Name, err)
				}
				res.WrestlersUpdated++
			}
			if err := r.linkTitles(ctx, w, w.CurrentTitleIDs, res); err != nil {
				return err
			}
			continue
		}

		w := &domain.Wrestler{
			Name:               strings.TrimSpace(sw.Name),
			BrandID:            &bID,
			Gender:             sw.Gender,
			Alignment:          sw.Alignment,
			Rating:             sw.Rating,
			Faction:            sw.Faction,
			Image:              sw.Image,
			Avatar:             sw.Avatar,
			Moral:              100,
			CurrentTitleIDs:    holdIDs,
			HistoricalTitleIDs: append([]int64(nil), holdIDs...),
		}
		if w.ID, err = r.roster.Insert(ctx, w); err != nil {
			return fmt.Errorf("failed to create wrestler %q: %w", sw.Name, err)
		}
		res.WrestlersCreated++
		if err := r.linkTitles(ctx, w, holdIDs, res); err != nil {
			return err
		}
	}
	return nil
}

// linkTitles back-fills the holder set of each championship the
// wrestler claims, as long as the set has room for them.
func (r *Reconciler) linkTitles(ctx context.Context, w *domain.Wrestler, titleIDs []int64, res *Result) error {
	if len(titleIDs) == 0 {
		return nil
	}
	all, err := r.titles.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list championships for linking: %w", err)
	}
	byID := make(map[int64]*domain.Championship, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}
	for _, tid := range titleIDs {
		c, ok := byID[tid]
		if !ok || c.HasChampion(w.ID) || len(c.CurrentChampionIDs) >= c.HolderCap() {
			continue
		}
		c.CurrentChampionIDs = append(c.CurrentChampionIDs, w.ID)
		if err := r.titles.Update(ctx, c); err != nil {
			return fmt.Errorf("failed to link champion to %q: %w", c.Name, err)
		}
		res.TitlesLinked++
		r.logger.Debug().Str("championship", c.Name).Str("wrestler", w.Name).Msg("linked missing champion")
	}
	return nil
}

// reconcileShows creates missing catalog shows as cardless placeholders
// and prunes placeholders that left the catalog. Produced shows are
// user history and survive any catalog change.
func (r *Reconciler) reconcileShows(ctx context.Context, brandIDs map[string]int64, res *Result) error {
	existing, err := r.shows.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list shows: %w", err)
	}

	seen := make(map[string]bool)
	var pruneIDs []int64
	for i := range existing {
		s := &existing[i]
		if s.Produced() {
			seen[strings.TrimSpace(s.Name)] = true
			continue
		}
		name := strings.TrimSpace(s.Name)
		inCatalog := false
		for _, ss := range Shows {
			if strings.TrimSpace(ss.Name) == name {
				inCatalog = true
				break
			}
		}
		if !inCatalog || seen[name] {
			pruneIDs = append(pruneIDs, s.ID)
			continue
		}
		seen[name] = true
	}
	if len(pruneIDs) > 0 {
		if err := r.shows.Delete(ctx, pruneIDs); err != nil {
			return fmt.Errorf("failed to prune shows: %w", err)
		}
		res.ShowsPruned += len(pruneIDs)
	}

	for _, ss := range Shows {
		name := strings.TrimSpace(ss.Name)
		if seen[name] {
			continue
		}
		var brandID *int64
		if ss.BrandName != domain.BrandShared {
			id, ok := brandIDs[ss.BrandName]
			if !ok {
				continue
			}
			brandID = &id
		}
		s := &domain.Show{
			Name:      name,
			BrandID:   brandID,
			Type:      ss.Type,
			Valuation: ss.Valuation,
			Date:      time.Now(),
		}
		if _, err := r.shows.Insert(ctx, s); err != nil {
			return fmt.Errorf("failed to create show %q: %w", name, err)
		}
		res.ShowsCreated++
	}
	return nil
}
