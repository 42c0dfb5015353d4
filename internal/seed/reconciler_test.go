package seed

import (
	"context"
	"errors"
	"testing"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

type memDB struct {
	seq    int64
	brands map[int64]domain.Brand
	roster map[int64]domain.Wrestler
	titles map[int64]domain.Championship
	shows  map[int64]domain.Show
}

func newMemDB() *memDB {
	return &memDB{
		brands: make(map[int64]domain.Brand),
		roster: make(map[int64]domain.Wrestler),
		titles: make(map[int64]domain.Championship),
		shows:  make(map[int64]domain.Show),
	}
}

func (m *memDB) nextID() int64 {
	m.seq++
	return m.seq
}

type memBrands struct{ db *memDB }

func (s memBrands) List(context.Context) ([]domain.Brand, error) {
	out := make([]domain.Brand, 0, len(s.db.brands))
	for id := int64(1); id <= s.db.seq; id++ {
		if b, ok := s.db.brands[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s memBrands) Insert(_ context.Context, b *domain.Brand) (int64, error) {
	b.ID = s.db.nextID()
	s.db.brands[b.ID] = *b
	return b.ID, nil
}

func (s memBrands) Update(_ context.Context, b *domain.Brand) error {
	s.db.brands[b.ID] = *b
	return nil
}

func (s memBrands) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(s.db.brands, id)
	}
	return nil
}

type memRoster struct{ db *memDB }

func (s memRoster) List(context.Context) ([]domain.Wrestler, error) {
	out := make([]domain.Wrestler, 0, len(s.db.roster))
	for id := int64(1); id <= s.db.seq; id++ {
		if w, ok := s.db.roster[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s memRoster) Insert(_ context.Context, w *domain.Wrestler) (int64, error) {
	w.ID = s.db.nextID()
	s.db.roster[w.ID] = *w
	return w.ID, nil
}

func (s memRoster) Update(_ context.Context, w *domain.Wrestler) error {
	s.db.roster[w.ID] = *w
	return nil
}

func (s memRoster) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(s.db.roster, id)
	}
	return nil
}

func (s memRoster) DeleteByBrand(_ context.Context, brandIDs []int64) error {
	for id, w := range s.db.roster {
		for _, bid := range brandIDs {
			if w.BrandID != nil && *w.BrandID == bid {
				delete(s.db.roster, id)
			}
		}
	}
	return nil
}

type memTitles struct{ db *memDB }

func (s memTitles) List(context.Context) ([]domain.Championship, error) {
	out := make([]domain.Championship, 0, len(s.db.titles))
	for id := int64(1); id <= s.db.seq; id++ {
		if c, ok := s.db.titles[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s memTitles) Insert(_ context.Context, c *domain.Championship) (int64, error) {
	c.ID = s.db.nextID()
	s.db.titles[c.ID] = *c
	return c.ID, nil
}

func (s memTitles) Update(_ context.Context, c *domain.Championship) error {
	s.db.titles[c.ID] = *c
	return nil
}

func (s memTitles) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(s.db.titles, id)
	}
	return nil
}

func (s memTitles) DeleteByBrand(_ context.Context, brandIDs []int64) error {
	for id, c := range s.db.titles {
		for _, bid := range brandIDs {
			if c.BrandID != nil && *c.BrandID == bid {
				delete(s.db.titles, id)
			}
		}
	}
	return nil
}

type memShows struct{ db *memDB }

func (s memShows) List(context.Context) ([]domain.Show, error) {
	out := make([]domain.Show, 0, len(s.db.shows))
	for id := int64(1); id <= s.db.seq; id++ {
		if sh, ok := s.db.shows[id]; ok {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (s memShows) Insert(_ context.Context, sh *domain.Show) (int64, error) {
	sh.ID = s.db.nextID()
	s.db.shows[sh.ID] = *sh
	return sh.ID, nil
}

func (s memShows) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(s.db.shows, id)
	}
	return nil
}

func newTestReconciler() (*Reconciler, *memDB) {
	db := newMemDB()
	r := NewReconciler(memBrands{db}, memRoster{db}, memTitles{db}, memShows{db}, zerolog.Nop())
	return r, db
}

func (m *memDB) brandByName(name string) *domain.Brand {
	for _, b := range m.brands {
		if b.Name == name {
			b := b
			return &b
		}
	}
	return nil
}

func (m *memDB) titleByName(name string) *domain.Championship {
	for _, c := range m.titles {
		if c.Name == name {
			c := c
			return &c
		}
	}
	return nil
}

func (m *memDB) wrestlerByName(name string) *domain.Wrestler {
	for _, w := range m.roster {
		if w.Name == name {
			w := w
			return &w
		}
	}
	return nil
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	r, db := newTestReconciler()

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.BrandsCreated != len(Brands)+1 {
		t.Errorf("brands created = %d, want catalog plus free agent", res.BrandsCreated)
	}
	if res.ChampionshipsCreated != len(Championships) {
		t.Errorf("championships created = %d, want %d", res.ChampionshipsCreated, len(Championships))
	}
	if res.WrestlersCreated != len(Wrestlers) {
		t.Errorf("wrestlers created = %d, want %d", res.WrestlersCreated, len(Wrestlers))
	}
	if res.ShowsCreated != len(Shows) {
		t.Errorf("shows created = %d, want %d", res.ShowsCreated, len(Shows))
	}

	if db.brandByName(domain.BrandFreeAgent) == nil {
		t.Error("free agent brand missing")
	}

	title := db.titleByName("WWE Champion")
	champ := db.wrestlerByName("Seth Rollins")
	if title == nil || champ == nil {
		t.Fatal("seeded records missing")
	}
	if !title.HasChampion(champ.ID) {
		t.Errorf("catalog holder not linked: %v", title.CurrentChampionIDs)
	}
	if !champ.HoldsTitle(title.ID) {
		t.Errorf("wrestler holdings not set: %v", champ.CurrentTitleIDs)
	}

	tag := db.titleByName("WWE Tag Team Champions")
	if len(tag.CurrentChampionIDs) != 2 {
		t.Errorf("tag title holders = %v, want the seeded pair", tag.CurrentChampionIDs)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	r, _ := newTestReconciler()
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if res.BrandsCreated+res.ChampionshipsCreated+res.WrestlersCreated+res.ShowsCreated != 0 {
		t.Errorf("second run created records: %s", res.Summary())
	}
	if res.BrandsPruned+res.ChampionshipsPruned+res.WrestlersPruned+res.ShowsPruned != 0 {
		t.Errorf("second run pruned records: %s", res.Summary())
	}
	if res.TitlesLinked != 0 {
		t.Errorf("second run relinked titles: %d", res.TitlesLinked)
	}
}

func TestRunPrunesNonCatalogWrestlerButKeepsFreeAgents(t *testing.T) {
	r, db := newTestReconciler()
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw := db.brandByName("RAW")
	stray := domain.Wrestler{Name: "Custom Creation", BrandID: &raw.ID}
	if _, err := (memRoster{db}).Insert(context.Background(), &stray); err != nil {
		t.Fatal(err)
	}
	free := domain.Wrestler{Name: "Released Legend"}
	if _, err := (memRoster{db}).Insert(context.Background(), &free); err != nil {
		t.Fatal(err)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.WrestlersPruned != 1 {
		t.Errorf("pruned = %d, want only the stray brand wrestler", res.WrestlersPruned)
	}
	if db.wrestlerByName("Custom Creation") != nil {
		t.Error("non-catalog wrestler survived")
	}
	if db.wrestlerByName("Released Legend") == nil {
		t.Error("free agent was pruned")
	}
}

func TestRunCollapsesDuplicates(t *testing.T) {
	r, db := newTestReconciler()
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	original := db.wrestlerByName("CM Punk")
	dup := domain.Wrestler{Name: "CM Punk", BrandID: original.BrandID}
	if _, err := (memRoster{db}).Insert(context.Background(), &dup); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	count := 0
	for _, w := range db.roster {
		if w.Name == "CM Punk" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicates = %d, want 1", count)
	}
	if db.wrestlerByName("CM Punk").ID != original.ID {
		t.Error("dedupe must keep the first occurrence")
	}
}

func TestRunNeverOverridesRecordedChampions(t *testing.T) {
	r, db := newTestReconciler()
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Hand the title to someone else, as a saved show would.
	title := db.titleByName("WWE Champion")
	usurper := db.wrestlerByName("CM Punk")
	former := db.wrestlerByName("Seth Rollins")
	former.RemoveTitle(title.ID)
	usurper.AddTitle(title.ID)
	title.CurrentChampionIDs = []int64{usurper.ID}
	db.roster[former.ID] = *former
	db.roster[usurper.ID] = *usurper
	db.titles[title.ID] = *title

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	after := db.titleByName("WWE Champion")
	if len(after.CurrentChampionIDs) != 1 || after.CurrentChampionIDs[0] != usurper.ID {
		t.Errorf("reconcile overrode the recorded champion: %v", after.CurrentChampionIDs)
	}
}

func TestRunProtectsProducedShows(t *testing.T) {
	r, db := newTestReconciler()
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw := db.brandByName("RAW")
	produced := domain.Show{
		Name: "Saturday Night Main Event", BrandID: &raw.ID, Season: 1, Week: 2,
		Card: domain.Card{Segments: []domain.Segment{{ID: "s", Kind: domain.SegmentVideo, Video: &domain.Video{}}}},
	}
	if _, err := (memShows{db}).Insert(context.Background(), &produced); err != nil {
		t.Fatal(err)
	}
	placeholder := domain.Show{Name: "Retired Special", BrandID: &raw.ID}
	if _, err := (memShows{db}).Insert(context.Background(), &placeholder); err != nil {
		t.Fatal(err)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ShowsPruned != 1 {
		t.Errorf("pruned = %d, want only the stale placeholder", res.ShowsPruned)
	}
	if _, ok := db.shows[produced.ID]; !ok {
		t.Error("produced show was pruned")
	}
	if _, ok := db.shows[placeholder.ID]; ok {
		t.Error("stale placeholder survived")
	}
}

func TestRunRefusesConcurrentRuns(t *testing.T) {
	r, _ := newTestReconciler()
	r.state = stateRunning

	if _, err := r.Run(context.Background()); !errors.Is(err, ErrReconcileRunning) {
		t.Errorf("Run = %v, want ErrReconcileRunning", err)
	}

	r.state = stateIdle
	if _, err := r.Run(context.Background()); err != nil {
		t.Errorf("Run after release: %v", err)
	}
}
