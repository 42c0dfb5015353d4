package service

import (
	"context"
	"strings"

	"wrestling-hub/internal/domain"
)

// In-memory stores backing the service tests. Lookups hand out copies
// so tests see the same read-your-writes behavior as the database.

type memWrestlers struct {
	seq  int64
	rows map[int64]domain.Wrestler
}

func newMemWrestlers(ws ...domain.Wrestler) *memWrestlers {
	m := &memWrestlers{rows: make(map[int64]domain.Wrestler)}
	for _, w := range ws {
		if w.ID == 0 {
			m.seq++
			w.ID = m.seq
		} else if w.ID > m.seq {
			m.seq = w.ID
		}
		m.rows[w.ID] = w
	}
	return m
}

func (m *memWrestlers) Get(_ context.Context, id int64) (*domain.Wrestler, error) {
	w, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := w
	cp.CurrentTitleIDs = append([]int64(nil), w.CurrentTitleIDs...)
	cp.HistoricalTitleIDs = append([]int64(nil), w.HistoricalTitleIDs...)
	return &cp, nil
}

func (m *memWrestlers) List(_ context.Context) ([]domain.Wrestler, error) {
	out := make([]domain.Wrestler, 0, len(m.rows))
	for id := int64(1); id <= m.seq; id++ {
		if w, ok := m.rows[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memWrestlers) FindByNameFold(_ context.Context, name string) (*domain.Wrestler, error) {
	for _, w := range m.rows {
		if strings.EqualFold(w.Name, name) {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memWrestlers) HoldersOf(_ context.Context, championshipID int64) ([]domain.Wrestler, error) {
	var out []domain.Wrestler
	for id := int64(1); id <= m.seq; id++ {
		w, ok := m.rows[id]
		if !ok {
			continue
		}
		for _, tid := range w.CurrentTitleIDs {
			if tid == championshipID {
				out = append(out, w)
				break
			}
		}
	}
	return out, nil
}

func (m *memWrestlers) Update(_ context.Context, w *domain.Wrestler) error {
	cp := *w
	cp.CurrentTitleIDs = append([]int64(nil), w.CurrentTitleIDs...)
	cp.HistoricalTitleIDs = append([]int64(nil), w.HistoricalTitleIDs...)
	m.rows[w.ID] = cp
	return nil
}

type memTitles struct {
	rows map[int64]domain.Championship
}

func newMemTitles(cs ...domain.Championship) *memTitles {
	m := &memTitles{rows: make(map[int64]domain.Championship)}
	for _, c := range cs {
		m.rows[c.ID] = c
	}
	return m
}

func (m *memTitles) Get(_ context.Context, id int64) (*domain.Championship, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.CurrentChampionIDs = append([]int64(nil), c.CurrentChampionIDs...)
	cp.History = append([]domain.ReignEntry(nil), c.History...)
	return &cp, nil
}

func (m *memTitles) List(_ context.Context) ([]domain.Championship, error) {
	out := make([]domain.Championship, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, c)
	}
	return out, nil
}

func (m *memTitles) Update(_ context.Context, c *domain.Championship) error {
	cp := *c
	cp.CurrentChampionIDs = append([]int64(nil), c.CurrentChampionIDs...)
	cp.History = append([]domain.ReignEntry(nil), c.History...)
	m.rows[c.ID] = cp
	return nil
}

type memShows struct {
	seq  int64
	rows map[int64]domain.Show
}

func newMemShows(ss ...domain.Show) *memShows {
	m := &memShows{rows: make(map[int64]domain.Show)}
	for _, s := range ss {
		if s.ID == 0 {
			m.seq++
			s.ID = m.seq
		} else if s.ID > m.seq {
			m.seq = s.ID
		}
		m.rows[s.ID] = s
	}
	return m
}

func (m *memShows) Insert(_ context.Context, s *domain.Show) (int64, error) {
	m.seq++
	s.ID = m.seq
	m.rows[s.ID] = *s
	return s.ID, nil
}

func (m *memShows) GetBySlot(_ context.Context, brandID *int64, season, week int) (*domain.Show, error) {
	for _, s := range m.rows {
		if s.Season != season || s.Week != week {
			continue
		}
		switch {
		case brandID == nil && s.BrandID == nil:
		case brandID != nil && s.BrandID != nil && *brandID == *s.BrandID:
		default:
			continue
		}
		cp := s
		return &cp, nil
	}
	return nil, nil
}

func (m *memShows) LatestForBrand(_ context.Context, brandID int64) (*domain.Show, error) {
	var best *domain.Show
	for _, s := range m.rows {
		if s.BrandID == nil || *s.BrandID != brandID || s.Season == 0 {
			continue
		}
		s := s
		if best == nil || s.Season > best.Season || (s.Season == best.Season && s.Week > best.Week) {
			best = &s
		}
	}
	return best, nil
}
