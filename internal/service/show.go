package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wrestling-hub/internal/domain"
	"wrestling-hub/internal/seed"

	"github.com/rs/zerolog"
)

// ShowService commits booked show drafts and edits match segments on a
// live draft card.
type ShowService struct {
	shows     ShowStore
	wrestlers WrestlerStore
	titles    ChampionshipStore
	resolver  *TitleResolver
	exportDir string
	logger    zerolog.Logger
}

func NewShowService(shows ShowStore, wrestlers WrestlerStore, titles ChampionshipStore, resolver *TitleResolver, exportDir string, logger zerolog.Logger) *ShowService {
	return &ShowService{
		shows:     shows,
		wrestlers: wrestlers,
		titles:    titles,
		resolver:  resolver,
		exportDir: exportDir,
		logger:    logger,
	}
}

// Save commits a rated draft: it validates the card, rejects the draft
// on a slot collision, persists the show, then applies title changes
// and win/loss statistics per segment. Once the show row is written
// the draft is saved; segment side effects that fail are logged and
// reported but never roll the show back.
func (s *ShowService) Save(ctx context.Context, draft *ShowDraft) (*domain.Show, error) {
	if draft.Finalized() {
		return nil, ErrDraftFinalized
	}
	if draft.State() == DraftConfiguring {
		return nil, ErrNotConfigured
	}
	if draft.Valuation() <= 0 {
		return nil, ErrUnrated
	}
	if draft.Type() == domain.ShowPLE && draft.Name() == "" {
		return nil, ErrEventNotChosen
	}
	for _, seg := range draft.Segments() {
		if seg.Kind == domain.SegmentMatch && !seg.Match.Decided() {
			return nil, ErrUndecidedMatch
		}
	}

	brand := draft.Brand()
	var brandID *int64
	if brand.Name != domain.BrandShared {
		id := brand.ID
		brandID = &id
	}

	existing, err := s.shows.GetBySlot(ctx, brandID, draft.Season(), draft.Week())
	if err != nil {
		return nil, fmt.Errorf("failed to check show slot: %w", err)
	}
	if existing != nil && existing.Produced() {
		draft.state = DraftRejected
		s.logger.Warn().
			Str("brand", brand.Name).
			Int("season", draft.Season()).
			Int("week", draft.Week()).
			Msg("show slot already produced, rejecting draft")
		return nil, ErrDuplicateShow
	}

	name := draft.Name()
	if name == "" {
		if weekly, ok := seed.WeeklyShowName(brand.Name); ok {
			name = weekly
		} else {
			name = brand.Name + " Weekly"
		}
	}

	show := &domain.Show{
		Name:      name,
		Date:      time.Now(),
		BrandID:   brandID,
		Type:      draft.Type(),
		Season:    draft.Season(),
		Week:      draft.Week(),
		Valuation: draft.Valuation(),
		Card:      domain.Card{Segments: draft.Segments()},
	}
	show.ID, err = s.shows.Insert(ctx, show)
	if err != nil {
		return nil, fmt.Errorf("failed to persist show: %w", err)
	}
	draft.state = DraftSaved

	var firstErr error
	for _, seg := range show.Card.Segments {
		if seg.Kind != domain.SegmentMatch {
			continue
		}
		if err := s.applyTitleChange(ctx, seg.Match); err != nil {
			s.logger.Error().Err(err).Str("segment_id", seg.ID).Msg("failed to apply title change")
			if firstErr == nil {
				firstErr = err
			}
		}
		if err := s.applyStatistics(ctx, seg.Match); err != nil {
			s.logger.Error().Err(err).Str("segment_id", seg.ID).Msg("failed to apply match statistics")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := s.exportShow(show); err != nil {
		s.logger.Warn().Err(err).Str("show", show.Name).Msg("failed to export show dump")
	}

	s.logger.Info().
		Str("show", show.Name).
		Str("brand", brand.Name).
		Int("season", show.Season).
		Int("week", show.Week).
		Int("segments", len(show.Card.Segments)).
		Msg("show saved")
	return show, firstErr
}

// applyTitleChange routes a decided title match through the resolver.
// Retained champions and no-contests leave the holdership untouched.
func (s *ShowService) applyTitleChange(ctx context.Context, m *domain.Match) error {
	if !m.TitleMatch || m.ChampionshipID == nil || !m.Decided() || m.NoContest() {
		return nil
	}
	title, err := s.titles.Get(ctx, *m.ChampionshipID)
	if err != nil {
		return fmt.Errorf("failed to load championship %d: %w", *m.ChampionshipID, err)
	}
	if title == nil {
		s.logger.Warn().Int64("championship_id", *m.ChampionshipID).Msg("championship not found, skipping title change")
		return nil
	}
	if sameIDSet(title.CurrentChampionIDs, m.WinnerIDs) {
		return nil
	}
	return s.resolver.AssignHolders(ctx, title.ID, m.WinnerIDs)
}

// applyStatistics bumps win/loss/draw counters for every real
// participant of a decided match.
func (s *ShowService) applyStatistics(ctx context.Context, m *domain.Match) error {
	var firstErr error
	for _, pid := range m.ParticipantIDs {
		if pid == domain.UnassignedSlotID || pid == domain.NoContestID {
			continue
		}
		w, err := s.wrestlers.Get(ctx, pid)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to load wrestler %d: %w", pid, err)
			}
			continue
		}
		if w == nil {
			s.logger.Warn().Int64("wrestler_id", pid).Msg("participant not found, skipping statistics")
			continue
		}
		switch {
		case m.NoContest():
			w.Draws++
		case m.Won(pid):
			w.Wins++
		default:
			w.Losses++
		}
		if err := s.wrestlers.Update(ctx, w); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to update wrestler %d: %w", pid, err)
			}
		}
	}
	return firstErr
}

// exportShow writes a pretty-printed JSON dump of the committed show
// next to the database, one file per show.
func (s *ShowService) exportShow(show *domain.Show) error {
	if s.exportDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	data, err := json.MarshalIndent(show, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal show: %w", err)
	}
	name := fmt.Sprintf("%s_S%dW%d.json", strings.ReplaceAll(show.Name, " ", "_"), show.Season, show.Week)
	return os.WriteFile(filepath.Join(s.exportDir, name), data, 0o644)
}

// SuggestNextSlot proposes the season/week following the brand's last
// produced show, rolling into a new season after the final week.
func (s *ShowService) SuggestNextSlot(ctx context.Context, brandID int64) (season, week int, err error) {
	last, err := s.shows.LatestForBrand(ctx, brandID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load latest show: %w", err)
	}
	if last == nil {
		return 1, 1, nil
	}
	if last.Week < domain.WeeksPerSeason {
		return last.Season, last.Week + 1, nil
	}
	return last.Season + 1, 1, nil
}

// SetMatchTitle marks a draft match as a title match and prefills the
// current champions into the leading participant slots, locking them.
// Passing nil clears the title stake and unlocks all slots.
func (s *ShowService) SetMatchTitle(ctx context.Context, draft *ShowDraft, segmentID string, championshipID *int64) error {
	m, err := s.draftMatch(draft, segmentID)
	if err != nil {
		return err
	}
	m.WinnerIDs = nil
	if championshipID == nil {
		m.TitleMatch = false
		m.ChampionshipID = nil
		return nil
	}
	title, err := s.titles.Get(ctx, *championshipID)
	if err != nil {
		return fmt.Errorf("failed to load championship %d: %w", *championshipID, err)
	}
	if title == nil {
		return ErrChampionshipNotFound
	}
	m.TitleMatch = true
	m.ChampionshipID = &title.ID
	for i := range m.ParticipantIDs {
		m.ParticipantIDs[i] = domain.UnassignedSlotID
	}
	champions := sanitizeHolders(title.CurrentChampionIDs, title.HolderCap())
	for i, id := range champions {
		if i >= len(m.ParticipantIDs) {
			break
		}
		m.ParticipantIDs[i] = id
	}
	return nil
}

// SetMatchFormat swaps the match format, resizing the participant
// slots and re-prefilling champions when a title is at stake.
func (s *ShowService) SetMatchFormat(ctx context.Context, draft *ShowDraft, segmentID string, format domain.MatchFormat) error {
	m, err := s.draftMatch(draft, segmentID)
	if err != nil {
		return err
	}
	m.Format = format
	m.ParticipantIDs = make([]int64, format.ParticipantCount())
	m.WinnerIDs = nil
	if m.TitleMatch && m.ChampionshipID != nil {
		return s.SetMatchTitle(ctx, draft, segmentID, m.ChampionshipID)
	}
	return nil
}

// SetParticipant books a wrestler into a participant slot. Slots
// holding the defending champions are locked. In a tag match, booking
// one wrestler auto-suggests a stablemate into the adjacent partner
// slot when one is free.
func (s *ShowService) SetParticipant(ctx context.Context, draft *ShowDraft, segmentID string, slot int, wrestlerID int64) error {
	m, err := s.draftMatch(draft, segmentID)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= len(m.ParticipantIDs) {
		return ErrInvalidSlot
	}
	if m.TitleMatch && m.ChampionshipID != nil {
		title, err := s.titles.Get(ctx, *m.ChampionshipID)
		if err != nil {
			return fmt.Errorf("failed to load championship %d: %w", *m.ChampionshipID, err)
		}
		if title != nil && title.HasChampion(m.ParticipantIDs[slot]) {
			return ErrSlotLocked
		}
	}
	m.ParticipantIDs[slot] = wrestlerID
	m.WinnerIDs = nil

	if m.Format == domain.FormatTagTeam && wrestlerID != domain.UnassignedSlotID {
		s.suggestTagPartner(ctx, m, slot, wrestlerID)
	}
	return nil
}

// suggestTagPartner fills the empty partner slot adjacent to the newly
// booked wrestler with a matching stablemate, best effort.
func (s *ShowService) suggestTagPartner(ctx context.Context, m *domain.Match, slot int, wrestlerID int64) {
	partnerSlot := slot ^ 1 // pairs are (0,1) and (2,3)
	if partnerSlot >= len(m.ParticipantIDs) || m.ParticipantIDs[partnerSlot] != domain.UnassignedSlotID {
		return
	}
	pick, err := s.wrestlers.Get(ctx, wrestlerID)
	if err != nil || pick == nil {
		return
	}
	pool, err := s.wrestlers.List(ctx)
	if err != nil {
		return
	}
	if partnerID, ok := domain.SuggestPartner(*pick, m.ParticipantIDs, pool); ok {
		m.ParticipantIDs[partnerSlot] = partnerID
		s.logger.Debug().
			Int64("wrestler_id", wrestlerID).
			Int64("partner_id", partnerID).
			Msg("auto-booked tag partner")
	}
}

// SetWinners records the match outcome: the winning id (or pair), or a
// single no-contest sentinel. Winners must be booked participants.
func (s *ShowService) SetWinners(ctx context.Context, draft *ShowDraft, segmentID string, winnerIDs []int64) error {
	m, err := s.draftMatch(draft, segmentID)
	if err != nil {
		return err
	}
	if len(winnerIDs) == 1 && winnerIDs[0] == domain.NoContestID {
		m.WinnerIDs = []int64{domain.NoContestID}
		return nil
	}
	if len(winnerIDs) != m.Format.WinnerCount() {
		return ErrInvalidWinners
	}
	for _, id := range winnerIDs {
		if id == domain.UnassignedSlotID || !containsID(m.ParticipantIDs, id) {
			return ErrInvalidWinners
		}
	}
	m.WinnerIDs = winnerIDs
	return nil
}

func (s *ShowService) draftMatch(draft *ShowDraft, segmentID string) (*domain.Match, error) {
	if draft.Finalized() {
		return nil, ErrDraftFinalized
	}
	seg, err := draft.Segment(segmentID)
	if err != nil {
		return nil, err
	}
	if seg.Kind != domain.SegmentMatch || seg.Match == nil {
		return nil, ErrNotMatch
	}
	return seg.Match, nil
}
