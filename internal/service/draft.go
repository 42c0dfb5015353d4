package service

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"wrestling-hub/internal/domain"
)

// DraftState tracks where a show draft sits in its lifecycle. Saved and
// Rejected are terminal.
type DraftState int

const (
	DraftConfiguring DraftState = iota
	DraftDrafting
	DraftRating
	DraftSaved
	DraftRejected
)

func (s DraftState) String() string {
	switch s {
	case DraftConfiguring:
		return "configuring"
	case DraftDrafting:
		return "drafting"
	case DraftRating:
		return "rating"
	case DraftSaved:
		return "saved"
	case DraftRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ShowDraft is an in-progress show being booked for a single brand. It
// accumulates card segments and an overall valuation before being
// committed through ShowService.Save. A draft is not safe for
// concurrent use.
type ShowDraft struct {
	state     DraftState
	brand     domain.Brand
	showType  domain.ShowType
	name      string
	season    int
	week      int
	valuation float64
	segments  []domain.Segment
}

// NewDraft starts a draft for the given brand. Weekly drafts inherit
// their name later from the brand's weekly show; premium drafts must
// have an event name chosen before segments can be added.
func NewDraft(brand domain.Brand, showType domain.ShowType) *ShowDraft {
	return &ShowDraft{
		state:    DraftConfiguring,
		brand:    brand,
		showType: showType,
	}
}

// Configure pins the draft to a season/week slot and opens it for
// segment booking.
func (d *ShowDraft) Configure(season, week int) error {
	if d.Finalized() {
		return ErrDraftFinalized
	}
	if season < 1 || week < 1 || week > domain.WeeksPerSeason {
		return ErrInvalidSlot
	}
	d.season = season
	d.week = week
	if d.state == DraftConfiguring {
		d.state = DraftDrafting
	}
	return nil
}

// SetName chooses the event name. Required for premium events before
// any segment is added; weekly shows fall back to the brand's weekly
// show name at save time.
func (d *ShowDraft) SetName(name string) error {
	if d.Finalized() {
		return ErrDraftFinalized
	}
	d.name = name
	return nil
}

// AddSegment appends a fresh segment of the given kind to the card and
// returns it for population. Adding is gated: the draft must be
// configured, premium drafts need an event name, and the previous
// match must be decided before the card grows.
func (d *ShowDraft) AddSegment(kind domain.SegmentKind, format domain.MatchFormat) (*domain.Segment, error) {
	if d.Finalized() {
		return nil, ErrDraftFinalized
	}
	if d.state == DraftConfiguring {
		return nil, ErrNotConfigured
	}
	if d.showType == domain.ShowPLE && d.name == "" {
		return nil, ErrEventNotChosen
	}
	for i := range d.segments {
		seg := &d.segments[i]
		if seg.Kind == domain.SegmentMatch && !seg.Match.Decided() {
			return nil, ErrUndecidedMatch
		}
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	seg := domain.Segment{ID: id, Kind: kind}
	switch kind {
	case domain.SegmentMatch:
		seg.Match = &domain.Match{
			Format:         format,
			ParticipantIDs: make([]int64, format.ParticipantCount()),
		}
	case domain.SegmentPromo:
		seg.Promo = &domain.Promo{}
	case domain.SegmentVideo:
		seg.Video = &domain.Video{}
	default:
		return nil, ErrUnknownSegment
	}
	d.segments = append(d.segments, seg)
	return &d.segments[len(d.segments)-1], nil
}

// AttachSegment appends an already-built segment, used when a caller
// replays a card assembled elsewhere. The same gating as AddSegment
// applies.
func (d *ShowDraft) AttachSegment(seg domain.Segment) error {
	if d.Finalized() {
		return ErrDraftFinalized
	}
	if d.state == DraftConfiguring {
		return ErrNotConfigured
	}
	if d.showType == domain.ShowPLE && d.name == "" {
		return ErrEventNotChosen
	}
	if seg.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		seg.ID = id
	}
	d.segments = append(d.segments, seg)
	return nil
}

// RemoveSegment drops the segment with the given id from the card.
func (d *ShowDraft) RemoveSegment(id string) error {
	if d.Finalized() {
		return ErrDraftFinalized
	}
	for i := range d.segments {
		if d.segments[i].ID == id {
			d.segments = append(d.segments[:i], d.segments[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSegment
}

// Segment returns the live segment with the given id.
func (d *ShowDraft) Segment(id string) (*domain.Segment, error) {
	for i := range d.segments {
		if d.segments[i].ID == id {
			return &d.segments[i], nil
		}
	}
	return nil, ErrUnknownSegment
}

// SetValuation records the overall show rating on the 0-10 scale. A
// positive valuation moves the draft into the rating stage, making it
// eligible for saving.
func (d *ShowDraft) SetValuation(v float64) error {
	if d.Finalized() {
		return ErrDraftFinalized
	}
	if d.state == DraftConfiguring {
		return ErrNotConfigured
	}
	if v < 0 || v > 10 {
		return ErrUnrated
	}
	d.valuation = v
	if v > 0 {
		d.state = DraftRating
	}
	return nil
}

// Finalized reports whether the draft reached a terminal state.
func (d *ShowDraft) Finalized() bool {
	return d.state == DraftSaved || d.state == DraftRejected
}

func (d *ShowDraft) State() DraftState        { return d.state }
func (d *ShowDraft) Brand() domain.Brand      { return d.brand }
func (d *ShowDraft) Type() domain.ShowType    { return d.showType }
func (d *ShowDraft) Name() string             { return d.name }
func (d *ShowDraft) Season() int              { return d.season }
func (d *ShowDraft) Week() int                { return d.week }
func (d *ShowDraft) Valuation() float64       { return d.valuation }
func (d *ShowDraft) Segments() []domain.Segment { return d.segments }
