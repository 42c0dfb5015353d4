package service

import (
	"errors"
	"testing"

	"wrestling-hub/internal/domain"
)

func configuredDraft(t *testing.T, showType domain.ShowType) *ShowDraft {
	t.Helper()
	d := NewDraft(domain.Brand{ID: 1, Name: "RAW"}, showType)
	if err := d.Configure(1, 1); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return d
}

func TestDraftRequiresConfiguration(t *testing.T) {
	d := NewDraft(domain.Brand{ID: 1, Name: "RAW"}, domain.ShowWeekly)
	if _, err := d.AddSegment(domain.SegmentMatch, domain.FormatSingles); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("AddSegment before Configure = %v, want ErrNotConfigured", err)
	}
	if err := d.SetValuation(5); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("SetValuation before Configure = %v, want ErrNotConfigured", err)
	}
}

func TestDraftConfigureValidatesSlot(t *testing.T) {
	d := NewDraft(domain.Brand{ID: 1, Name: "RAW"}, domain.ShowWeekly)
	for _, tc := range []struct{ season, week int }{
		{0, 1},
		{1, 0},
		{1, domain.WeeksPerSeason + 1},
	} {
		if err := d.Configure(tc.season, tc.week); !errors.Is(err, ErrInvalidSlot) {
			t.Errorf("Configure(%d, %d) = %v, want ErrInvalidSlot", tc.season, tc.week, err)
		}
	}
}

func TestDraftPremiumNeedsEventName(t *testing.T) {
	d := configuredDraft(t, domain.ShowPLE)
	if _, err := d.AddSegment(domain.SegmentMatch, domain.FormatSingles); !errors.Is(err, ErrEventNotChosen) {
		t.Fatalf("AddSegment without event name = %v, want ErrEventNotChosen", err)
	}
	if err := d.SetName("WrestleMania"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if _, err := d.AddSegment(domain.SegmentMatch, domain.FormatSingles); err != nil {
		t.Fatalf("AddSegment after naming = %v", err)
	}
}

func TestDraftUndecidedMatchBlocksNewSegments(t *testing.T) {
	d := configuredDraft(t, domain.ShowWeekly)
	seg, err := d.AddSegment(domain.SegmentMatch, domain.FormatSingles)
	if err != nil {
		t.Fatalf("AddSegment: %v", err)
	}
	if _, err := d.AddSegment(domain.SegmentPromo, ""); !errors.Is(err, ErrUndecidedMatch) {
		t.Fatalf("second AddSegment = %v, want ErrUndecidedMatch", err)
	}
	seg.Match.WinnerIDs = []int64{domain.NoContestID}
	if _, err := d.AddSegment(domain.SegmentPromo, ""); err != nil {
		t.Fatalf("AddSegment after decision = %v", err)
	}
}

func TestDraftSegmentShapes(t *testing.T) {
	d := configuredDraft(t, domain.ShowWeekly)
	seg, err := d.AddSegment(domain.SegmentMatch, domain.FormatFatalFourWay)
	if err != nil {
		t.Fatalf("AddSegment: %v", err)
	}
	if seg.ID == "" {
		t.Error("segment should get an id")
	}
	if got := len(seg.Match.ParticipantIDs); got != 4 {
		t.Errorf("participant slots = %d, want 4", got)
	}
	if _, err := d.AddSegment("Backstage", ""); !errors.Is(err, ErrUnknownSegment) {
		t.Errorf("unknown kind = %v, want ErrUnknownSegment", err)
	}
}

func TestDraftRemoveSegment(t *testing.T) {
	d := configuredDraft(t, domain.ShowWeekly)
	seg, _ := d.AddSegment(domain.SegmentVideo, "")
	if err := d.RemoveSegment(seg.ID); err != nil {
		t.Fatalf("RemoveSegment: %v", err)
	}
	if len(d.Segments()) != 0 {
		t.Error("segment not removed")
	}
	if err := d.RemoveSegment("nope"); !errors.Is(err, ErrUnknownSegment) {
		t.Errorf("RemoveSegment(unknown) = %v, want ErrUnknownSegment", err)
	}
}

func TestDraftValuation(t *testing.T) {
	d := configuredDraft(t, domain.ShowWeekly)
	if err := d.SetValuation(11); !errors.Is(err, ErrUnrated) {
		t.Errorf("SetValuation(11) = %v, want ErrUnrated", err)
	}
	if err := d.SetValuation(7.5); err != nil {
		t.Fatalf("SetValuation: %v", err)
	}
	if d.State() != DraftRating {
		t.Errorf("state = %v, want rating", d.State())
	}
}

func TestDraftFinalizedIsFrozen(t *testing.T) {
	d := configuredDraft(t, domain.ShowWeekly)
	d.state = DraftSaved
	if _, err := d.AddSegment(domain.SegmentPromo, ""); !errors.Is(err, ErrDraftFinalized) {
		t.Errorf("AddSegment on saved draft = %v, want ErrDraftFinalized", err)
	}
	if err := d.SetValuation(5); !errors.Is(err, ErrDraftFinalized) {
		t.Errorf("SetValuation on saved draft = %v, want ErrDraftFinalized", err)
	}
	if err := d.SetName("x"); !errors.Is(err, ErrDraftFinalized) {
		t.Errorf("SetName on saved draft = %v, want ErrDraftFinalized", err)
	}
}
