package domain

import "testing"

func TestWrestlerTitleLedger(t *testing.T) {
	var w Wrestler

	w.AddTitle(10)
	if !w.HoldsTitle(10) {
		t.Fatal("title not held after AddTitle")
	}
	w.AddTitle(10)
	if len(w.CurrentTitleIDs) != 1 || len(w.HistoricalTitleIDs) != 1 {
		t.Errorf("double add must be idempotent: current=%v historical=%v", w.CurrentTitleIDs, w.HistoricalTitleIDs)
	}

	w.RemoveTitle(10)
	if w.HoldsTitle(10) {
		t.Error("title still held after RemoveTitle")
	}
	if len(w.HistoricalTitleIDs) != 1 {
		t.Error("historical ledger must survive the loss")
	}

	w.AddTitle(10)
	if len(w.HistoricalTitleIDs) != 1 {
		t.Errorf("regaining a title must not duplicate history: %v", w.HistoricalTitleIDs)
	}
}

func TestChampionshipClassification(t *testing.T) {
	tests := []struct {
		name    string
		tagTeam bool
		womens  bool
		cap     int
	}{
		{"WWE Champion", false, false, 1},
		{"WWE Women Champion", false, true, 1},
		{"WWE Tag Team Champions", true, false, 2},
		{"NXT TAG TEAM Champions", true, false, 2},
		{"Intercontinental Women Champion", false, true, 1},
	}
	for _, tt := range tests {
		c := Championship{Name: tt.name}
		if got := c.IsTagTeam(); got != tt.tagTeam {
			t.Errorf("%q IsTagTeam = %v, want %v", tt.name, got, tt.tagTeam)
		}
		if got := c.IsWomens(); got != tt.womens {
			t.Errorf("%q IsWomens = %v, want %v", tt.name, got, tt.womens)
		}
		if got := c.HolderCap(); got != tt.cap {
			t.Errorf("%q HolderCap = %d, want %d", tt.name, got, tt.cap)
		}
	}
}

func TestMatchFormatCounts(t *testing.T) {
	tests := []struct {
		format       MatchFormat
		participants int
		winners      int
	}{
		{FormatSingles, 2, 1},
		{FormatNoDQ, 2, 1},
		{FormatTripleThreat, 3, 1},
		{FormatFatalFourWay, 4, 1},
		{FormatTagTeam, 4, 2},
	}
	for _, tt := range tests {
		if got := tt.format.ParticipantCount(); got != tt.participants {
			t.Errorf("%q participants = %d, want %d", tt.format, got, tt.participants)
		}
		if got := tt.format.WinnerCount(); got != tt.winners {
			t.Errorf("%q winners = %d, want %d", tt.format, got, tt.winners)
		}
	}
}

func TestMatchOutcome(t *testing.T) {
	m := Match{ParticipantIDs: []int64{1, 2}}
	if m.Decided() {
		t.Error("fresh match must be undecided")
	}

	m.WinnerIDs = []int64{NoContestID}
	if !m.Decided() || !m.NoContest() {
		t.Error("no-contest is a decision without a winner")
	}

	m.WinnerIDs = []int64{2}
	if m.NoContest() {
		t.Error("regular decision flagged as no-contest")
	}
	if !m.Won(2) || m.Won(1) {
		t.Error("winner membership wrong")
	}
}

func TestShowProduced(t *testing.T) {
	placeholder := Show{Name: "Monday Night RAW"}
	if placeholder.Produced() {
		t.Error("cardless show reported as produced")
	}
	booked := Show{Card: Card{Segments: []Segment{{ID: "a", Kind: SegmentVideo, Video: &Video{}}}}}
	if !booked.Produced() {
		t.Error("show with a card reported as placeholder")
	}
}
