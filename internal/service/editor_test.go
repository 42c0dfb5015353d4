package service

import (
	"context"
	"errors"
	"testing"

	"wrestling-hub/internal/domain"

	"github.com/rs/zerolog"
)

func newEditorFixture(t *testing.T) (*EditorService, *memWrestlers, *memTitles) {
	t.Helper()
	wrestlers := newMemWrestlers(
		domain.Wrestler{ID: 1, Name: "Holder", BrandID: int64Ptr(1), CurrentTitleIDs: []int64{10}, HistoricalTitleIDs: []int64{10}},
		domain.Wrestler{ID: 2, Name: "Rival", BrandID: int64Ptr(1)},
	)
	titles := newMemTitles(
		domain.Championship{ID: 10, Name: "WWE Champion", CurrentChampionIDs: []int64{1}},
		domain.Championship{ID: 11, Name: "United States Champion"},
	)
	resolver := NewTitleResolver(wrestlers, titles, zerolog.Nop())
	return NewEditorService(wrestlers, titles, resolver, zerolog.Nop()), wrestlers, titles
}

func TestApplyEditSwapsTitles(t *testing.T) {
	svc, wrestlers, titles := newEditorFixture(t)

	got, err := svc.ApplyEdit(context.Background(), 1, WrestlerEdit{TitleIDs: &[]int64{11}})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if got.HoldsTitle(10) || !got.HoldsTitle(11) {
		t.Errorf("holdings = %v, want only [11]", got.CurrentTitleIDs)
	}
	if len(got.HistoricalTitleIDs) != 2 {
		t.Errorf("historical = %v, want both titles", got.HistoricalTitleIDs)
	}

	old, _ := titles.Get(context.Background(), 10)
	if old.HasChampion(1) {
		t.Error("vacated title still lists the wrestler")
	}
	neu, _ := titles.Get(context.Background(), 11)
	if !neu.HasChampion(1) {
		t.Error("granted title does not list the wrestler")
	}
	stored, _ := wrestlers.Get(context.Background(), 1)
	if !stored.HoldsTitle(11) {
		t.Error("edit not persisted")
	}
}

func TestApplyEditGrantEvictsCurrentHolder(t *testing.T) {
	svc, wrestlers, titles := newEditorFixture(t)

	if _, err := svc.ApplyEdit(context.Background(), 2, WrestlerEdit{TitleIDs: &[]int64{10}}); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	former, _ := wrestlers.Get(context.Background(), 1)
	if former.HoldsTitle(10) {
		t.Error("previous holder kept a singular title")
	}
	title, _ := titles.Get(context.Background(), 10)
	if len(title.CurrentChampionIDs) != 1 || title.CurrentChampionIDs[0] != 2 {
		t.Errorf("holder set = %v, want [2]", title.CurrentChampionIDs)
	}
}

func TestApplyEditScalarFields(t *testing.T) {
	svc, wrestlers, _ := newEditorFixture(t)
	heel := domain.AlignmentHeel
	faction := "The Bloodline"
	rating := 95

	if _, err := svc.ApplyEdit(context.Background(), 2, WrestlerEdit{
		Alignment: &heel,
		Faction:   &faction,
		Rating:    &rating,
		FreeAgent: true,
	}); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	w, _ := wrestlers.Get(context.Background(), 2)
	if w.Alignment != heel || w.Faction != faction || w.Rating != 95 {
		t.Errorf("scalars not applied: %+v", w)
	}
	if w.BrandID != nil {
		t.Error("free agent release should clear the brand")
	}
}

func TestApplyEditUntouchedFieldsSurvive(t *testing.T) {
	svc, wrestlers, _ := newEditorFixture(t)

	if _, err := svc.ApplyEdit(context.Background(), 1, WrestlerEdit{}); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	w, _ := wrestlers.Get(context.Background(), 1)
	if !w.HoldsTitle(10) || w.BrandID == nil {
		t.Errorf("empty edit changed the wrestler: %+v", w)
	}
}

func TestApplyEditGatesTitleByDivision(t *testing.T) {
	wrestlers := newMemWrestlers(
		domain.Wrestler{ID: 1, Name: "Him", BrandID: int64Ptr(1), Gender: domain.GenderMale},
		domain.Wrestler{ID: 2, Name: "Her", BrandID: int64Ptr(1), Gender: domain.GenderFemale},
	)
	titles := newMemTitles(domain.Championship{ID: 12, Name: "WWE Women Champion"})
	resolver := NewTitleResolver(wrestlers, titles, zerolog.Nop())
	svc := NewEditorService(wrestlers, titles, resolver, zerolog.Nop())

	him, err := svc.ApplyEdit(context.Background(), 1, WrestlerEdit{TitleIDs: &[]int64{12}})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if him.HoldsTitle(12) {
		t.Error("men's division wrestler granted a women's title")
	}

	her, err := svc.ApplyEdit(context.Background(), 2, WrestlerEdit{TitleIDs: &[]int64{12}})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if !her.HoldsTitle(12) {
		t.Error("eligible wrestler was not granted the title")
	}
}

func TestApplyEditUnknownWrestler(t *testing.T) {
	svc, _, _ := newEditorFixture(t)
	if _, err := svc.ApplyEdit(context.Background(), 404, WrestlerEdit{}); !errors.Is(err, ErrWrestlerNotFound) {
		t.Errorf("ApplyEdit = %v, want ErrWrestlerNotFound", err)
	}
}
