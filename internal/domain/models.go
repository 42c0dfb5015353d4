package domain

import (
	"strings"
	"time"
)

// Pseudo-brands. SHARED hosts cross-brand events, FREE AGENT collects
// unaffiliated wrestlers and is excluded from normal roster listings.
const (
	BrandShared    = "SHARED"
	BrandFreeAgent = "FREE AGENT"
)

// Participant slot sentinels used inside match cards.
const (
	UnassignedSlotID int64 = 0
	NoContestID      int64 = -1
)

// TagHolderCap is the maximum number of simultaneous holders of a
// tag-team championship. Singular titles allow exactly one.
const TagHolderCap = 2

// WeeksPerSeason drives the season/week rollover when suggesting the
// next open slot for a brand.
const WeeksPerSeason = 4

// MaxPromoParticipants bounds how many wrestlers share a promo segment.
const MaxPromoParticipants = 6

type Brand struct {
	ID             int64
	Name           string
	PrimaryColor   string
	SecondaryColor string
	Logo           string
	Arena          string
	Music          string
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Alignment string

const (
	AlignmentFace    Alignment = "Face"
	AlignmentHeel    Alignment = "Heel"
	AlignmentTweener Alignment = "Tweener"
)

type Wrestler struct {
	ID                 int64
	Name               string
	BrandID            *int64 // nil means free agent
	Gender             Gender
	Alignment          Alignment
	Wins               int
	Losses             int
	Draws              int
	CurrentTitleIDs    []int64
	HistoricalTitleIDs []int64
	InjuryStatus       string
	Moral              int
	Contract           string
	Rating             int
	Faction            string
	Avatar             string
	Image              string
}

// HoldsTitle reports whether the wrestler currently holds the championship.
func (w *Wrestler) HoldsTitle(championshipID int64) bool {
	for _, id := range w.CurrentTitleIDs {
		if id == championshipID {
			return true
		}
	}
	return false
}

// AddTitle records the championship in the current holdings exactly once
// and appends it to the historical ledger on first contact.
func (w *Wrestler) AddTitle(championshipID int64) {
	if !w.HoldsTitle(championshipID) {
		w.CurrentTitleIDs = append(w.CurrentTitleIDs, championshipID)
	}
	for _, id := range w.HistoricalTitleIDs {
		if id == championshipID {
			return
		}
	}
	w.HistoricalTitleIDs = append(w.HistoricalTitleIDs, championshipID)
}

// RemoveTitle drops the championship from the current holdings. The
// historical ledger is append-only and never shrinks.
func (w *Wrestler) RemoveTitle(championshipID int64) {
	kept := w.CurrentTitleIDs[:0]
	for _, id := range w.CurrentTitleIDs {
		if id != championshipID {
			kept = append(kept, id)
		}
	}
	w.CurrentTitleIDs = kept
}

// ReignEntry is one contiguous period of holdership in a championship's
// history. TotalWeeks is an editable counter, not maintained here.
type ReignEntry struct {
	WrestlerName string `json:"wrestlerName"`
	ReignNumber  int    `json:"reignNumber"`
	TotalWeeks   int    `json:"totalWeeks"`
}

type Championship struct {
	ID      int64
	Name    string
	BrandID *int64 // nil means shared across brands
	Image   string
	// CurrentChampionIDs holds 0-2 wrestler ids: one for singular
	// titles, up to two for tag-team titles.
	CurrentChampionIDs []int64
	History            []ReignEntry
}

// IsTagTeam reports whether the title is held by a pair rather than a
// single wrestler, determined by its display name.
func (c *Championship) IsTagTeam() bool {
	return strings.Contains(strings.ToLower(c.Name), "tag team")
}

// IsWomens gates title eligibility by division.
func (c *Championship) IsWomens() bool {
	return strings.Contains(strings.ToLower(c.Name), "women")
}

// HolderCap returns how many wrestlers may hold the title at once.
func (c *Championship) HolderCap() int {
	if c.IsTagTeam() {
		return TagHolderCap
	}
	return 1
}

// HasChampion reports whether the wrestler is in the holder set.
func (c *Championship) HasChampion(wrestlerID int64) bool {
	for _, id := range c.CurrentChampionIDs {
		if id == wrestlerID {
			return true
		}
	}
	return false
}

type ShowType string

const (
	ShowWeekly  ShowType = "Weekly"
	ShowPLE     ShowType = "PLE"
	ShowSpecial ShowType = "Special"
)

type MatchFormat string

const (
	FormatSingles      MatchFormat = "1 vs 1 Singles"
	FormatNoDQ         MatchFormat = "1 vs 1 noDQ"
	FormatTripleThreat MatchFormat = "Triple Threat 1 vs 1 vs 1"
	FormatFatalFourWay MatchFormat = "Fatal 4-Way 1 vs 1 vs 1 vs 1"
	FormatTagTeam      MatchFormat = "2 vs 2 Tag Team"
)

// ParticipantCount returns the fixed slot count of the format.
func (f MatchFormat) ParticipantCount() int {
	switch f {
	case FormatTripleThreat:
		return 3
	case FormatFatalFourWay, FormatTagTeam:
		return 4
	default:
		return 2
	}
}

// WinnerCount returns how many ids a decided winner set carries: the
// winning pair for tag matches, a single wrestler otherwise.
func (f MatchFormat) WinnerCount() int {
	if f == FormatTagTeam {
		return 2
	}
	return 1
}

type SegmentKind string

const (
	SegmentMatch SegmentKind = "Match"
	SegmentPromo SegmentKind = "Promo"
	SegmentVideo SegmentKind = "Video"
)

type Match struct {
	TitleMatch     bool        `json:"titleMatch"`
	ChampionshipID *int64      `json:"championshipId,omitempty"`
	Format         MatchFormat `json:"format"`
	ParticipantIDs []int64     `json:"participantsIds"`
	// WinnerIDs is empty while undecided, [NoContestID] for a draw,
	// else one id (or the winning pair for tag matches).
	WinnerIDs []int64 `json:"winnersIds"`
	Rating    float64 `json:"rating"`
	Notes     string  `json:"notes,omitempty"`
}

// Decided reports whether a winner (or no-contest) has been assigned.
func (m *Match) Decided() bool {
	return len(m.WinnerIDs) > 0
}

// NoContest reports whether the match ended without a winner.
func (m *Match) NoContest() bool {
	for _, id := range m.WinnerIDs {
		if id == NoContestID {
			return true
		}
	}
	return false
}

// Won reports whether the participant is in the winner set.
func (m *Match) Won(wrestlerID int64) bool {
	for _, id := range m.WinnerIDs {
		if id == wrestlerID {
			return true
		}
	}
	return false
}

type Promo struct {
	ParticipantIDs []int64 `json:"participantsIds"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating,omitempty"`
}

type Video struct {
	Description string `json:"description"`
}

// Segment is one in-show moment. Exactly one of Match, Promo or Video
// is set, matching Kind. Segments are embedded in the show card and
// never persisted on their own.
type Segment struct {
	ID    string      `json:"id"`
	Kind  SegmentKind `json:"kind"`
	Match *Match      `json:"match,omitempty"`
	Promo *Promo      `json:"promo,omitempty"`
	Video *Video      `json:"video,omitempty"`
}

type Card struct {
	Segments []Segment `json:"segments"`
}

type Show struct {
	ID        int64
	Name      string
	Date      time.Time
	BrandID   *int64 // nil means shared event
	Type      ShowType
	Season    int
	Week      int
	Valuation float64 // 0-10 overall rating
	Image     string
	Card      Card
}

// Produced reports whether the show carries a committed card, as
// opposed to a cardless catalog placeholder.
func (s *Show) Produced() bool {
	return len(s.Card.Segments) > 0
}

type NPC struct {
	ID      int64
	Name    string
	Role    string
	BrandID *int64
	Image   string
	Music   string
}
