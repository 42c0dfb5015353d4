package service

import "errors"

var (
	// ErrDuplicateShow signals a (brand, season, week) collision; the
	// draft is rejected and nothing is written.
	ErrDuplicateShow = errors.New("a show already exists for this brand, season and week")

	// ErrUndecidedMatch blocks adding segments or saving while a match
	// still has no winner assigned.
	ErrUndecidedMatch = errors.New("a match segment has no winner assigned")

	// ErrEventNotChosen blocks premium drafts until a named event is
	// picked.
	ErrEventNotChosen = errors.New("no premium event chosen")

	// ErrUnrated blocks saving until the overall valuation is set.
	ErrUnrated = errors.New("show valuation must be set before saving")

	ErrNotConfigured  = errors.New("draft season and week are not configured")
	ErrDraftFinalized = errors.New("draft is already finalized")
	ErrInvalidSlot    = errors.New("season and week must be positive")
	ErrSlotLocked     = errors.New("participant slot is reserved for the current champion")
	ErrUnknownSegment = errors.New("segment not found in draft")
	ErrNotMatch       = errors.New("segment is not a match")
	ErrInvalidWinners = errors.New("winner set does not fit the match")

	ErrWrestlerNotFound     = errors.New("wrestler not found")
	ErrChampionshipNotFound = errors.New("championship not found")

	// ErrInvalidSnapshot rejects import payloads without a wrestlers
	// array before any write happens.
	ErrInvalidSnapshot = errors.New("invalid snapshot: missing wrestlers")
)
