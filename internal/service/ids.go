package service

import "wrestling-hub/internal/domain"

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// sameIDSet compares ignoring order and duplicates.
func sameIDSet(a, b []int64) bool {
	seen := make(map[int64]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	other := make(map[int64]bool, len(b))
	for _, id := range b {
		other[id] = true
	}
	for _, id := range a {
		if !other[id] {
			return false
		}
	}
	return true
}

// diffIDs returns the members of a that are not in b, in a's order.
func diffIDs(a, b []int64) []int64 {
	var out []int64
	for _, id := range a {
		if !containsID(b, id) {
			out = append(out, id)
		}
	}
	return out
}

func wrestlerIDs(wrestlers []domain.Wrestler) []int64 {
	ids := make([]int64, len(wrestlers))
	for i, w := range wrestlers {
		ids[i] = w.ID
	}
	return ids
}

// sanitizeHolders drops slot sentinels and duplicates and caps the set
// at the title's holder capacity.
func sanitizeHolders(ids []int64, limit int) []int64 {
	var clean []int64
	for _, id := range ids {
		if id == domain.UnassignedSlotID || id == domain.NoContestID {
			continue
		}
		if containsID(clean, id) {
			continue
		}
		clean = append(clean, id)
		if len(clean) == limit {
			break
		}
	}
	return clean
}
