package domain

// SuggestPartner picks a tag partner for the chosen wrestler: same
// faction, same gender, not the wrestler itself and not already booked
// in the match. The first matching pool entry wins. The boolean is
// false when no partner qualifies.
func SuggestPartner(pick Wrestler, selections []int64, pool []Wrestler) (int64, bool) {
	if pick.Faction == "" {
		return 0, false
	}

	booked := make(map[int64]bool, len(selections)+1)
	booked[pick.ID] = true
	for _, id := range selections {
		booked[id] = true
	}

	for _, candidate := range pool {
		if booked[candidate.ID] {
			continue
		}
		if candidate.Faction == pick.Faction && candidate.Gender == pick.Gender {
			return candidate.ID, true
		}
	}
	return 0, false
}
