package briefs

import "sort"

// SelectTop sorts the candidate pool descending by composite score and
// truncates to count. The sort is stable: equal scores keep their encounter
// order (category processing order, then model return order within a
// category), so repeated runs over identical input produce identical output.
func SelectTop(pool []Scored, count int) []Scored {
	selected := make([]Scored, len(pool))
	copy(selected, pool)

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].CompositeScore > selected[j].CompositeScore
	})

	if count < len(selected) {
		selected = selected[:count]
	}
	return selected
}
