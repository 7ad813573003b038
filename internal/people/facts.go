package people

import "sort"

// AcquisitionFacts buckets people by the month-day of their created
// timestamp, counting each bucket. The year is discarded on purpose:
// people created in different years on the same calendar day land in one
// bucket. Output is ordered by day. A person with no resolved created
// timestamp has no acquisition day and is skipped.
func (p People) AcquisitionFacts() AcquisitionFacts {
	counts := make(map[string]int)
	for _, person := range p {
		if person.CreatedAt == nil {
			continue
		}
		counts[person.CreatedAt.Format("01-02")]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make(AcquisitionFacts, 0, len(days))
	for _, day := range days {
		out = append(out, AcquisitionFact{Date: day, Count: counts[day]})
	}
	return out
}
