package lineup

import "slices"

// ResourceCount is how many candidates own a resource the slots require
type ResourceCount struct {
	Resource string
	// Count is the number of candidates owning the resource
	Count int
	// Required is the number of slots requiring the resource
	Required int
}

// ResourceOwnershipCounts returns, for each distinct resource in slots, the number
// of candidates that own it. Resources nobody owns are present with a count of 0.
func ResourceOwnershipCounts(candidates []*Candidate, slots SlotSpec) map[string]int {
	counts := make(map[string]int, slots.Len())
	for _, resource := range slots.Distinct() {
		counts[resource] = len(CandidatesOwning(resource, candidates))
	}
	return counts
}

// ScarcityRanking returns the distinct required resources rarest first.
// Resources with the same count keep the order in which they first appear in slots.
func ScarcityRanking(candidates []*Candidate, slots SlotSpec) []ResourceCount {
	distinct := slots.Distinct()
	ranking := make([]ResourceCount, 0, len(distinct))
	for _, resource := range distinct {
		ranking = append(ranking, ResourceCount{
			Resource: resource,
			Count:    len(CandidatesOwning(resource, candidates)),
			Required: slots.Count(resource),
		})
	}

	slices.SortStableFunc(ranking, func(a, b ResourceCount) int {
		return a.Count - b.Count
	})

	return ranking
}

// ScarcityPriorityOrder expands the scarcity ranking back to slot length: each
// resource appears once per slot that requires it, rarest resources first.
// The order is advisory and is not used by the engine.
func ScarcityPriorityOrder(candidates []*Candidate, slots SlotSpec) []string {
	order := make([]string, 0, slots.Len())
	for _, rc := range ScarcityRanking(candidates, slots) {
		for range rc.Required {
			order = append(order, rc.Resource)
		}
	}
	return order
}

// CandidatesOwning returns the candidates with an ownership record for the
// resource, in their original order
func CandidatesOwning(resource string, candidates []*Candidate) []*Candidate {
	var owners []*Candidate
	for _, candidate := range candidates {
		if candidate != nil && candidate.Owns(resource) {
			owners = append(owners, candidate)
		}
	}
	return owners
}
