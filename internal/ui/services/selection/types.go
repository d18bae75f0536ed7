package selection

import "chipselect/internal/domain"

// State holds the two-way partition of the candidate set.
// Available and Selected are disjoint and together always hold exactly
// the items of Candidates.
type State struct {
	Candidates []*domain.Item // candidate order, as supplied
	Available  []*domain.Item // display order
	Selected   []*domain.Item // selection order
}
