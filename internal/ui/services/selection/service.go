package selection

import (
	"log"
	"slices"

	"chipselect/internal/domain"
)

// Service owns the available/selected partition and moves items between
// the two sequences. Items are relocated, never copied or created.
type Service struct {
	state  *State
	gateFn func() bool // reports true while toggling is blocked
}

// NewService creates a selection service over the given candidates
func NewService(candidates []*domain.Item) *Service {
	s := &Service{state: &State{}}
	s.Reset(candidates)
	return s
}

// SetGate sets the function that blocks toggling while it returns true
func (s *Service) SetGate(fn func() bool) {
	s.gateFn = fn
}

// Reset replaces the candidate set. Every candidate becomes available and
// previous selections are forgotten.
func (s *Service) Reset(candidates []*domain.Item) {
	s.state.Candidates = slices.Clone(candidates)
	s.state.Available = slices.Clone(candidates)
	s.state.Selected = nil
}

// Toggle moves item from selected to the tail of available, or from
// available to the tail of selected. It reports whether anything moved.
// Unknown items and gated calls are ignored.
func (s *Service) Toggle(item *domain.Item) bool {
	if s.gateFn != nil && s.gateFn() {
		return false
	}
	if item == nil {
		return false
	}

	if index := slices.Index(s.state.Selected, item); index >= 0 {
		s.state.Selected = slices.Delete(s.state.Selected, index, index+1)
		s.state.Available = append(s.state.Available, item)
		return true
	}

	if index := slices.Index(s.state.Available, item); index >= 0 {
		s.state.Available = slices.Delete(s.state.Available, index, index+1)
		s.state.Selected = append(s.state.Selected, item)
		return true
	}

	return false
}

// ClearAll toggles the head of the selection until nothing is selected
// and returns the number of items moved back to available.
func (s *Service) ClearAll() int {
	moved := 0
	for len(s.state.Selected) > 0 {
		if !s.Toggle(s.state.Selected[0]) {
			// Gated: leave the rest where it is
			break
		}
		moved++
	}
	return moved
}

// ApplyValues re-partitions the candidates so that the selection holds the
// items matching values. Each entry claims the first unclaimed candidate
// with an equal Value; both sequences keep candidate order. Entries that
// match nothing are returned.
func (s *Service) ApplyValues(values []domain.Value) []domain.Value {
	claimed := make(map[*domain.Item]bool, len(values))
	var dropped []domain.Value

	for _, v := range values {
		found := false
		for _, item := range s.state.Candidates {
			if !claimed[item] && item.Value == v {
				claimed[item] = true
				found = true
				break
			}
		}
		if !found {
			dropped = append(dropped, v)
		}
	}

	available := make([]*domain.Item, 0, len(s.state.Candidates)-len(claimed))
	var selected []*domain.Item
	for _, item := range s.state.Candidates {
		if claimed[item] {
			selected = append(selected, item)
		} else {
			available = append(available, item)
		}
	}
	s.state.Available = available
	s.state.Selected = selected

	if len(dropped) > 0 {
		log.Printf("Selection: ignoring %d value(s) not in the candidate set: %v", len(dropped), dropped)
	}
	return dropped
}

// Candidates returns the candidate set in its original order
func (s *Service) Candidates() []*domain.Item {
	return slices.Clone(s.state.Candidates)
}

// Available returns a copy of the available sequence
func (s *Service) Available() []*domain.Item {
	return slices.Clone(s.state.Available)
}

// Selected returns a copy of the selected sequence
func (s *Service) Selected() []*domain.Item {
	return slices.Clone(s.state.Selected)
}

// IsSelected checks if an item is currently selected
func (s *Service) IsSelected(item *domain.Item) bool {
	return slices.Contains(s.state.Selected, item)
}

// Values returns the selected items' values, or nil when nothing is selected
func (s *Service) Values() []domain.Value {
	if len(s.state.Selected) == 0 {
		return nil
	}
	values := make([]domain.Value, len(s.state.Selected))
	for i, item := range s.state.Selected {
		values[i] = item.Value
	}
	return values
}

// GetCount returns the number of selected items
func (s *Service) GetCount() int {
	return len(s.state.Selected)
}

// Empty returns true if nothing is selected
func (s *Service) Empty() bool {
	return len(s.state.Selected) == 0
}

// Last returns the most recently selected item, or nil
func (s *Service) Last() *domain.Item {
	if len(s.state.Selected) == 0 {
		return nil
	}
	return s.state.Selected[len(s.state.Selected)-1]
}
