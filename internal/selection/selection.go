// Package selection tracks which listing matches the user has ticked for a
// bulk export. Enumeration follows the order matches were added.
package selection

import "github.com/pfrederiksen/hltv-cal/internal/match"

// Set is an insertion-ordered collection of matches keyed by ID. It has a
// single owner and is not safe for concurrent use.
type Set struct {
	order []string
	items map[string]*match.Match
}

// New creates an empty set
func New() *Set {
	return &Set{items: make(map[string]*match.Match)}
}

// Add inserts m, reporting false if its ID is already selected
func (s *Set) Add(m *match.Match) bool {
	if _, exists := s.items[m.ID]; exists {
		return false
	}
	s.items[m.ID] = m
	s.order = append(s.order, m.ID)
	return true
}

// Remove deletes the match with id, reporting whether it was selected
func (s *Set) Remove(id string) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips the selection state of m and returns the new state, like a
// checkbox change.
func (s *Set) Toggle(m *match.Match) bool {
	if s.Has(m.ID) {
		s.Remove(m.ID)
		return false
	}
	s.Add(m)
	return true
}

// Has reports whether id is selected
func (s *Set) Has(id string) bool {
	_, exists := s.items[id]
	return exists
}

// Len returns the number of selected matches
func (s *Set) Len() int {
	return len(s.order)
}

// Clear deselects everything
func (s *Set) Clear() {
	s.order = nil
	s.items = make(map[string]*match.Match)
}

// Matches returns the selected matches in insertion order
func (s *Set) Matches() []*match.Match {
	out := make([]*match.Match, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}
