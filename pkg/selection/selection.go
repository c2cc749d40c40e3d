// Package selection holds the ephemeral, per-session choices a user makes
// while building a checklist: discipline tags, extra tags and the ids of
// items already packed. Nothing here is persisted.
package selection

import (
	"sort"

	"github.com/arthur-debert/packlist/pkg/catalog"
)

// State is the mutable selection of a single session.
// It is not safe for concurrent use; callers serialize access.
type State struct {
	disciplines map[string]struct{}
	extras      map[string]struct{}
	checked     map[string]struct{}
}

// New returns an empty state
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset clears every selection
func (s *State) Reset() {
	s.disciplines = make(map[string]struct{})
	s.extras = make(map[string]struct{})
	s.checked = make(map[string]struct{})
}

// Clone returns an independent copy of the state
func (s *State) Clone() *State {
	return &State{
		disciplines: cloneSet(s.disciplines),
		extras:      cloneSet(s.extras),
		checked:     cloneSet(s.checked),
	}
}

// ToggleDiscipline flips membership of a discipline tag and reports whether
// it is selected afterwards
func (s *State) ToggleDiscipline(id string) bool {
	return toggle(s.disciplines, id)
}

// ToggleExtra flips membership of an extra tag and reports whether it is
// selected afterwards
func (s *State) ToggleExtra(id string) bool {
	return toggle(s.extras, id)
}

// ToggleChecked flips the packed state of an item and reports whether it is
// checked afterwards
func (s *State) ToggleChecked(id string) bool {
	return toggle(s.checked, id)
}

// SetDiscipline sets membership of a discipline tag
func (s *State) SetDiscipline(id string, on bool) {
	set(s.disciplines, id, on)
}

// SetExtra sets membership of an extra tag
func (s *State) SetExtra(id string, on bool) {
	set(s.extras, id, on)
}

// SetChecked sets the packed state of an item
func (s *State) SetChecked(id string, on bool) {
	set(s.checked, id, on)
}

// HasDiscipline reports whether the discipline is selected
func (s *State) HasDiscipline(id string) bool {
	_, ok := s.disciplines[id]
	return ok
}

// HasExtra reports whether the extra is selected
func (s *State) HasExtra(id string) bool {
	_, ok := s.extras[id]
	return ok
}

// IsChecked reports whether the item is marked packed
func (s *State) IsChecked(id string) bool {
	_, ok := s.checked[id]
	return ok
}

// Disciplines returns the selected discipline ids, sorted
func (s *State) Disciplines() []string {
	return sortedKeys(s.disciplines)
}

// Extras returns the selected extra ids, sorted
func (s *State) Extras() []string {
	return sortedKeys(s.extras)
}

// Checked returns the checked item ids, sorted
func (s *State) Checked() []string {
	return sortedKeys(s.checked)
}

// CheckedCount returns the number of checked items
func (s *State) CheckedCount() int {
	return len(s.checked)
}

// IsEmpty reports whether nothing at all is selected
func (s *State) IsEmpty() bool {
	return len(s.disciplines) == 0 && len(s.extras) == 0 && len(s.checked) == 0
}

// ActiveTags returns the union of the selected disciplines and extras
func (s *State) ActiveTags() catalog.TagSet {
	return catalog.TagSet(s.disciplines).Union(catalog.TagSet(s.extras))
}

// CheckedSet returns a copy of the checked item ids as a set
func (s *State) CheckedSet() map[string]bool {
	out := make(map[string]bool, len(s.checked))
	for id := range s.checked {
		out[id] = true
	}
	return out
}

func toggle(m map[string]struct{}, id string) bool {
	if _, ok := m[id]; ok {
		delete(m, id)
		return false
	}
	m[id] = struct{}{}
	return true
}

func set(m map[string]struct{}, id string, on bool) {
	if on {
		m[id] = struct{}{}
		return
	}
	delete(m, id)
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
