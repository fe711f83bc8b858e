package models

import (
	"encoding/json"
	"sort"
)

// CompletionSet holds the identifiers of completed activities.
// The zero value is an empty set ready to use.
type CompletionSet struct {
	ids map[ActivityID]struct{}
}

func NewCompletionSet(ids ...ActivityID) CompletionSet {
	s := CompletionSet{ids: make(map[ActivityID]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s CompletionSet) Contains(id ActivityID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s CompletionSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in canonical (phase, day, activity) order.
func (s CompletionSet) IDs() []ActivityID {
	out := make([]ActivityID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (s CompletionSet) Strings() []string {
	ids := s.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (s CompletionSet) Clone() CompletionSet {
	return NewCompletionSet(s.IDs()...)
}

func (s CompletionSet) Equal(other CompletionSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Toggle returns a copy of the set with id added if it was absent or
// removed if it was present. The receiver is left untouched.
func (s CompletionSet) Toggle(id ActivityID) CompletionSet {
	next := s.Clone()
	if next.Contains(id) {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

func (s CompletionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON accepts an array of canonical identifiers. Entries that do
// not parse are dropped; see DecodeCompletionSet to learn which.
func (s *CompletionSet) UnmarshalJSON(data []byte) error {
	decoded, _, err := DecodeCompletionSet(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// DecodeCompletionSet parses the stored JSON array and also returns the
// entries that were skipped because they are not valid identifiers.
func DecodeCompletionSet(data []byte) (CompletionSet, []string, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return CompletionSet{}, nil, err
	}

	set := NewCompletionSet()
	var skipped []string
	for _, entry := range raw {
		id, err := ParseActivityID(entry)
		if err != nil {
			skipped = append(skipped, entry)
			continue
		}
		set.ids[id] = struct{}{}
	}
	return set, skipped, nil
}
