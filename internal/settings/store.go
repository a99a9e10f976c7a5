package settings

import "github.com/google/uuid"

// ProfileStore is an ordered collection of profiles. Insertion order is
// preserved except where validation passes explicitly reorder or prune.
type ProfileStore struct {
	profiles []*Profile
}

// Append adds a profile to the end of the store.
func (s *ProfileStore) Append(p *Profile) {
	s.profiles = append(s.profiles, p)
}

// Len returns the number of profiles.
func (s *ProfileStore) Len() int {
	return len(s.profiles)
}

// At returns the profile at index i.
func (s *ProfileStore) At(i int) *Profile {
	return s.profiles[i]
}

// Profiles returns the profiles in order. The slice is a view into the
// store; callers must not modify it.
func (s *ProfileStore) Profiles() []*Profile {
	return s.profiles
}

// FindProfile returns the profile with the given GUID, or nil if no
// profile matches. Profiles without a GUID never match.
func (s *ProfileStore) FindProfile(guid uuid.UUID) *Profile {
	for _, p := range s.profiles {
		if p.GUID != nil && *p.GUID == guid {
			return p
		}
	}
	return nil
}

// IndexOf returns the index of the profile with the given GUID, or -1.
func (s *ProfileStore) IndexOf(guid uuid.UUID) int {
	for i, p := range s.profiles {
		if p.GUID != nil && *p.GUID == guid {
			return i
		}
	}
	return -1
}

// removeWhere deletes every profile the predicate matches, preserving
// the order of the survivors. Reports whether anything was removed.
func (s *ProfileStore) removeWhere(pred func(*Profile) bool) bool {
	kept := s.profiles[:0]
	removed := false
	for _, p := range s.profiles {
		if pred(p) {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(s.profiles); i++ {
		s.profiles[i] = nil
	}
	s.profiles = kept
	return removed
}

// reorder rebuilds the store so that profiles whose GUIDs appear in
// order come first, in that sequence, followed by the remaining
// profiles in their current relative order.
func (s *ProfileStore) reorder(order []uuid.UUID) {
	index := make(map[uuid.UUID]int, len(s.profiles))
	for i, p := range s.profiles {
		if p.GUID != nil {
			if _, seen := index[*p.GUID]; !seen {
				index[*p.GUID] = i
			}
		}
	}

	taken := make(map[int]bool, len(order))
	next := make([]*Profile, 0, len(s.profiles))
	for _, guid := range order {
		if i, ok := index[guid]; ok && !taken[i] {
			next = append(next, s.profiles[i])
			taken[i] = true
		}
	}
	for i, p := range s.profiles {
		if !taken[i] {
			next = append(next, p)
		}
	}
	s.profiles = next
}
