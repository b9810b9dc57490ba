package wirecc

import "slices"

// ResourceID is the signed integer handle a higher protocol layer uses
// to name a resource.
type ResourceID int32

// ResourceInvalid is the sentinel id denoting "no resource".
const ResourceInvalid ResourceID = -1

// Valid reports whether id refers to an actual resource.
func (id ResourceID) Valid() bool { return id != ResourceInvalid }

// ResourceSet is an unordered, duplicate-free collection of resource
// ids.
type ResourceSet map[ResourceID]struct{}

// NewResourceSet creates a ResourceSet holding the given ids.
func NewResourceSet(ids ...ResourceID) ResourceSet {
	s := make(ResourceSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s ResourceSet) Add(id ResourceID) { s[id] = struct{}{} }

// Remove deletes id from the set.
func (s ResourceSet) Remove(id ResourceID) { delete(s, id) }

// Contains reports whether id is a member of the set.
func (s ResourceSet) Contains(id ResourceID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s ResourceSet) Len() int { return len(s) }

// IDs returns the members in ascending order.
func (s ResourceSet) IDs() []ResourceID {
	ids := make([]ResourceID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether s and other have identical membership.
func (s ResourceSet) Equal(other ResourceSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}
