package world

import (
	"encoding/json"
	"slices"
)

// Entity is an opaque identifier for a set of components in a World.
// Identifiers are allocated in increasing order and never reused, so
// ordering by Entity is ordering by creation.
type Entity uint64

// anyStore lets the World manage every component store uniformly.
type anyStore interface {
	Has(Entity) bool
	Remove(Entity)
	Entities() []Entity
	clear()
}

// Store holds every component of type T, keyed by entity.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
	}
}

// Set attaches or replaces the component for e.
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns the component for e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether e has this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Update applies fn to the component of e in place. Returns false if e does
// not have the component.
func (s *Store[T]) Update(e Entity, fn func(*T)) bool {
	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// Remove detaches the component from e, if present.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Entities returns every entity with this component in creation order.
func (s *Store[T]) Entities() []Entity {
	result := slices.Clone(s.entities)
	slices.Sort(result)
	return result
}

// Len returns the number of entities with this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

func (s *Store[T]) clear() {
	s.components = make(map[Entity]T)
	s.entities = nil
}

func (s *Store[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.components)
}

func (s *Store[T]) UnmarshalJSON(b []byte) error {
	components := map[Entity]T{}
	if err := json.Unmarshal(b, &components); err != nil {
		return err
	}
	if components == nil {
		components = map[Entity]T{}
	}

	s.components = components
	s.entities = make([]Entity, 0, len(components))
	for e := range components {
		s.entities = append(s.entities, e)
	}
	slices.Sort(s.entities)
	return nil
}
