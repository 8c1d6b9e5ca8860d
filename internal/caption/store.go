package caption

import "fmt"

// ordered list of captions addressed by stable ID
type Store struct {
	entries []Caption
}

func NewStore() *Store {
	return &Store{}
}

// Add appends the caption and assigns it a fresh ID.
// The assigned ID is returned.
func (s *Store) Add(c Caption) string {
	c.ID = NewID()
	s.entries = append(s.entries, c)
	return c.ID
}

// Update replaces the caption with the given ID in place.
// Position and ID are retained; only text and times change.
func (s *Store) Update(id string, c Caption) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			c.ID = id
			s.entries[i] = c
			return nil
		}
	}
	return fmt.Errorf("caption %s: %w", id, ErrNotFound)
}

// Delete removes the caption with the given ID.
// Entries after it shift down one position.
func (s *Store) Delete(id string) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("caption %s: %w", id, ErrNotFound)
}

// Get returns the caption with the given ID.
func (s *Store) Get(id string) (Caption, bool) {
	for _, c := range s.entries {
		if c.ID == id {
			return c, true
		}
	}
	return Caption{}, false
}

// Replace swaps the whole list, assigning fresh IDs to entries
// that carry none. Used by import.
func (s *Store) Replace(captions []Caption) {
	entries := make([]Caption, len(captions))
	for i, c := range captions {
		if c.ID == "" {
			c.ID = NewID()
		}
		entries[i] = c
	}
	s.entries = entries
}

// List returns a copy of the caption list in source order.
func (s *Store) List() []Caption {
	out := make([]Caption, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	return len(s.entries)
}
