package caption

import "testing"

func TestStoreAdd(t *testing.T) {
	s := NewStore()

	id := s.Add(Caption{Text: "first", Start: 0, End: 2})
	if id == "" {
		t.Fatal("Add returned empty ID")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}

	got, ok := s.Get(id)
	if !ok {
		t.Fatalf("caption %s not found after Add", id)
	}
	if got.Text != "first" || got.Start != 0 || got.End != 2 {
		t.Errorf("unexpected caption: %+v", got)
	}
}

func TestStoreUpdateInPlace(t *testing.T) {
	s := NewStore()
	s.Add(Caption{Text: "a", Start: 0, End: 1})
	id := s.Add(Caption{Text: "b", Start: 2, End: 3})
	s.Add(Caption{Text: "c", Start: 4, End: 5})

	if err := s.Update(id, Caption{Text: "B", Start: 2.5, End: 3.5}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("expected length 3 after update, got %d", s.Len())
	}

	list := s.List()
	if list[1].ID != id {
		t.Errorf("expected caption to keep position 1 and ID %s, got %s", id, list[1].ID)
	}
	if list[1].Text != "B" || list[1].Start != 2.5 || list[1].End != 3.5 {
		t.Errorf("unexpected updated caption: %+v", list[1])
	}
}

func TestStoreUpdateUnknownID(t *testing.T) {
	s := NewStore()
	s.Add(Caption{Text: "a", Start: 0, End: 1})

	if err := s.Update("missing", Caption{Text: "x"}); err == nil {
		t.Fatal("expected error for unknown ID")
	}
	if s.List()[0].Text != "a" {
		t.Error("list changed on failed update")
	}
}

func TestStoreDeleteShiftsDown(t *testing.T) {
	s := NewStore()
	s.Add(Caption{Text: "a", Start: 0, End: 1})
	id := s.Add(Caption{Text: "b", Start: 2, End: 3})
	s.Add(Caption{Text: "c", Start: 4, End: 5})

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Text != "a" || list[1].Text != "c" {
		t.Errorf("expected [a c], got [%s %s]", list[0].Text, list[1].Text)
	}
}

func TestStoreDeleteUnknownID(t *testing.T) {
	s := NewStore()
	s.Add(Caption{Text: "a", Start: 0, End: 1})

	if err := s.Delete("missing"); err == nil {
		t.Fatal("expected error for unknown ID")
	}
	if s.Len() != 1 {
		t.Errorf("expected length 1, got %d", s.Len())
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	s.Add(Caption{Text: "old", Start: 0, End: 1})

	s.Replace([]Caption{
		{Text: "x", Start: 0, End: 1},
		{Text: "y", Start: 2, End: 3},
	})

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	for i, c := range list {
		if c.ID == "" {
			t.Errorf("entry %d has no ID after Replace", i)
		}
	}
	if list[0].Text != "x" || list[1].Text != "y" {
		t.Errorf("unexpected order: [%s %s]", list[0].Text, list[1].Text)
	}
}

func TestStoreListIsCopy(t *testing.T) {
	s := NewStore()
	s.Add(Caption{Text: "a", Start: 0, End: 1})

	list := s.List()
	list[0].Text = "mutated"

	if got := s.List()[0].Text; got != "a" {
		t.Errorf("List exposed internal state, got %q", got)
	}
}
