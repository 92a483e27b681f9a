package registry

import "testing"

func single(i, j int) Pattern {
	return func() []Cell { return []Cell{{I: i, J: j}} }
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	r.Register(1, "second", single(1, 0))
	r.Register(0, "first", single(0, 0))

	l, ok := r.Lookup(1)
	if !ok || l.Name != "second" || l.Index != 1 {
		t.Fatalf("Lookup(1) = %+v, %v", l, ok)
	}
	if _, ok := r.Lookup(7); ok {
		t.Error("Lookup of an unregistered index should fail")
	}

	list := r.List()
	if len(list) != 2 || list[0].Name != "first" || list[1].Name != "second" {
		t.Errorf("List() not sorted by index: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register(0, "a", single(0, 0))

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	r.Register(0, "b", single(0, 0))
}

func TestAddUsesNextFreeIndex(t *testing.T) {
	r := New()
	if got := r.Add("a", single(0, 0)); got != 0 {
		t.Errorf("first Add = %d, expected 0", got)
	}
	r.Register(4, "b", single(0, 0))
	if got := r.Add("c", single(0, 0)); got != 5 {
		t.Errorf("Add after index 4 = %d, expected 5", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r := New()
	r.Register(0, "a", single(0, 0))

	c := r.Clone()
	c.Add("b", single(1, 1))

	if r.Len() != 1 {
		t.Errorf("source registry changed: Len() = %d", r.Len())
	}
	if c.Len() != 2 {
		t.Errorf("clone Len() = %d, expected 2", c.Len())
	}
}
