package symbol

import "testing"

func TestInternIdempotent(t *testing.T) {
	r := New()
	id1 := r.Intern("q")
	id2 := r.Intern("q")
	if id1 != id2 {
		t.Errorf("Intern(q) returned %d then %d, want same id", id1, id2)
	}
	if id1 != 0 {
		t.Errorf("first interned symbol should have id 0, got %d", id1)
	}
}

func TestInternMonotone(t *testing.T) {
	r := New()
	q := r.Intern("q")
	x := r.Intern("x")
	if q != 0 || x != 1 {
		t.Errorf("expected ids 0,1 got %d,%d", q, x)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestNameRoundtrip(t *testing.T) {
	r := New()
	id := r.Intern("tau")
	if r.Name(id) != "tau" {
		t.Errorf("Name(%d) = %q, want tau", id, r.Name(id))
	}
}
