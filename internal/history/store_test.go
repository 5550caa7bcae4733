package history

import (
	"path/filepath"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	lines := []struct {
		input string
		ok    bool
	}{
		{"(1,0)+(1,1)", true},
		{"CLONE", true},
		{"MUL", true},
		{"BOGUS", false},
		{"PRINT", true},
	}
	for i, l := range lines {
		if err := store.Append(i+1, l.input, l.ok); err != nil {
			t.Fatalf("Append(%d): %v", i+1, err)
		}
	}

	entries, err := store.Tail(3)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Tail(3) returned %d entries", len(entries))
	}
	// Oldest of the requested window first.
	if entries[0].Input != "MUL" || entries[2].Input != "PRINT" {
		t.Errorf("Tail order wrong: %+v", entries)
	}
	if entries[1].OK {
		t.Errorf("entry %q recorded as ok", entries[1].Input)
	}
	for _, e := range entries {
		if e.Session != store.Session() {
			t.Errorf("entry session %q, want %q", e.Session, store.Session())
		}
		if e.At.IsZero() {
			t.Errorf("entry %q has no timestamp", e.Input)
		}
	}
}

func TestSessionsStaySeparable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Append(1, "ZERO", true); err != nil {
		t.Fatal(err)
	}
	firstSession := first.Session()
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if err := second.Append(1, "PRINT", false); err != nil {
		t.Fatal(err)
	}

	if second.Session() == firstSession {
		t.Fatal("two stores share a session id")
	}
	entries, err := second.Tail(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Tail = %d entries, want 2", len(entries))
	}
	if entries[0].Session != firstSession || entries[1].Session != second.Session() {
		t.Errorf("sessions not preserved: %+v", entries)
	}
}
