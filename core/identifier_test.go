package core

import "testing"

func TestIdentifierSlots(t *testing.T) {
	// The owner table starts empty in a fresh process.
	if err := IdentifierReleaseID(0); err == nil {
		t.Error("IdentifierReleaseID before any acquire should fail")
	}

	ida := IdentifierAcquireNewID("a")
	idb := IdentifierAcquireNewID("b")
	if ida != 0 || idb != 1 {
		t.Fatalf("acquired ids %d and %d, want 0 and 1", ida, idb)
	}

	if err := IdentifierReleaseID(ida); err != nil {
		t.Fatalf("IdentifierReleaseID(%d) failed: %v", ida, err)
	}

	// The freed slot is the lowest again and gets handed right back.
	if got := IdentifierAcquireNewID("c"); got != 0 {
		t.Errorf("IdentifierAcquireNewID after release = %d, want 0", got)
	}

	if err := IdentifierReleaseID(500); err == nil {
		t.Error("IdentifierReleaseID with an out of range id should fail")
	}
}
