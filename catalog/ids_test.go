package catalog

import (
	"strings"
	"testing"
)

func TestNewMerchantID(t *testing.T) {
	id := NewMerchantID()
	if !strings.HasPrefix(id, "M") {
		t.Errorf("expected merchant code to start with M, got %q", id)
	}
	if len(id) != idLength+1 {
		t.Errorf("expected length %d, got %d (%q)", idLength+1, len(id), id)
	}
	for _, r := range id[1:] {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Errorf("unexpected character %q in code %q", r, id)
		}
	}
}

func TestNewStoreID(t *testing.T) {
	id := NewStoreID()
	if !strings.HasPrefix(id, "S") {
		t.Errorf("expected store code to start with S, got %q", id)
	}
	if len(id) != idLength+1 {
		t.Errorf("expected length %d, got %d (%q)", idLength+1, len(id), id)
	}
}

func TestCodesAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewStoreID()
		if seen[id] {
			t.Fatalf("duplicate code %q after %d draws", id, i)
		}
		seen[id] = true
	}
}
