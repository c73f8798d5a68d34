package store

import (
	"strings"
	"testing"
)

func TestNewID_PrefixAndSuffixLength(t *testing.T) {
	id := NewID("deal")
	if !strings.HasPrefix(id, "deal-") {
		t.Fatalf("expected deal prefix, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "deal-")
	if got, want := len(suffix), 8; got != want {
		t.Fatalf("expected suffix len %d, got %d (%q)", want, got, suffix)
	}
	if NewID("deal") == id {
		t.Fatalf("expected distinct ids")
	}
}

func TestNewID_EmptyPrefix(t *testing.T) {
	id := NewID("  ")
	if len(id) != 8 || strings.Contains(id, "-") {
		t.Fatalf("unexpected id %q", id)
	}
}
