package visa

import (
	"strings"
	"testing"
)

func TestLookupKnownDestination(t *testing.T) {
	d := NewDirectory()

	if got := d.Lookup("Japan"); !strings.Contains(got, "UAE travelers need a visa") {
		t.Fatalf("unexpected advisory for Japan: %q", got)
	}
	if got := d.Lookup(" Thailand "); !strings.Contains(got, "Visa-on-arrival") {
		t.Fatalf("whitespace should not affect the lookup: %q", got)
	}
}

func TestLookupIsTotal(t *testing.T) {
	d := NewDirectory()

	for _, dest := range []string{"Tokyo", "", "Atlantis"} {
		if got := d.Lookup(dest); got != fallbackAdvisory {
			t.Fatalf("Lookup(%q) = %q, want fallback", dest, got)
		}
	}
}
