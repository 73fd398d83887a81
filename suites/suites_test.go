package suites_test

import (
	"testing"

	"github.com/sabouaram/httptester/registry"
	"github.com/sabouaram/httptester/suites"
)

func TestBuiltinSuitesRegister(t *testing.T) {
	names := registry.Suites()
	want := map[string]bool{"a1": false, "core": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected suite %q to be registered, got %v", name, names)
		}
	}
}

func TestA1HasNoDuplicateIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, tc := range registry.Suite("a1") {
		if seen[tc.ID] {
			t.Fatalf("duplicate test id %q in suite a1", tc.ID)
		}
		seen[tc.ID] = true
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one registered a1 test case")
	}
}

func TestCoreScenariosPreserveDeclarationOrder(t *testing.T) {
	cases := registry.Suite("core")
	if len(cases) == 0 {
		t.Fatal("expected at least one registered core test case")
	}
	for i := 1; i < len(cases); i++ {
		if cases[i].Index() <= cases[i-1].Index() {
			t.Fatalf("expected increasing declaration index, got %d after %d", cases[i].Index(), cases[i-1].Index())
		}
	}
}

func TestFixturesForResolvesKnownSuites(t *testing.T) {
	dir, ua := suites.FixturesFor("a1")
	if dir == "" || ua == "" {
		t.Fatalf("expected a1 fixtures dir and user agent, got dir=%q ua=%q", dir, ua)
	}

	dir, ua = suites.FixturesFor("core")
	if dir == "" || ua == "" {
		t.Fatalf("expected core fixtures dir and user agent, got dir=%q ua=%q", dir, ua)
	}
}
