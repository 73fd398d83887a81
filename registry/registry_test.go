package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sabouaram/httptester/registry"
)

func TestRegisterPreservesDeclarationOrder(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	registry.Register("a1", registry.TestCase{ID: "test_1_url_get_ok"})
	registry.Register("a1", registry.TestCase{ID: "test_1_url_head_ok"})
	registry.Register("a1", registry.TestCase{ID: "test_2_bad_version"})

	cases := registry.Suite("a1")
	want := []string{"test_1_url_get_ok", "test_1_url_head_ok", "test_2_bad_version"}
	if len(cases) != len(want) {
		t.Fatalf("expected %d cases, got %d", len(want), len(cases))
	}
	for i, tc := range cases {
		if tc.ID != want[i] {
			t.Fatalf("expected case %d to be %q, got %q", i, want[i], tc.ID)
		}
	}
}

func TestBatchFiltersByNumericPrefix(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	registry.Register("a1", registry.TestCase{ID: "test_1_a"})
	registry.Register("a1", registry.TestCase{ID: "test_2_b"})
	registry.Register("a1", registry.TestCase{ID: "test_1_c"})

	batch1 := registry.Batch("a1", 1)
	if len(batch1) != 2 {
		t.Fatalf("expected 2 cases in batch 1, got %d", len(batch1))
	}
	if batch1[0].ID != "test_1_a" || batch1[1].ID != "test_1_c" {
		t.Fatalf("unexpected batch order: %v", batch1)
	}
}

func TestFindAcrossSuites(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	registry.Register("a1", registry.TestCase{ID: "test_1_a"})
	registry.Register("a5", registry.TestCase{ID: "test_5_pipeline"})

	tc, ok := registry.Find("test_5_pipeline")
	if !ok || tc.Suite() != "a5" {
		t.Fatalf("expected to find test_5_pipeline in suite a5, got %+v ok=%v", tc, ok)
	}

	if _, ok := registry.Find("nonexistent"); ok {
		t.Fatal("expected Find to report false for an unknown id")
	}
}

func TestAllOrdersBySuiteThenIndex(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	registry.Register("a5", registry.TestCase{ID: "test_5_a"})
	registry.Register("a1", registry.TestCase{ID: "test_1_a"})

	all := registry.All()
	if len(all) != 2 || all[0].ID != "test_1_a" || all[1].ID != "test_5_a" {
		t.Fatalf("expected suite-name ordering a1 then a5, got %v", all)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := "suites:\n  - name: a1\n    fixtures: fixtures/a1\n    user_agent: httptester/a1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := registry.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	entry, ok := m.Lookup("a1")
	if !ok || entry.Fixtures != "fixtures/a1" {
		t.Fatalf("unexpected manifest entry: %+v ok=%v", entry, ok)
	}
}
