package report_test

import (
	"testing"

	"github.com/sabouaram/httptester/report"
)

func TestReportPassedEmptyErrors(t *testing.T) {
	r := report.New("test_1_url_get_ok", "a1", "healthy root")
	if !r.Passed() {
		t.Fatal("expected fresh report to pass")
	}

	r.AddNote("status is 200")
	if !r.Passed() {
		t.Fatal("expected report with only notes to pass")
	}

	r.AddError("status is 404, expected 200")
	if r.Passed() {
		t.Fatal("expected report with an error to fail")
	}
}

func TestReportNoteAndErrorOrdering(t *testing.T) {
	r := report.New("test_2", "a1", "")
	r.AddNote("first")
	r.AddNote("second")
	r.AddError("boom")
	r.AddError("bang")

	notes := r.Notes()
	if len(notes) != 2 || notes[0] != "first" || notes[1] != "second" {
		t.Fatalf("unexpected note order: %v", notes)
	}
	errs := r.Errors()
	if len(errs) != 2 || errs[0] != "boom" || errs[1] != "bang" {
		t.Fatalf("unexpected error order: %v", errs)
	}
}

func TestFreezeCopiesFields(t *testing.T) {
	r := report.New("test_3", "a1", "desc")
	r.Res.StatusCode = 200
	r.AddNote("ok")

	res := report.Freeze(r)
	if res.TestID != "test_3" || res.Suite != "a1" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if !res.Passed() {
		t.Fatal("expected frozen result to pass")
	}
	if len(res.Notes) != 1 || res.Notes[0] != "ok" {
		t.Fatalf("unexpected notes: %v", res.Notes)
	}
	if res.RunID == "" {
		t.Fatal("expected a non-empty run id")
	}
}
