package duration_test

import (
	"testing"
	"time"

	libdur "github.com/sabouaram/httptester/duration"
)

func TestParsePlain(t *testing.T) {
	d, err := libdur.Parse("200ms")
	if err != nil {
		t.Fatal(err)
	}
	if d.Time() != 200*time.Millisecond {
		t.Fatalf("expected 200ms, got %s", d.Time())
	}
}

func TestParseDays(t *testing.T) {
	d, err := libdur.Parse("1d2h3m")
	if err != nil {
		t.Fatal(err)
	}
	want := 24*time.Hour + 2*time.Hour + 3*time.Minute
	if d.Time() != want {
		t.Fatalf("expected %s, got %s", want, d.Time())
	}
	if d.Days() != 1 {
		t.Fatalf("expected 1 day, got %d", d.Days())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	d := libdur.MustParse("5s")
	b, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var out libdur.Duration
	if err := out.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if out.Time() != d.Time() {
		t.Fatalf("round trip mismatch: %s != %s", out.Time(), d.Time())
	}
}
