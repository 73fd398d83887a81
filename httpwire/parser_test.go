package httpwire_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/sabouaram/httptester/httpwire"
	"github.com/sabouaram/httptester/report"
)

func TestParseWellFormedResponse(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: 5\r\n\r\nhello"
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte(raw), rep)

	if !rep.Passed() {
		t.Fatalf("expected no parse errors, got %v", rep.Errors())
	}
	if rep.Res.StatusCode != 200 || rep.Res.Version != "HTTP/1.1" || rep.Res.StatusText != "OK" {
		t.Fatalf("unexpected status fields: %+v", rep.Res)
	}
	if got, ok := rep.Res.Headers["content-type"]; !ok || got != "text/html" {
		t.Fatalf("expected case-folded content-type header, got %v", rep.Res.Headers)
	}
	if string(rep.Res.Payload) != "hello" || rep.Res.PayloadSize != 5 {
		t.Fatalf("unexpected payload: %q size %d", rep.Res.Payload, rep.Res.PayloadSize)
	}
}

func TestParseEmptyResponse(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse(nil, rep)
	if rep.Passed() {
		t.Fatal("expected an error for an empty response")
	}
	if rep.Errors()[0] != "Empty response" {
		t.Fatalf("unexpected error: %v", rep.Errors())
	}
}

func TestParseMissingBlankLine(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n"), rep)
	found := false
	for _, e := range rep.Errors() {
		if e == "Missing empty line after headers" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing-blank-line error, got %v", rep.Errors())
	}
}

func TestParseLFSeparatorWarning(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\n\nbody"), rep)
	found := false
	for _, e := range rep.Errors() {
		if e == "Using LF as header separator instead of CRLF" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected LF-separator warning, got %v", rep.Errors())
	}
}

func TestParseMalformedHeaderLine(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\r\nNoColonHere\r\n\r\n"), rep)
	found := false
	for _, e := range rep.Errors() {
		if e == "Malformed header line: NoColonHere" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected malformed header line error, got %v", rep.Errors())
	}
}

func TestParseSpuriousHeaderWhitespace(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\r\nContent-Type : text/html\r\n\r\n"), rep)
	found := false
	for _, e := range rep.Errors() {
		if bytes.Contains([]byte(e), []byte("spurious white-spaces")) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected spurious whitespace error, got %v", rep.Errors())
	}
}

func TestParseMalformedStatusLine(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("not a status line\r\n\r\n"), rep)
	found := false
	for _, e := range rep.Errors() {
		if bytes.HasPrefix([]byte(e), []byte("Malformed status line")) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected malformed status line error, got %v", rep.Errors())
	}
}

func TestParseHeaderContinuationLine(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\r\nX-Long: one\r\n two\r\n\r\n"), rep)
	if got := rep.Res.Headers["x-long"]; got != "one two" {
		t.Fatalf("expected folded continuation, got %q", got)
	}
}

var imfFixdate = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun), \d{2} (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4} \d{2}:\d{2}:\d{2} GMT$`)

func TestIMFFixdateRegexSanity(t *testing.T) {
	if !imfFixdate.MatchString("Sun, 06 Nov 1994 08:49:37 GMT") {
		t.Fatal("expected sample IMF-fixdate to match")
	}
}
