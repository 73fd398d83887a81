package httpwire_test

import (
	"testing"

	"github.com/sabouaram/httptester/httpwire"
	"github.com/sabouaram/httptester/report"
)

func TestFrameContentLength(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhelloGET /b"), rep)

	body, remainder, err := httpwire.Frame(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "hello" {
		t.Fatalf("expected body hello, got %q", body)
	}
	if string(remainder) != "GET /b" {
		t.Fatalf("expected remainder GET /b, got %q", remainder)
	}
}

func TestFrameChunked(t *testing.T) {
	rep := report.New("t", "s", "")
	raw := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\ntrailing"
	httpwire.Parse([]byte(raw), rep)

	body, remainder, err := httpwire.Frame(rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "Wiki" {
		t.Fatalf("expected Wiki, got %q", body)
	}
	if string(remainder) != "trailing" {
		t.Fatalf("expected remainder trailing, got %q", remainder)
	}
}

func TestFrameMissingDelimiter(t *testing.T) {
	rep := report.New("t", "s", "")
	httpwire.Parse([]byte("HTTP/1.1 200 OK\r\n\r\nsomebody"), rep)

	_, _, err := httpwire.Frame(rep)
	if err == nil {
		t.Fatal("expected a framing error when neither Content-Length nor chunked is present")
	}
	if rep.Passed() {
		t.Fatal("expected the framing error to be recorded on the report")
	}
}
