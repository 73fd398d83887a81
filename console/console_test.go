package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sabouaram/httptester/console"
)

func TestStatusPassFail(t *testing.T) {
	var buf bytes.Buffer
	w := console.New(&buf)

	w.Status("test_1_url_get_ok", true)
	if !strings.Contains(buf.String(), "PASS test_1_url_get_ok") {
		t.Fatalf("expected PASS line, got %q", buf.String())
	}

	buf.Reset()
	w.Status("test_2_bad_version", false)
	if !strings.Contains(buf.String(), "FAIL test_2_bad_version") {
		t.Fatalf("expected FAIL line, got %q", buf.String())
	}
}

func TestRequestResponsePrefixes(t *testing.T) {
	var buf bytes.Buffer
	w := console.New(&buf)

	w.Request("GET / HTTP/1.1\r\nHost: <HOST>\r\n\r\n")
	if !strings.Contains(buf.String(), "> GET / HTTP/1.1") {
		t.Fatalf("expected request prefix, got %q", buf.String())
	}

	buf.Reset()
	w.Response("HTTP/1.1 200 OK\r\n")
	if !strings.Contains(buf.String(), "< HTTP/1.1 200 OK") {
		t.Fatalf("expected response prefix, got %q", buf.String())
	}
}

func TestPayloadElision(t *testing.T) {
	if got := console.Payload(nil); got != "(empty)" {
		t.Fatalf("expected (empty), got %q", got)
	}

	binary := []byte{0x00, 0x01, 0x02, 0xff}
	if got := console.Payload(binary); !strings.Contains(got, "elided") {
		t.Fatalf("expected elided binary payload, got %q", got)
	}

	text := []byte("hello world")
	if got := console.Payload(text); got != "hello world" {
		t.Fatalf("expected verbatim text, got %q", got)
	}

	large := bytes.Repeat([]byte("a"), 4096)
	if got := console.Payload(large); !strings.Contains(got, "elided") {
		t.Fatalf("expected large payload elided, got %q", got)
	}
}
