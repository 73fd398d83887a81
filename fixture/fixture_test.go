package fixture_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sabouaram/httptester/fixture"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestLoadExpandsTokensAndCanonicalizes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "get.txt", "GET / HTTP/1.1\nHost: <HOSTPORT>\nX-Custom: <WHO>\n\n")

	d := fixture.New(dir, "localhost", "8080")
	out, split, err := d.Load("get.txt", map[string]string{"WHO": "tester"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if strings.Contains(string(split.Header), "<") {
		t.Fatalf("expected no remaining tokens in header, got %q", split.Header)
	}
	if !strings.Contains(string(out), "Host: localhost:8080\r\n") {
		t.Fatalf("expected HOSTPORT substitution, got %q", out)
	}
	if !strings.Contains(string(out), "X-Custom: tester\r\n") {
		t.Fatalf("expected custom token substitution, got %q", out)
	}
	if !strings.HasSuffix(string(out), "\r\n\r\n") {
		t.Fatalf("expected trailing blank line, got %q", out)
	}
	for _, line := range strings.Split(strings.TrimRight(string(split.Header), "\r\n"), "\r\n") {
		_ = line
	}
}

func TestLoadRemovesPipelineSentinel(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "pipe.txt", "GET /a HTTP/1.1\nHost: <HOSTPORT>\n<PIPELINE>\nGET /b HTTP/1.1\nHost: <HOSTPORT>\n\n")

	d := fixture.New(dir, "localhost", "80")
	out, _, err := d.Load("pipe.txt", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.Contains(string(out), "<PIPELINE>") {
		t.Fatalf("expected sentinel removed, got %q", out)
	}
}

func TestLoadBodyUntouched(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "post.txt", "POST /x HTTP/1.1\nHost: <HOSTPORT>\nContent-Length: 5\n\nhello")

	d := fixture.New(dir, "localhost", "80")
	_, split, err := d.Load("post.txt", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(split.Body) != "hello" {
		t.Fatalf("expected body untouched, got %q", split.Body)
	}
}

func TestLoadMissingFixture(t *testing.T) {
	d := fixture.New(t.TempDir(), "localhost", "80")
	if _, _, err := d.Load("missing.txt", nil); err == nil {
		t.Fatal("expected an error for a missing fixture")
	}
}
