package probe_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/sabouaram/httptester/fixture"
	"github.com/sabouaram/httptester/probe"
	"github.com/sabouaram/httptester/transport"
)

func listen(t *testing.T, handle func(net.Conn)) (host, port string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		handle(c)
	}()

	h, p, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	return h, p
}

func TestRunSuccessfulProbe(t *testing.T) {
	host, port := listen(t, func(c net.Conn) {
		defer c.Close()
		buf := make([]byte, 4096)
		_, _ = c.Read(buf)
		_, _ = c.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nok"))
	})

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "get.txt"), []byte("GET / HTTP/1.1\nHost: <HOSTPORT>\n\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	d := &probe.Driver{
		Cfg:      transport.DefaultConfig(),
		Fixtures: fixture.New(dir, host, port),
	}

	rep := d.Run("test_1", "a1", "healthy root", probe.Request{Fixture: "get.txt"})
	if !rep.Passed() {
		t.Fatalf("expected a passing report, got errors: %v", rep.Errors())
	}
	if rep.Res.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", rep.Res.StatusCode)
	}
}

func TestRunRecordsConnectFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	_ = ln.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "get.txt"), []byte("GET / HTTP/1.1\nHost: <HOSTPORT>\n\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	d := &probe.Driver{
		Cfg:      transport.DefaultConfig(),
		Fixtures: fixture.New(dir, "127.0.0.1", port),
	}

	rep := d.Run("test_2", "a1", "", probe.Request{Fixture: "get.txt"})
	if rep.Passed() {
		t.Fatal("expected a connect failure to be recorded")
	}
}
