package service_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sabouaram/httptester/report"
	"github.com/sabouaram/httptester/service"
)

func TestStreamEncodesOneLinePerResult(t *testing.T) {
	ch := make(chan *report.Result, 2)
	ch <- &report.Result{TestID: "a", Suite: "core"}
	ch <- &report.Result{TestID: "b", Suite: "core"}
	close(ch)

	var buf bytes.Buffer
	if err := service.Stream(&buf, ch); err != nil {
		t.Fatalf("Stream: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 NDJSON lines, got %d", len(lines))
	}

	var first service.Result
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	if first.ID != "a" {
		t.Fatalf("expected id %q, got %q", "a", first.ID)
	}
}
