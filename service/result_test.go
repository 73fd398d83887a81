package service_test

import (
	"encoding/base64"
	"testing"

	"github.com/sabouaram/httptester/report"
	"github.com/sabouaram/httptester/service"
)

func TestFromResultEncodesNonEmptyPayload(t *testing.T) {
	r := &report.Result{
		TestID: "test_1_url_get_ok",
		Suite:  "a1",
		Res: report.Response{
			Payload:     []byte("hello"),
			PayloadSize: 5,
			StatusCode:  200,
			Version:     "HTTP/1.1",
			Headers:     map[string]string{"content-type": "text/plain"},
			Connection:  report.Alive,
		},
	}

	out := service.FromResult(r)
	want := base64.StdEncoding.EncodeToString([]byte("hello"))
	if out.Res.Payload != want {
		t.Fatalf("expected base64 payload %q, got %q", want, out.Res.Payload)
	}
	if out.Res.Connection != "alive" {
		t.Fatalf("expected connection alive, got %q", out.Res.Connection)
	}
}

func TestFromResultOmitsEmptyPayload(t *testing.T) {
	r := &report.Result{
		Res: report.Response{PayloadSize: 0},
	}

	out := service.FromResult(r)
	if out.Res.Payload != "" {
		t.Fatalf("expected empty payload field, got %q", out.Res.Payload)
	}
}
