package assert_test

import (
	"testing"

	"github.com/sabouaram/httptester/assert"
	"github.com/sabouaram/httptester/report"
)

func newReport() *report.Report {
	r := report.New("t", "s", "")
	r.Res.Headers = map[string]string{}
	return r
}

func recoverFailure(t *testing.T) *assert.Failure {
	t.Helper()
	r := recover()
	if r == nil {
		return nil
	}
	f, ok := r.(assert.Failure)
	if !ok {
		t.Fatalf("expected a recovered assert.Failure, got %T", r)
	}
	return &f
}

func TestStatusIsPassAndFail(t *testing.T) {
	rep := newReport()
	rep.Res.StatusCode = 200
	assert.StatusIs(rep, 200)
	if len(rep.Notes()) != 1 {
		t.Fatalf("expected a passing note, got %v", rep.Notes())
	}

	func() {
		defer func() {
			if recoverFailure(t) == nil {
				t.Fatal("expected StatusIs to panic on mismatch")
			}
		}()
		assert.StatusIs(rep, 404)
	}()
}

func TestHeaderPredicates(t *testing.T) {
	rep := newReport()
	rep.Res.Headers["content-type"] = "text/html; charset=utf-8"

	assert.HeaderPresent(rep, "Content-Type")
	assert.HeaderContains(rep, "Content-Type", "text/html")
	assert.MimeIs(rep, "text/html")
	assert.HeaderDoesNotContain(rep, "Content-Type", "application/json")

	func() {
		defer func() {
			if recoverFailure(t) == nil {
				t.Fatal("expected HeaderAbsent to panic on a present header")
			}
		}()
		assert.HeaderAbsent(rep, "Content-Type")
	}()
}

func TestDateValid(t *testing.T) {
	rep := newReport()
	rep.Res.Headers["date"] = "Sun, 06 Nov 1994 08:49:37 GMT"
	assert.DateValid(rep)

	rep2 := newReport()
	rep2.Res.Headers["date"] = "nonsense"
	func() {
		defer func() {
			if recoverFailure(t) == nil {
				t.Fatal("expected DateValid to panic on a malformed date")
			}
		}()
		assert.DateValid(rep2)
	}()
}

func TestETagValidRejectsWeak(t *testing.T) {
	rep := newReport()
	rep.Res.Headers["etag"] = `W/"abc"`
	func() {
		defer func() {
			if recoverFailure(t) == nil {
				t.Fatal("expected ETagValid to panic on a weak ETag")
			}
		}()
		assert.ETagValid(rep)
	}()
}

func TestETagValidReturnsUnquotedTag(t *testing.T) {
	rep := newReport()
	rep.Res.Headers["etag"] = `"abc123"`
	if got := assert.ETagValid(rep); got != "abc123" {
		t.Fatalf("expected unquoted tag abc123, got %q", got)
	}
}

func TestPayloadPredicates(t *testing.T) {
	rep := newReport()
	rep.Res.Payload = []byte("1966 Ford Fairlane")
	rep.Res.PayloadSize = len(rep.Res.Payload)

	assert.PayloadNonEmpty(rep)
	assert.PayloadContains(rep, "Fairlane")
	assert.PayloadBeginsWith(rep, "1966")
	assert.PayloadEndsWith(rep, "Fairlane")
	assert.PayloadSizeIs(rep, len("1966 Ford Fairlane"))
}

func TestConnectionPredicates(t *testing.T) {
	rep := newReport()
	rep.Res.Connection = report.Alive
	assert.ConnectionAlive(rep)

	rep2 := newReport()
	rep2.Res.Connection = report.Closed
	assert.ConnectionClosed(rep2)

	func() {
		defer func() {
			if recoverFailure(t) == nil {
				t.Fatal("expected ConnectionAlive to panic when closed")
			}
		}()
		assert.ConnectionAlive(rep2)
	}()
}
