package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/authcb/internal/shared"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func TestRequestLogger(t *testing.T) {
	t.Run("logs status and omits fragment", func(t *testing.T) {
		var logs bytes.Buffer
		h := RequestLogger(shared.NewLogger(&logs))(okHandler)
		rec := serve(h, http.MethodGet, "/#access_token=secret-value")

		if rec.Header().Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header")
		}
		out := logs.String()
		if !strings.Contains(out, "status=200") {
			t.Errorf("expected status in log, got %q", out)
		}
		if !strings.Contains(out, "fragment=true") {
			t.Errorf("expected fragment marker in log, got %q", out)
		}
		if strings.Contains(out, "secret-value") {
			t.Error("fragment value leaked into request log")
		}
	})

	t.Run("records explicit status", func(t *testing.T) {
		var logs bytes.Buffer
		h := RequestLogger(shared.NewLogger(&logs))(http.NotFoundHandler())
		serve(h, http.MethodGet, "/missing")

		if !strings.Contains(logs.String(), "status=404") {
			t.Errorf("expected 404 in log, got %q", logs.String())
		}
	})

	t.Run("unique request ids", func(t *testing.T) {
		h := RequestLogger(shared.NewLogger(io.Discard))(okHandler)
		a := serve(h, http.MethodGet, "/").Header().Get("X-Request-Id")
		b := serve(h, http.MethodGet, "/").Header().Get("X-Request-Id")
		if a == b {
			t.Error("expected distinct request ids")
		}
	})
}

func TestNoCache(t *testing.T) {
	rec := serve(NoCache()(okHandler), http.MethodGet, "/")
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("expected no-store, got %q", cc)
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		h := RateLimit(0)(okHandler)
		for i := 0; i < 20; i++ {
			if rec := serve(h, http.MethodGet, "/"); rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
			}
		}
	})

	t.Run("rejects burst", func(t *testing.T) {
		h := RateLimit(1)(okHandler)
		if rec := serve(h, http.MethodGet, "/"); rec.Code != http.StatusOK {
			t.Fatalf("expected first request to pass, got %d", rec.Code)
		}
		if rec := serve(h, http.MethodGet, "/"); rec.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", rec.Code)
		}
	})
}

func TestRecoverer(t *testing.T) {
	var logs bytes.Buffer
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := serve(Recoverer(shared.NewLogger(&logs))(panicky), http.MethodGet, "/")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Errorf("expected panic to be logged, got %q", logs.String())
	}
}
