package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestBanner(t *testing.T) {
	out := Banner{URL: "http://localhost:3001", Directory: "web", Template: "auth-callback.html"}.Render()

	for _, want := range []string{"http://localhost:3001", "web", "auth-callback.html", "Ctrl+C"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected banner to contain %q, got %q", want, out)
		}
	}
	if strings.Contains(out, "Fragment parameter") {
		t.Error("expected no fragment parameter line when unset")
	}

	out = Banner{URL: "http://localhost:3001", FragmentParam: "fragment"}.Render()
	if !strings.Contains(out, "?fragment=") {
		t.Errorf("expected fragment parameter line, got %q", out)
	}
}

func TestTemplateCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		out := TemplateCheck("web/auth-callback.html", 120, 1, 1, nil)
		if !strings.Contains(out, "Fragment placeholder found") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("problems", func(t *testing.T) {
		out := TemplateCheck("web/auth-callback.html", 120, 0, 0, []error{errors.New("placeholder missing")})
		if !strings.Contains(out, "placeholder missing") {
			t.Errorf("unexpected output %q", out)
		}
	})
}

func TestBrowserMessages(t *testing.T) {
	if !strings.Contains(BrowserFailed("http://localhost:3001"), "http://localhost:3001") {
		t.Error("expected url in browser failure message")
	}
	if !strings.Contains(BrowserOpened(), "Opened browser") {
		t.Error("unexpected browser message")
	}
	if !strings.Contains(Stopped(), "stopped") {
		t.Error("unexpected stop message")
	}
}
