package server

import (
	"testing"
	"time"
)

func TestSummarizeFragment(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	t.Run("supabase signup redirect", func(t *testing.T) {
		token := SummarizeFragment("access_token=abc123&expires_in=3600&refresh_token=r1&token_type=bearer&type=signup")

		if token.AccessToken != "abc123" {
			t.Errorf("expected access token abc123, got %s", token.AccessToken)
		}
		if token.RefreshToken != "r1" {
			t.Errorf("expected refresh token r1, got %s", token.RefreshToken)
		}
		if token.Type() != "Bearer" {
			t.Errorf("expected token type Bearer, got %s", token.Type())
		}
		if !token.Expiry.Equal(fixed.Add(time.Hour)) {
			t.Errorf("expected expiry one hour from now, got %v", token.Expiry)
		}
		if kind := ExtraString(token, "type"); kind != "signup" {
			t.Errorf("expected type signup, got %s", kind)
		}
	})

	t.Run("expires_at wins over expires_in", func(t *testing.T) {
		token := SummarizeFragment("access_token=a&expires_at=1767225600&expires_in=10")
		if token.Expiry.Unix() != 1767225600 {
			t.Errorf("expected expires_at to be used, got %v", token.Expiry)
		}
	})

	t.Run("error redirect", func(t *testing.T) {
		token := SummarizeFragment("error=access_denied&error_description=Email+link+is+invalid")
		if token.AccessToken != "" {
			t.Errorf("expected no access token, got %s", token.AccessToken)
		}
		if desc := ExtraString(token, "error_description"); desc != "Email link is invalid" {
			t.Errorf("unexpected description %q", desc)
		}
	})

	t.Run("malformed fragment", func(t *testing.T) {
		token := SummarizeFragment("%zz")
		if token.AccessToken != "" || !token.Expiry.IsZero() {
			t.Errorf("expected empty token, got %+v", token)
		}
		if ExtraString(token, "type") != "" {
			t.Error("expected no extras")
		}
	})
}

func TestDescribeToken(t *testing.T) {
	token := SummarizeFragment("access_token=abcdef0123456789&expires_at=1767225600&type=recovery")
	kv := DescribeToken(token)

	fields := map[any]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}

	if fields["access_token"] != "abcdef********" {
		t.Errorf("expected redacted access token, got %v", fields["access_token"])
	}
	if fields["refresh_token"] != false {
		t.Errorf("expected refresh_token false, got %v", fields["refresh_token"])
	}
	if fields["type"] != "recovery" {
		t.Errorf("expected type recovery, got %v", fields["type"])
	}
	if _, ok := fields["expires"]; !ok {
		t.Error("expected expires field")
	}
}
