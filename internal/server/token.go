package server

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/desertthunder/authcb/internal/shared"
	"golang.org/x/oauth2"
)

var now = time.Now

// SummarizeFragment parses a redirect fragment such as
// "access_token=...&expires_in=3600&refresh_token=...&token_type=bearer&type=signup" into an [oauth2.Token].
//
// Every key is also kept as token extra data, so provider-specific values like "type" or
// "error_description" remain reachable through [ExtraString]. Malformed input yields an empty token.
func SummarizeFragment(fragment string) *oauth2.Token {
	values, err := url.ParseQuery(fragment)
	if err != nil {
		values = url.Values{}
	}

	token := &oauth2.Token{
		AccessToken:  values.Get("access_token"),
		TokenType:    values.Get("token_type"),
		RefreshToken: values.Get("refresh_token"),
	}

	if at, err := strconv.ParseInt(values.Get("expires_at"), 10, 64); err == nil && at > 0 {
		token.Expiry = time.Unix(at, 0)
	} else if in, err := strconv.ParseInt(values.Get("expires_in"), 10, 64); err == nil && in > 0 {
		token.Expiry = now().Add(time.Duration(in) * time.Second)
	}

	return token.WithExtra(values)
}

// ExtraString returns the extra fragment value for key as a string, or "" when absent.
func ExtraString(token *oauth2.Token, key string) string {
	switch v := token.Extra(key).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// DescribeToken returns log key-value pairs for token with secrets redacted.
func DescribeToken(token *oauth2.Token) []any {
	kv := []any{
		"token_type", token.Type(),
		"access_token", shared.Redact(token.AccessToken, 6),
		"refresh_token", token.RefreshToken != "",
	}
	if !token.Expiry.IsZero() {
		kv = append(kv, "expires", token.Expiry.Format(time.RFC3339))
	}
	if kind := ExtraString(token, "type"); kind != "" {
		kv = append(kv, "type", kind)
	}
	return kv
}
