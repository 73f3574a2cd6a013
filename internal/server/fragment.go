package server

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
)

// Placeholder is the statement in the callback template that reads the fragment in the browser.
const Placeholder = `const urlParams = new URLSearchParams(window.location.hash.substring(1));`

// FragmentSource extracts the URL fragment for a request.
//
// Browsers never send the fragment, so where it comes from is up to the caller.
type FragmentSource func(r *http.Request) string

// requestTarget returns the raw origin-form target of r, including any "#" the client sent.
func requestTarget(r *http.Request) string {
	if strings.HasPrefix(r.RequestURI, "/") {
		return r.RequestURI
	}

	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	if r.URL.Fragment != "" {
		target += "#" + r.URL.Fragment
	}
	return target
}

// requestPath returns the request path without query or fragment.
func requestPath(r *http.Request) string {
	target, _, _ := strings.Cut(requestTarget(r), "#")
	path, _, _ := strings.Cut(target, "?")
	return path
}

// IsCallback reports whether r targets the site root, i.e. "/" or "/#...".
func IsCallback(r *http.Request) bool {
	return requestPath(r) == "/"
}

// RequestFragment returns whatever follows "#" in the raw request target, verbatim.
//
// Only non-browser clients or a front controller forwarding the browser-visible URL put it there.
func RequestFragment(r *http.Request) string {
	if _, fragment, ok := strings.Cut(requestTarget(r), "#"); ok {
		return fragment
	}
	return r.URL.Fragment
}

// QueryFragment reads the fragment from the named query parameter.
//
// This lets a page re-request "/?param=<hash>" when the fragment cannot reach the server otherwise.
func QueryFragment(param string) FragmentSource {
	return func(r *http.Request) string {
		target, _, _ := strings.Cut(requestTarget(r), "#")
		_, rawQuery, ok := strings.Cut(target, "?")
		if !ok {
			return ""
		}
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return ""
		}
		return values.Get(param)
	}
}

// FirstFragment tries each source in order and returns the first non-empty fragment.
func FirstFragment(sources ...FragmentSource) FragmentSource {
	return func(r *http.Request) string {
		for _, source := range sources {
			if source == nil {
				continue
			}
			if fragment := source(r); fragment != "" {
				return fragment
			}
		}
		return ""
	}
}

// SubstituteFragment replaces the first [Placeholder] in doc with a statement that builds the same
// reader from the literal fragment. An empty fragment, or a doc without the placeholder, is returned unchanged.
func SubstituteFragment(doc []byte, fragment string) []byte {
	if fragment == "" {
		return doc
	}

	replacement := `const urlParams = new URLSearchParams("` + fragment + `");`
	return bytes.Replace(doc, []byte(Placeholder), []byte(replacement), 1)
}
