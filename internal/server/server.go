// package server contains middleware & handlers for the auth callback server
package server

import (
	"net/http"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, cache headers, rate limiting, panic recovery.
type Middleware func(http.Handler) http.Handler

// Handler is an [http.Handler] that declares the mux patterns it owns.
// [RedirectInterceptor] owns "/" and with it every path not claimed by a more specific pattern.
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the path patterns this handler serves
}

// Router registers handlers behind a shared middleware stack.
// [Server] builds one per listener and installs the interceptor on it.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}
