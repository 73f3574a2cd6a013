// Package server provides HTTP routing, middleware, and the auth redirect interceptor.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Redirect Interceptor
//
// After email confirmation the auth provider redirects the browser to the site root with the session
// in the URL fragment, e.g. "/#access_token=...&refresh_token=...&type=signup".
//
// [RedirectInterceptor] answers "/" and "/#..." with the callback template read fresh from the serving
// directory. When a fragment is known, the single [Placeholder] statement that reads window.location.hash
// is rewritten to read a string literal holding the fragment instead. Every other path goes to
// [http.FileServer] rooted at the same directory.
//
// # Fragments
//
// Browsers never send the fragment to the server. A [FragmentSource] decides where it comes from:
// [RequestFragment] takes it from the raw request target (non-browser clients, front controllers),
// [QueryFragment] from a query parameter the page can re-request with.
//
// # Lifecycle
//
// [New] builds a [Server] from [Options]; [Server.ListenAndServe] runs until its context is cancelled.
package server
