package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/authcb/internal/shared"
)

const shutdownTimeout = 5 * time.Second

// Options is the construction-time configuration for a [Server].
type Options struct {
	Host          string  // Interface to bind, "" for all interfaces
	Port          int     // TCP port to bind
	Directory     string  // Serving directory for static content and the callback template
	Template      string  // Callback template file name inside Directory
	FragmentParam string  // Optional query parameter carrying the fragment
	NoCache       bool    // Send Cache-Control: no-store on every response
	RateLimit     float64 // Requests per second, 0 disables
}

// Server serves the callback interceptor over plain HTTP.
type Server struct {
	opts        Options
	logger      *log.Logger
	router      *BasicRouter
	interceptor *RedirectInterceptor
	httpServer  *http.Server
}

// New wires the middleware stack and the [RedirectInterceptor] for opts.
func New(opts Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	var fragment FragmentSource = RequestFragment
	if opts.FragmentParam != "" {
		fragment = FirstFragment(RequestFragment, QueryFragment(opts.FragmentParam))
	}

	interceptor := NewRedirectInterceptor(InterceptorOptions{
		Directory: opts.Directory,
		Template:  opts.Template,
		Fragment:  fragment,
		Logger:    logger,
	})

	router := NewBasicRouter()
	router.Use(Recoverer(logger), RequestLogger(logger))
	if opts.NoCache {
		router.Use(NoCache())
	}
	router.Use(RateLimit(opts.RateLimit))
	router.Handler(interceptor)

	s := &Server{
		opts:        opts,
		logger:      logger,
		router:      router,
		interceptor: interceptor,
	}
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Addr returns the host:port the server binds.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
}

// URL returns the address a local browser should open.
func (s *Server) URL() string {
	host := s.opts.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(s.opts.Port))
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Interceptor returns the callback handler.
func (s *Server) Interceptor() *RedirectInterceptor {
	return s.interceptor
}

// Listen binds the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return nil, fmt.Errorf("%w: listen on %s: %v", shared.ErrServerFailed, s.Addr(), err)
	}
	return ln, nil
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", ln.Addr().String(), "directory", s.opts.Directory)
		serverErrors <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %v", shared.ErrServerFailed, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("error shutting down server", "error", err)
		return fmt.Errorf("%w: shutdown: %v", shared.ErrServerFailed, err)
	}
	<-serverErrors

	s.logger.Info("server stopped")
	return nil
}

// ListenAndServe binds the configured address and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
