package server

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/authcb/internal/shared"
)

// DefaultTemplate is the callback page served for the site root.
const DefaultTemplate = "auth-callback.html"

// InterceptorOptions configures a [RedirectInterceptor].
type InterceptorOptions struct {
	Directory string         // Root of the static files, also holds the template
	Template  string         // Template file name, defaults to [DefaultTemplate]
	Fragment  FragmentSource // Defaults to [RequestFragment]
	Static    http.Handler   // Defaults to [http.FileServer] rooted at Directory
	Logger    *log.Logger
}

// RedirectInterceptor answers the auth provider's redirect to the site root with the callback
// template, carrying the fragment into its script. Every other path is served as a static file.
//
// Implements the Handler interface for registration with a Router.
type RedirectInterceptor struct {
	directory string
	template  string
	fragment  FragmentSource
	static    http.Handler
	logger    *log.Logger
}

// NewRedirectInterceptor creates a new interceptor from opts.
func NewRedirectInterceptor(opts InterceptorOptions) *RedirectInterceptor {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.Fragment == nil {
		opts.Fragment = RequestFragment
	}
	if opts.Static == nil {
		opts.Static = http.FileServer(http.Dir(opts.Directory))
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &RedirectInterceptor{
		directory: opts.Directory,
		template:  opts.Template,
		fragment:  opts.Fragment,
		static:    opts.Static,
		logger:    shared.WithLogger(opts.Logger, "handler", "callback"),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *RedirectInterceptor) Routes() []string {
	return []string{"/"}
}

// TemplatePath returns the on-disk location of the callback template.
func (h *RedirectInterceptor) TemplatePath() string {
	return filepath.Join(h.directory, h.template)
}

// ServeHTTP classifies the request and either renders the callback template or delegates to static serving.
func (h *RedirectInterceptor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	AllowMethods(http.HandlerFunc(h.serve), http.MethodGet, http.MethodHead).ServeHTTP(w, r)
}

func (h *RedirectInterceptor) serve(w http.ResponseWriter, r *http.Request) {
	if !IsCallback(r) {
		h.static.ServeHTTP(w, stripFragment(r))
		return
	}

	fragment := h.fragment(r)

	body, err := h.Render(fragment)
	if err != nil {
		if errors.Is(err, shared.ErrTemplateNotFound) {
			h.logger.Warn("callback template missing", "path", h.TemplatePath())
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}

		h.logger.Error("failed to render callback template", "path", h.TemplatePath(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if fragment != "" {
		h.logFragment(fragment)
	}

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("failed to write callback response", "error", err)
	}
}

// Render reads the template from disk and substitutes fragment into it.
//
// The template is read on every call; nothing is cached between requests.
func (h *RedirectInterceptor) Render(fragment string) ([]byte, error) {
	doc, err := ReadTemplate(h.TemplatePath())
	if err != nil {
		return nil, err
	}
	return SubstituteFragment(doc, fragment), nil
}

func (h *RedirectInterceptor) logFragment(fragment string) {
	token := SummarizeFragment(fragment)
	if desc := ExtraString(token, "error_description"); desc != "" || ExtraString(token, "error") != "" {
		h.logger.Warn("auth provider redirected with an error",
			"error", ExtraString(token, "error"),
			"code", ExtraString(token, "error_code"),
			"description", desc)
		return
	}

	h.logger.Info("received auth redirect", DescribeToken(token)...)
}

// ReadTemplate reads the whole template at path, closing the file on every exit path.
//
// A missing file is reported as [shared.ErrTemplateNotFound]; any other failure as [shared.ErrTemplateRead].
func ReadTemplate(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", shared.ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrTemplateRead, err)
	}
	defer f.Close()

	doc, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTemplateRead, err)
	}
	return doc, nil
}

// stripFragment returns r with any "#..." the client sent removed from its URL.
func stripFragment(r *http.Request) *http.Request {
	target, _, ok := strings.Cut(requestTarget(r), "#")
	if !ok {
		return r
	}

	u, err := url.ParseRequestURI(target)
	if err != nil {
		return r
	}

	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = u.Path
	r2.URL.RawPath = u.RawPath
	r2.URL.RawQuery = u.RawQuery
	r2.URL.Fragment = ""
	r2.RequestURI = target
	return r2
}
