package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tieba/internal/logger"
)

const (
	defaultHistoryLimit = 50
	maxRedirects        = 5
)

// Match is the result of resolving a path.
type Match struct {
	Route  Route
	Path   string
	Params map[string]string
	Query  url.Values
}

// Param returns the named path parameter, or "".
func (m Match) Param(name string) string {
	return m.Params[name]
}

// FullPath is Path with its query string, as passed to Navigate.
func (m Match) FullPath() string {
	if len(m.Query) == 0 {
		return m.Path
	}
	return m.Path + "?" + m.Query.Encode()
}

// Guard runs before every transition. from is nil for the first navigation.
// A non-empty redirect replaces the target with another path; an error
// aborts the navigation.
type Guard func(to Match, from *Match) (redirect string, err error)

// Router resolves paths and keeps the navigation history. It is safe for
// concurrent use.
type Router struct {
	mux      *chi.Mux
	table    []Route
	routes   map[string]Route
	notFound Route

	guardsMu sync.RWMutex
	guards   []Guard

	mu           sync.Mutex
	current      *Match
	history      []Match
	historyLimit int

	logger *logger.Logger
}

// Option customises a [Router].
type Option func(*Router)

// WithHistoryLimit bounds the back stack. Values below 1 are ignored.
func WithHistoryLimit(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.historyLimit = n
		}
	}
}

// New builds a router over routes. Every route path must be unique.
func New(routes []Route, log *logger.Logger, opts ...Option) (*Router, error) {
	r := &Router{
		mux:          chi.NewRouter(),
		routes:       make(map[string]Route, len(routes)),
		notFound:     NotFoundRoute(),
		historyLimit: defaultHistoryLimit,
		logger:       log,
	}
	for _, opt := range opts {
		opt(r)
	}

	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, route := range routes {
		if _, ok := r.routes[route.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, route.Path)
		}
		r.routes[route.Path] = route
		r.table = append(r.table, route)
		r.mux.Get(route.Path, noop)
	}

	return r, nil
}

// NewDefault builds a router over [DefaultRoutes].
func NewDefault(log *logger.Logger, opts ...Option) *Router {
	r, err := New(DefaultRoutes(), log, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Routes returns the route table in registration order.
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.table...)
}

// Resolve matches raw (path plus optional query) against the route table.
// Paths the table does not know resolve to the NotFound route.
func (r *Router) Resolve(raw string) (Match, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Match{}, fmt.Errorf("%w: %q: %w", ErrInvalidPath, raw, err)
	}

	path := u.Path
	if path == "" || !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	m := Match{Path: path, Params: map[string]string{}, Query: u.Query()}

	rctx := chi.NewRouteContext()
	pattern := r.mux.Find(rctx, http.MethodGet, path)
	route, ok := r.routes[pattern]
	if !ok {
		m.Route = r.notFound
		return m, nil
	}

	m.Route = route
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			m.Params[key] = rctx.URLParams.Values[i]
		}
	}
	return m, nil
}

// BeforeEach appends a guard. Guards run in registration order.
func (r *Router) BeforeEach(g Guard) {
	r.guardsMu.Lock()
	r.guards = append(r.guards, g)
	r.guardsMu.Unlock()
}

// Current returns the committed route, if any.
func (r *Router) Current() (Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return Match{}, false
	}
	return *r.current, true
}

// Navigate resolves path, runs the guards and commits the transition,
// pushing the previous route onto the history.
func (r *Router) Navigate(path string) (Match, error) {
	return r.navigate(path, historyPush)
}

// Replace is Navigate without a history entry.
func (r *Router) Replace(path string) (Match, error) {
	return r.navigate(path, historyReplace)
}

// Back returns to the previous route. Guards run for the target as for any
// other navigation; the history entry is consumed only once the transition
// commits, so an aborted Back leaves the history intact.
func (r *Router) Back() (Match, error) {
	r.mu.Lock()
	if len(r.history) == 0 {
		r.mu.Unlock()
		return Match{}, ErrNoHistory
	}
	prev := r.history[len(r.history)-1]
	r.mu.Unlock()

	return r.navigate(prev.FullPath(), historyPop)
}

// HistoryLen returns the number of entries Back can return to.
func (r *Router) HistoryLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

func (r *Router) navigate(path string, mode historyMode) (Match, error) {
	from, hasFrom := r.Current()
	var fromPtr *Match
	if hasFrom {
		fromPtr = &from
	}

	r.guardsMu.RLock()
	guards := append([]Guard(nil), r.guards...)
	r.guardsMu.RUnlock()

	target := path
	for redirects := 0; ; redirects++ {
		if redirects > maxRedirects {
			return Match{}, fmt.Errorf("%w: last target %q", ErrTooManyRedirects, target)
		}

		to, err := r.Resolve(target)
		if err != nil {
			return Match{}, err
		}

		redirect, err := runGuards(guards, to, fromPtr)
		if err != nil {
			r.logger.Debug().Err(err).Str("to", to.Path).Msg("navigation aborted")
			return Match{}, fmt.Errorf("%w: %w", ErrNavigationAborted, err)
		}
		if redirect != "" {
			r.logger.Debug().Str("from", to.Path).Str("to", redirect).Msg("navigation redirected")
			target = redirect
			continue
		}

		r.commit(to, mode, path)
		return to, nil
	}
}

func runGuards(guards []Guard, to Match, from *Match) (string, error) {
	for _, g := range guards {
		redirect, err := g(to, from)
		if err != nil || redirect != "" {
			return redirect, err
		}
	}
	return "", nil
}

// historyMode selects what a committed transition does to the history.
type historyMode int

const (
	historyPush historyMode = iota
	historyReplace
	// historyPop drops the top entry if it still is the Back target.
	historyPop
)

func (r *Router) commit(to Match, mode historyMode, requested string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch mode {
	case historyPush:
		if r.current != nil && r.current.FullPath() != to.FullPath() {
			r.history = append(r.history, *r.current)
			if len(r.history) > r.historyLimit {
				r.history = r.history[len(r.history)-r.historyLimit:]
			}
		}
	case historyPop:
		if n := len(r.history); n > 0 && r.history[n-1].FullPath() == requested {
			r.history = r.history[:n-1]
		}
	}
	r.current = &to
}
