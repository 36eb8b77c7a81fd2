package hostroute

import (
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/gymnexus/pkg/hostname"
)

// Action is what happens to a navigation request.
type Action int

const (
	Passthrough Action = iota
	Redirect
	Rewrite
)

func (a Action) String() string {
	switch a {
	case Redirect:
		return "redirect"
	case Rewrite:
		return "rewrite"
	default:
		return "passthrough"
	}
}

// Decision is the outcome for one request. Exactly one action applies.
type Decision struct {
	Action Action
	Key    string // routing key, empty for passthrough
	Target string // redirect location or rewritten path
}

// DefaultReserved lists first path segments that never name a tenant.
var DefaultReserved = []string{
	"super-admin",
	"api",
	"_next",
	"static",
	"assets",
	"favicon.ico",
	"robots.txt",
	"health",
	"metrics",
}

// routing keys follow DNS label rules
var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

const maxKeyLength = 63

// Router decides between redirecting root-domain paths to tenant subdomains
// and rewriting tenant subdomain paths for downstream routing.
type Router struct {
	hosts          *hostname.Parser
	reserved       []string
	scheme         string
	redirectStatus int
	onDecision     func(r *http.Request, d Decision)
}

// Option configures a Router.
type Option func(*Router)

// WithReserved adds first path segments that always pass through.
func WithReserved(segments ...string) Option {
	return func(rt *Router) {
		for _, s := range segments {
			s = strings.ToLower(strings.Trim(strings.TrimSpace(s), "/"))
			if s != "" && !slices.Contains(rt.reserved, s) {
				rt.reserved = append(rt.reserved, s)
			}
		}
	}
}

// WithRedirectStatus sets the redirect status code. Panics on non-3xx codes.
func WithRedirectStatus(code int) Option {
	if code < 300 || code > 399 {
		panic("hostroute: redirect status must be 3xx")
	}
	return func(rt *Router) {
		rt.redirectStatus = code
	}
}

// WithScheme sets the scheme used in redirect locations.
func WithScheme(scheme string) Option {
	return func(rt *Router) {
		if scheme != "" {
			rt.scheme = scheme
		}
	}
}

// WithDecisionHook is called with every decision the middleware acts on.
func WithDecisionHook(fn func(r *http.Request, d Decision)) Option {
	return func(rt *Router) {
		rt.onDecision = fn
	}
}

// New creates a Router for the parser's root domain.
func New(hosts *hostname.Parser, opts ...Option) *Router {
	if hosts == nil {
		panic("hostroute: hostname parser cannot be nil")
	}
	rt := &Router{
		hosts:          hosts,
		reserved:       slices.Clone(DefaultReserved),
		scheme:         "http",
		redirectStatus: http.StatusTemporaryRedirect,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Decide inspects r without modifying it.
func (rt *Router) Decide(r *http.Request) Decision {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return Decision{Action: Passthrough}
	}

	// split the escaped form so encoded "/", "?" and "#" survive the redirect
	rawFirst, rest := splitFirstSegment(r.URL.EscapedPath())
	first, err := url.PathUnescape(rawFirst)
	if err != nil || rt.isReserved(first) {
		return Decision{Action: Passthrough}
	}

	host := hostname.Normalize(r.Host)
	switch {
	case rt.hosts.IsPreview(host):
		return Decision{Action: Passthrough}
	case rt.hosts.IsRoot(host):
		return rt.decideRoot(r, first, rest)
	default:
		return rt.decideSubdomain(r, host)
	}
}

func (rt *Router) decideRoot(r *http.Request, first, rest string) Decision {
	key := strings.ToLower(first)
	if !validKey(key) {
		return Decision{Action: Passthrough}
	}

	_, port := hostname.SplitPort(r.Host)
	if port == "" {
		port = rt.hosts.RootPort()
	}
	target := key + "." + rt.hosts.Root()
	if port != "" {
		target += ":" + port
	}

	loc := rt.scheme + "://" + target + rest
	if r.URL.RawQuery != "" {
		loc += "?" + r.URL.RawQuery
	}
	return Decision{Action: Redirect, Key: key, Target: loc}
}

func (rt *Router) decideSubdomain(r *http.Request, host string) Decision {
	key := strings.TrimSuffix(host, "."+rt.hosts.Root())
	if key == "" || key == host || !validKey(key) {
		return Decision{Action: Passthrough}
	}
	return Decision{Action: Rewrite, Key: key, Target: "/" + key + r.URL.EscapedPath()}
}

// Middleware applies the decision: redirects, rewrites the request path,
// or calls next unchanged.
func (rt *Router) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := rt.Decide(r)
		if rt.onDecision != nil {
			rt.onDecision(r, d)
		}

		switch d.Action {
		case Redirect:
			http.Redirect(w, r, d.Target, rt.redirectStatus)
		case Rewrite:
			next.ServeHTTP(w, rewrite(r, d.Key))
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// rewrite returns a shallow copy of r with "/<key>" prefixed to its path.
// Query string and host are kept.
func rewrite(r *http.Request, key string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r
	u := *r.URL
	u.Path = "/" + key + r.URL.Path
	if r.URL.RawPath != "" {
		u.RawPath = "/" + key + r.URL.RawPath
	}
	r2.URL = &u
	return r2
}

func (rt *Router) isReserved(segment string) bool {
	return slices.Contains(rt.reserved, strings.ToLower(segment))
}

func validKey(key string) bool {
	return len(key) <= maxKeyLength && keyPattern.MatchString(key)
}

// splitFirstSegment turns "/acme/members" into ("acme", "/members").
// The remainder is never empty. Escaping in path is left as is.
func splitFirstSegment(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	first, rest, found := strings.Cut(trimmed, "/")
	if !found || rest == "" {
		return first, "/"
	}
	return first, "/" + rest
}
