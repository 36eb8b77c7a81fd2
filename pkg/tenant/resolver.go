package tenant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/gymnexus/pkg/hostname"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
)

const (
	// HeaderGymID carries an explicit numeric gym id.
	HeaderGymID = "X-Gym-ID"
	// QueryGymID carries an explicit numeric gym id when the header is absent.
	QueryGymID = "gymId"
)

// Source records which method resolved the tenant.
type Source string

const (
	SourceNone      Source = "none"
	SourceSubdomain Source = "subdomain"
	SourceHeaderID  Source = "header_id"
	SourceQueryID   Source = "query_id"
	SourceOrigin    Source = "origin"
)

// Resolution is the outcome of resolving one request.
// A nil Gym means the request is tenant-less; that is not an error.
type Resolution struct {
	Gym    *Gym
	Source Source
}

// DefaultCacheTTL is how long resolved gyms stay cached.
const DefaultCacheTTL = time.Minute

// Resolver maps requests to gyms.
type Resolver struct {
	hosts    *hostname.Parser
	provider Provider
	cache    Cache
	ttl      time.Duration
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache sets the cache used for lookups. ttl <= 0 disables caching.
func WithCache(cache Cache, ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		if cache == nil || ttl <= 0 {
			r.cache = NoOpCache{}
			r.ttl = 0
			return
		}
		r.cache = cache
		r.ttl = ttl
	}
}

// WithResolverLogger sets the logger for cache failures.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver. Caching is off unless WithCache is given.
func NewResolver(hosts *hostname.Parser, provider Provider, opts ...ResolverOption) *Resolver {
	if hosts == nil || provider == nil {
		panic("tenant: resolver requires a hostname parser and a provider")
	}
	r := &Resolver{
		hosts:    hosts,
		provider: provider,
		cache:    NoOpCache{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds the gym for req. Methods are tried in order and the first
// hit wins: routing key (header, query, host), X-Gym-ID header, gymId query
// parameter. When all miss, the key carried by the Origin header gets one
// more subdomain lookup. Only persistence failures are returned as errors.
func (r *Resolver) Resolve(req *http.Request) (Resolution, error) {
	ctx := req.Context()

	key := r.hosts.FromRequest(req)
	if key != "" {
		gym, err := r.BySubdomain(ctx, key)
		if err != nil || gym != nil {
			return Resolution{Gym: gym, Source: SourceSubdomain}, err
		}
	}

	if id, ok := parseID(req.Header.Get(HeaderGymID)); ok {
		gym, err := r.ByID(ctx, id)
		if err != nil || gym != nil {
			return Resolution{Gym: gym, Source: SourceHeaderID}, err
		}
	}

	if id, ok := parseID(req.URL.Query().Get(QueryGymID)); ok {
		gym, err := r.ByID(ctx, id)
		if err != nil || gym != nil {
			return Resolution{Gym: gym, Source: SourceQueryID}, err
		}
	}

	if originKey := r.hosts.FromOrigin(req.Header.Get("Origin")); originKey != "" && originKey != key {
		gym, err := r.BySubdomain(ctx, originKey)
		if err != nil || gym != nil {
			return Resolution{Gym: gym, Source: SourceOrigin}, err
		}
	}

	return Resolution{Source: SourceNone}, nil
}

// BySubdomain looks a gym up by routing key. Returns nil, nil when absent.
func (r *Resolver) BySubdomain(ctx context.Context, subdomain string) (*Gym, error) {
	return r.lookup(ctx, SubdomainKey(subdomain), func() (*Gym, error) {
		return r.provider.GetBySubdomain(ctx, subdomain)
	})
}

// ByID looks a gym up by numeric id. Returns nil, nil when absent.
func (r *Resolver) ByID(ctx context.Context, id int64) (*Gym, error) {
	return r.lookup(ctx, IDKey(id), func() (*Gym, error) {
		return r.provider.GetByID(ctx, id)
	})
}

// Invalidate drops every cached entry for gym.
func (r *Resolver) Invalidate(ctx context.Context, gym *Gym) error {
	if gym == nil {
		return nil
	}
	return r.cache.Delete(ctx, Keys(gym)...)
}

func (r *Resolver) lookup(ctx context.Context, key string, load func() (*Gym, error)) (*Gym, error) {
	if cached, ok := r.cache.Get(ctx, key); ok {
		return cached, nil
	}

	gym, err := load()
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return nil, nil
		}
		return nil, errors.Join(ErrLookupFailed, err)
	}
	if gym == nil {
		return nil, nil
	}

	if r.ttl > 0 {
		for _, k := range Keys(gym) {
			if err := r.cache.Set(ctx, k, gym, r.ttl); err != nil {
				r.logger.WarnContext(ctx, "failed to cache tenant", slog.String("key", k), logger.Error(err))
			}
		}
	}
	return gym.Clone(), nil
}

func parseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
