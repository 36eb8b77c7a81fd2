// Package tenant associates every request with at most one gym.
//
// # Architecture
//
// Three pieces cooperate:
//
// 1. Provider loads gyms from the persistence layer by routing key or id.
// 2. Resolver decides which gym a request belongs to, optionally through a Cache.
// 3. Middleware stores the result in the request context.
//
// Resolution order, first hit wins:
//
//   - routing key from hostname.Parser (X-Gym-Subdomain, ?subdomain=, host label)
//   - X-Gym-ID header
//   - gymId query parameter
//   - routing key derived from the Origin header, tried once
//
// The last step exists for browser fetches from a tenant subdomain to a shared
// API origin: the Host header names the API, the Origin header still names the
// tenant.
//
// A request that matches no gym is tenant-less, not failed. Whether a tenant
// is mandatory is decided per route by the guard package. Only persistence
// errors abort a request; they render as a 500 AuthenticationError.
//
// # Usage
//
//	resolver := tenant.NewResolver(hostname.NewParser(rootDomain), store,
//		tenant.WithCache(tenant.NewMemoryCache(0), time.Minute),
//	)
//	r.Use(tenant.Middleware(resolver))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		gym, ok := tenant.FromContext(r.Context())
//		...
//	}
//
// # Caching
//
// MemoryCache serves a single instance; RedisCache shares entries between
// instances. Both return copies, so each request gets its own Gym value.
// Call Resolver.Invalidate after changing a gym's status.
package tenant
