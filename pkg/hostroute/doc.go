// Package hostroute maps browser navigation between the root domain and
// tenant subdomains.
//
// On the root domain, a first path segment that is a valid routing key is
// moved into the host:
//
//	GET http://gym.app/acme/members?x=1  ->  307 http://acme.gym.app/members?x=1
//
// On a tenant subdomain, the routing key is moved into the path before
// routing, without a client-visible redirect:
//
//	GET http://acme.gym.app/members  ->  handled as /acme/members
//
// Every other request passes through unchanged: non-GET/HEAD methods,
// deployment-preview hosts, custom hosts and any request whose first path
// segment is reserved (api, super-admin, static assets, health checks).
//
// Mount Router.Middleware with chi's Router.Use so the rewrite happens
// before route matching.
package hostroute
