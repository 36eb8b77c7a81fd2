// Package api is the HTTP surface of gymnexus.
//
// Router installs the request-scoping chain on every request: chi request
// id, real IP and panic recovery, then the host router (root-domain
// redirects and subdomain rewrites), then tenant resolution. Routes add
// guard checks per group:
//
//	GET   /api/gym                            tenant
//	GET   /api/me                             tenant, admin
//	GET   /api/members/suspended              tenant, admin, feature "members"
//	GET   /api/activity-logs                  tenant, admin, feature "activity_logs"
//	PATCH /api/super-admin/gyms/{id}/status   super admin
//	POST  /api/super-admin/suspension-sweep   super admin
//	GET   /{subdomain}/*                      rewritten tenant pages
//
// Failures are rendered by apierr.Write as {"error": kind, "message": text}.
package api
