// Package guard provides composable per-route checks for tenant-scoped APIs.
//
//	g := guard.New(adminStore, guard.WithLogger(log))
//	r.With(g.RequireTenant, g.RequireAdmin, g.RequireFeature(feature.Members)).
//		Get("/members/suspended", handler)
//	r.With(g.RequireSuperAdmin).Patch("/super-admin/gyms/{id}/status", handler)
//
// Failures render as JSON {"error", "message"} with a fixed status:
//
//	TenantContextMissing  400  no gym resolved
//	TenantSuspended       403  gym is not active
//	Unauthenticated       401  missing, unknown or inactive admin
//	CrossTenantAccess     403  admin not assigned to the resolved gym
//	Forbidden             403  super admin role required
//	FeatureDisabled       403  feature off for this gym
//	AuthenticationError   500  admin lookup failed
//
// The Check* functions expose the same decisions without HTTP plumbing.
// No check retries or mutates state; RequireAdmin and RequireSuperAdmin
// only attach the loaded admin to the request context.
package guard
