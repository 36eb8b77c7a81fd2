// Package admin models dashboard administrators and carries the
// authenticated admin through the request context.
//
// Admins are identified per request by the X-Admin-ID header and loaded
// through a Provider. Authorization decisions live in the guard package.
package admin
