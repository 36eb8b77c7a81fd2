// Package membership holds member suspension windows and the sweep that ends
// them.
//
// A Sweeper started with Run sweeps once immediately and then every hour by
// default. Each sweep lists memberships with suspended = true and an end date
// at or before now, reactivates them one by one and appends a MEMBER_ACTIVATED
// activity log entry attributed to the System actor.
//
// Reactivation is conditional on the record still being suspended, so a
// record reactivated by a concurrent sweep is skipped and gets no second
// audit entry. A failing record is logged and counted in Result.Failed; the
// sweep moves on to the next one.
package membership
