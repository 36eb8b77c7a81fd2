// Package audit records the gym activity log.
//
// A Logger assembles an Event from context extractors and per-call options,
// then hands it to a Storage backend (PostgreSQL in production, MemoryStorage
// in development and tests).
//
//	log := audit.NewLogger(storage,
//		audit.WithGymIDExtractor(tenant.IDFromContext),
//		audit.WithActorExtractor(actorName),
//	)
//
//	err := log.Log(ctx, audit.ActionMemberActivated,
//		audit.WithGymID(m.GymID),
//		audit.WithResource("membership", "42"),
//		audit.WithDetail("status", "Active"),
//	)
//
// Events without an actor are attributed to SystemActor. Details is a
// free-form payload stored as JSON.
package audit
