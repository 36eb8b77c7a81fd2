// Package feature describes which gym features a tenant may use.
//
// Tenants carry a Set of enabled feature names. Tenants provisioned before
// feature gating existed have no list at all; their Set is nil and every
// feature is allowed. A tenant with a list is limited to the names in it.
//
//	features := feature.Of(feature.Members, feature.Classes)
//	features.Enabled(feature.Trainers) // false
//	feature.Unrestricted().Enabled(feature.Trainers) // true
package feature
