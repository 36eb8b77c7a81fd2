// Package hostname turns request hosts into tenant routing keys.
//
// A routing key is the first DNS label of a tenant host: "acme" for
// "acme.gym-nexus.app:443". Hosts that name the platform itself yield no key:
// the root domain, "www." plus the root domain, deployment-preview hosts,
// IP literals and the bare "localhost".
//
// Overrides win over the host, highest first:
//
//	X-Gym-Subdomain header > ?subdomain= query parameter > host label
//
// # Usage
//
//	p := hostname.NewParser("gym-nexus.app")
//	key := p.FromRequest(r) // "" means root-domain context
//
// Browser fetches from a tenant subdomain to a shared API origin lose the
// subdomain in the Host header but keep it in the Origin header; FromOrigin
// applies the same rules to that value.
package hostname
