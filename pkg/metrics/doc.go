// Package metrics exposes Prometheus counters for tenant resolution, host
// routing, guard rejections and the suspension sweep. The Observe* methods
// plug into the hook options of the corresponding packages.
package metrics
