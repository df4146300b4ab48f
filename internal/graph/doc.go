// Package graph implements the directed multigraph at the center of the
// application: provenance records become nodes keyed by identifier, and the
// domain relationship rules become directed edges. The package also carries
// the read-only analysis surface (traversal, components, cycles, isolates)
// and subgraph extraction used for identifier-scoped views.
package graph
