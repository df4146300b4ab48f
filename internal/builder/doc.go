// Package builder turns a flat collection of provenance records into the
// directed graph the rest of the application consumes. It applies the
// kind-specific edge rules (ingredient -> process, material -> ingredient,
// process -> material, measurement -> material), optionally attaches
// parameters, properties, conditions, tags and file links either inline or
// as separate nodes, and produces the identifier-to-label name mapping used
// for rendering.
package builder
