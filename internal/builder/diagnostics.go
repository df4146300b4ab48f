package builder

import (
	"context"
	"fmt"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/graph"
)

// Diagnostics logs structural statistics for a finished graph: every simple
// cycle, the disregarded-record ratio, the strongly-connected-component
// count and the isolate count. Read-only; it never mutates the graph.
func Diagnostics(ctx context.Context, g *graph.Graph, total, disregarded int) {
	logger := ctxlog.FromContext(ctx)
	cycles := g.SimpleCycles()
	logger.Info("Graph diagnostics.",
		"cycles", cycles,
		"disregarded", fmt.Sprintf("%d/%d", disregarded, total),
		"strongly_connected_components", len(g.StronglyConnectedComponents()),
		"isolates", len(g.Isolates()),
	)
}
