package builder

import (
	"context"
	"fmt"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/graph"
	"github.com/vk/provgraphgo/internal/record"
)

// DefaultNamespace is the identifier namespace tracked when none is chosen.
const DefaultNamespace = "auto"

// progressEvery is how many records pass between progress log lines.
const progressEvery = 1000

// Options control a single build pass.
type Options struct {
	// Scope selects which record variant (spec, run, template) becomes part
	// of the graph. Records in other scopes are ignored.
	Scope record.Scope

	// Namespace is the identifier namespace to key nodes by. Records without
	// an identifier in it are skipped. Defaults to DefaultNamespace.
	Namespace string

	// AddAttributes, AddFileLinks and AddTags choose which collections the
	// attacher materializes.
	AddAttributes bool
	AddFileLinks  bool
	AddTags       bool

	// SeparateNodes places typed attribute values as their own nodes instead
	// of inline node attributes. Tags and file links stay inline regardless.
	SeparateNodes bool

	// Strict turns unrecognized attribute value types into build errors
	// instead of logged skips.
	Strict bool
}

// Result is the outcome of one build pass.
type Result struct {
	// Graph is keyed by identifier in the tracked namespace.
	Graph *graph.Graph
	// Relabeled is a copy keyed by human-readable labels, ready to render.
	Relabeled *graph.Graph
	// Names maps identifiers to display labels.
	Names map[string]string
	// Total is the number of records examined.
	Total int
	// Disregarded counts top-level attribute-template records, which carry
	// no provenance links.
	Disregarded int
}

// Build constructs a fresh graph from the given records. It returns a nil
// Result (and no error) when zero eligible records are found; callers must
// treat that as nothing to draw.
func Build(ctx context.Context, records []*record.Record, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	logger.Info("Building graph.", "scope", opts.Scope.String(), "namespace", opts.Namespace, "records", len(records))

	if len(records) == 0 {
		return nil, nil
	}

	g := graph.New()
	names := make(map[string]string)
	disregarded := 0

	for i, rec := range records {
		if rec.Kind.Category.IsAttribute() {
			disregarded++
			continue
		}
		uid, ok := rec.UID(opts.Namespace)
		if !ok {
			logger.Debug("Record missing tracked namespace, skipped.", "name", rec.Name, "type", rec.Type)
			continue
		}
		names[uid] = displayLabel(rec.Name, uid)
		if err := addRecord(ctx, g, uid, rec, opts); err != nil {
			return nil, err
		}
		if i%progressEvery == 0 {
			logger.Info("Records processed.", "count", i)
		}
	}

	if g.NodeCount() == 0 {
		logger.Warn("No eligible records found, nothing to draw.", "scope", opts.Scope.String())
		return nil, nil
	}

	res := &Result{
		Graph:       g,
		Relabeled:   g.Relabel(names),
		Names:       names,
		Total:       len(records),
		Disregarded: disregarded,
	}
	logger.Info("Graph built.", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "disregarded", disregarded)
	return res, nil
}

// addRecord creates the node and the kind-specific edges for one record,
// then hands it to the attacher. Records outside the build scope are ignored
// here rather than earlier so the name mapping still learns their labels.
func addRecord(ctx context.Context, g *graph.Graph, uid string, rec *record.Record, opts Options) error {
	if rec.Kind.Scope != opts.Scope {
		return nil
	}
	switch rec.Kind.Category {
	case record.CategoryProcess:
		g.AddNode(uid, graph.ColorRed)
		return attachAssets(ctx, g, uid, rec, opts)
	case record.CategoryIngredient:
		g.AddNode(uid, graph.ColorBlue)
		if rec.Process != nil {
			g.AddEdge(uid, rec.Process.ID)
		}
		if err := attachAssets(ctx, g, uid, rec, opts); err != nil {
			return err
		}
		if rec.Material != nil {
			g.AddEdge(rec.Material.ID, uid)
		}
		return nil
	case record.CategoryMaterial:
		g.AddNode(uid, graph.ColorGreen)
		if err := attachAssets(ctx, g, uid, rec, opts); err != nil {
			return err
		}
		if rec.Process != nil {
			g.AddEdge(rec.Process.ID, uid)
		}
		return nil
	case record.CategoryMeasurement:
		g.AddNode(uid, graph.ColorPurple)
		if err := attachAssets(ctx, g, uid, rec, opts); err != nil {
			return err
		}
		if rec.Material != nil {
			g.AddEdge(uid, rec.Material.ID)
		}
		return nil
	default:
		ctxlog.FromContext(ctx).Debug("Record of unhandled category, skipped.", "type", rec.Type, "uid", uid)
		return nil
	}
}

// displayLabel builds the human-readable node label: the record name plus
// the first three characters of its identifier.
func displayLabel(name, uid string) string {
	short := uid
	if len(short) > 3 {
		short = short[:3]
	}
	return fmt.Sprintf("%s,  %s", name, short)
}
