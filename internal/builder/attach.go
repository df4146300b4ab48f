package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/graph"
	"github.com/vk/provgraphgo/internal/record"
)

// Fixed attribute names for the two collections that always aggregate.
const (
	attrTags      = "tags"
	attrFileLinks = "file_links"
)

// tagSeparator marks a plain string entry as a namespaced tag. Plain strings
// without it are ignored.
const tagSeparator = "::"

// attachAssets materializes the record's eligible collections onto the graph
// according to the build options.
func attachAssets(ctx context.Context, g *graph.Graph, uid string, rec *record.Record, opts Options) error {
	if opts.AddAttributes {
		for _, entries := range [][]json.RawMessage{rec.Parameters, rec.Properties, rec.Conditions} {
			if err := attachValues(ctx, g, uid, entries, opts); err != nil {
				return err
			}
		}
	}
	if opts.AddFileLinks {
		if err := attachValues(ctx, g, uid, rec.FileLinks, opts); err != nil {
			return err
		}
	}
	if opts.AddTags {
		if err := attachValues(ctx, g, uid, rec.Tags, opts); err != nil {
			return err
		}
	}
	return nil
}

// attachValues walks one collection, dispatching each entry on its shape and
// type discriminator, and places the formatted result per the placement
// policy. Tags and file links are always attached inline, even in
// separate-node mode, since several of each are expected per node.
func attachValues(ctx context.Context, g *graph.Graph, uid string, entries []json.RawMessage, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	for _, raw := range entries {
		tag, asset, err := record.DecodeEntry(raw)
		if err != nil {
			if opts.Strict {
				return fmt.Errorf("attribute entry on %q: %w", uid, err)
			}
			logger.Warn("Malformed attribute entry, dropped.", "node", uid, "error", err)
			continue
		}

		if asset == nil {
			if strings.Contains(tag, tagSeparator) {
				addToGraph(g, uid, tag, attrTags, false)
			}
			continue
		}

		if asset.Type == "file_link" {
			addToGraph(g, uid, asset.URL, attrFileLinks, false)
			continue
		}

		name := asset.Name
		value := asset.Value
		if asset.Type == "property_and_conditions" && asset.Property != nil {
			name = asset.Property.Name
			value = asset.Property.Value
		}
		if value == nil {
			if opts.Strict {
				return fmt.Errorf("attribute %q on %q has no value", name, uid)
			}
			logger.Warn("Attribute entry without value, dropped.", "node", uid, "attribute", name)
			continue
		}

		formatted, ok := formatValue(name, value)
		if !ok {
			// Unsupported value type: ignore, don't error, unless strict.
			if opts.Strict {
				return fmt.Errorf("unsupported attribute value type %q on %q", value.Type, uid)
			}
			logger.Warn("Unsupported attribute value type, dropped.", "node", uid, "attribute", name, "value_type", value.Type)
			continue
		}
		addToGraph(g, uid, formatted, name, opts.SeparateNodes)
	}
	return nil
}

// addToGraph places one formatted value: either as a separate rectangle node
// hanging off its owner, or appended to the owner's attribute sequence.
func addToGraph(g *graph.Graph, uid, value, attrName string, separate bool) {
	if separate {
		n := g.AddNode(value, graph.ColorOrange)
		n.Shape = graph.ShapeRectangle
		g.AddEdge(uid, value)
		return
	}
	owner, ok := g.Node(uid)
	if !ok {
		owner = g.AddNode(uid, "")
	}
	owner.AppendAttr(attrName, value)
}
