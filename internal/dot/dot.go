// Package dot is the renderer adapter: it serializes a graph into DOT text
// and hands it to the external graphviz engine for hierarchical layout and
// SVG rendering.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/provgraphgo/internal/graph"
)

// Fixed spacing applied before layout.
const (
	nodeSep = "0.4"
	rankSep = "1"
)

// graphName is the name of the emitted digraph.
const graphName = "provenance"

// Marshal serializes the graph as DOT. Nodes appear in insertion order with
// their color, shape and attribute sequences; edges follow in insertion
// order, multiplicity included. graphAttrs, if any, are emitted as extra
// graph-level attributes in sorted key order, after the fixed spacing
// parameters. Output is byte-identical across runs for the same graph.
func Marshal(g *graph.Graph, graphAttrs map[string]any) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", graphName)
	fmt.Fprintf(&sb, "\tnodesep=%s;\n", nodeSep)
	fmt.Fprintf(&sb, "\tranksep=%s;\n", rankSep)

	extra := make([]string, 0, len(graphAttrs))
	for k := range graphAttrs {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		fmt.Fprintf(&sb, "\t%s=%s;\n", quote(k), quote(fmt.Sprintf("%v", graphAttrs[k])))
	}

	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		sb.WriteByte('\t')
		sb.WriteString(quote(id))
		attrs := nodeAttrs(n)
		if len(attrs) > 0 {
			sb.WriteString(" [")
			sb.WriteString(strings.Join(attrs, ", "))
			sb.WriteByte(']')
		}
		sb.WriteString(";\n")
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "\t%s -> %s;\n", quote(e.From), quote(e.To))
	}

	sb.WriteString("}\n")
	return []byte(sb.String())
}

// nodeAttrs renders one node's style and attribute sequences as DOT
// key=value pairs. A single-valued attribute renders as the bare value; a
// multi-valued one as its index-to-value mapping in insertion order.
func nodeAttrs(n *graph.Node) []string {
	var attrs []string
	if n.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%s", quote(string(n.Color))))
	}
	if n.Shape != "" {
		attrs = append(attrs, fmt.Sprintf("shape=%s", quote(string(n.Shape))))
	}
	for _, name := range n.AttrNames() {
		values := n.Attr(name)
		attrs = append(attrs, fmt.Sprintf("%s=%s", quote(name), quote(renderValues(name, values))))
	}
	return attrs
}

// renderValues formats an attribute's value sequence. Tags and file links
// always render as an index mapping, even with one entry, since several are
// expected; other attributes only switch to the mapping form on the second
// value.
func renderValues(name string, values []string) string {
	if len(values) == 1 && name != "tags" && name != "file_links" {
		return values[0]
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %s", i, v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// quote wraps a string in DOT double quotes, escaping embedded quotes and
// backslashes.
func quote(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + replacer.Replace(s) + `"`
}
