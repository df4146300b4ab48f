package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/provgraphgo/internal/graph"
)

func TestMarshal(t *testing.T) {
	g := graph.New()
	g.AddNode("casting,  p1-", graph.ColorRed)
	g.AddNode("alloy,  m1-", graph.ColorGreen)
	g.AddEdge("casting,  p1-", "alloy,  m1-")

	out := string(Marshal(g, nil))

	assert.True(t, strings.HasPrefix(out, "digraph provenance {\n"))
	assert.Contains(t, out, "\tnodesep=0.4;\n")
	assert.Contains(t, out, "\tranksep=1;\n")
	assert.Contains(t, out, `	"casting,  p1-" [color="red"];`)
	assert.Contains(t, out, `	"alloy,  m1-" [color="green"];`)
	assert.Contains(t, out, `	"casting,  p1-" -> "alloy,  m1-";`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	// Nodes render in insertion order.
	assert.Less(t, strings.Index(out, "casting"), strings.Index(out, "alloy"))
}

func TestMarshalDeterminism(t *testing.T) {
	g := graph.New()
	g.AddNode("a", graph.ColorGreen)
	n, _ := g.Node("a")
	n.AppendAttr("tags", "group::a")
	g.AddEdge("a", "b")

	attrs := map[string]any{"label": "run graph", "rankdir": "LR"}
	first := Marshal(g, attrs)
	second := Marshal(g, attrs)
	assert.Equal(t, first, second)

	// Extra graph attributes come out in sorted key order.
	out := string(first)
	assert.Less(t, strings.Index(out, `"label"="run graph"`), strings.Index(out, `"rankdir"="LR"`))
}

func TestMarshalNodeAttributes(t *testing.T) {
	g := graph.New()
	n := g.AddNode("m1", graph.ColorGreen)
	n.AppendAttr("temperature", "temperature, 450 kelvin")
	n.AppendAttr("tags", "group::a")

	sep := g.AddNode("temperature, 450 kelvin", graph.ColorOrange)
	sep.Shape = graph.ShapeRectangle

	out := string(Marshal(g, nil))

	// Single-valued attribute renders bare; tags always as an index mapping.
	assert.Contains(t, out, `"temperature"="temperature, 450 kelvin"`)
	assert.Contains(t, out, `"tags"="{0: group::a}"`)
	assert.Contains(t, out, `shape="rectangle"`)
}

func TestMarshalMultiValuedAttribute(t *testing.T) {
	g := graph.New()
	n := g.AddNode("m1", graph.ColorGreen)
	n.AppendAttr("tags", "group::a")
	n.AppendAttr("tags", "group::b")
	n.AppendAttr("tags", "batch::7")

	out := string(Marshal(g, nil))
	assert.Contains(t, out, `"tags"="{0: group::a, 1: group::b, 2: batch::7}"`)
}

func TestMarshalMultiEdges(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	out := string(Marshal(g, nil))
	require.Equal(t, 2, strings.Count(out, `"a" -> "b";`))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, quote("plain"))
	assert.Equal(t, `"a \"b\""`, quote(`a "b"`))
	assert.Equal(t, `"a\\b"`, quote(`a\b`))
	assert.Equal(t, `"a\nb"`, quote("a\nb"))
}
