package builder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/graph"
	"github.com/vk/provgraphgo/internal/record"
)

// quietCtx returns a context whose logger swallows output.
func quietCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// mustRecord parses a JSON record literal or fails the test.
func mustRecord(t *testing.T, data string) *record.Record {
	t.Helper()
	rec, err := record.Parse([]byte(data))
	require.NoError(t, err)
	return rec
}

// provenanceFixture is one material made by one process from one ingredient.
func provenanceFixture(t *testing.T) []*record.Record {
	t.Helper()
	return []*record.Record{
		mustRecord(t, `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy", "process": {"id": "p1"}}`),
		mustRecord(t, `{"type": "process_run", "uids": {"auto": "p1"}, "name": "casting"}`),
		mustRecord(t, `{"type": "ingredient_run", "uids": {"auto": "i1"}, "name": "powder", "process": {"id": "p1"}, "material": {"id": "m1"}}`),
	}
}

func TestBuildProvenanceChain(t *testing.T) {
	res, err := Build(quietCtx(), provenanceFixture(t), Options{Scope: record.ScopeRun})
	require.NoError(t, err)
	require.NotNil(t, res)

	g := res.Graph
	assert.ElementsMatch(t, []string{"m1", "p1", "i1"}, g.Nodes())
	assert.ElementsMatch(t, []graph.Edge{
		{From: "p1", To: "m1"},
		{From: "i1", To: "p1"},
		{From: "m1", To: "i1"},
	}, g.Edges())

	// Colors by kind.
	m, _ := g.Node("m1")
	p, _ := g.Node("p1")
	i, _ := g.Node("i1")
	assert.Equal(t, graph.ColorGreen, m.Color)
	assert.Equal(t, graph.ColorRed, p.Color)
	assert.Equal(t, graph.ColorBlue, i.Color)
}

func TestBuildMeasurementEdge(t *testing.T) {
	records := []*record.Record{
		mustRecord(t, `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy"}`),
		mustRecord(t, `{"type": "measurement_run", "uids": {"auto": "x1"}, "name": "hardness", "material": {"id": "m1"}}`),
	}
	res, err := Build(quietCtx(), records, Options{Scope: record.ScopeRun})
	require.NoError(t, err)

	assert.Contains(t, res.Graph.Edges(), graph.Edge{From: "x1", To: "m1"})
	x, _ := res.Graph.Node("x1")
	assert.Equal(t, graph.ColorPurple, x.Color)
}

func TestBuildScopeFilter(t *testing.T) {
	records := []*record.Record{
		mustRecord(t, `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy"}`),
		mustRecord(t, `{"type": "material_spec", "uids": {"auto": "ms1"}, "name": "alloy spec"}`),
	}

	res, err := Build(quietCtx(), records, Options{Scope: record.ScopeSpec})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{"ms1"}, res.Graph.Nodes())

	// The name mapping still learns labels of out-of-scope records.
	assert.Contains(t, res.Names, "m1")
}

func TestBuildNamespaceTracking(t *testing.T) {
	records := []*record.Record{
		mustRecord(t, `{"type": "material_run", "uids": {"custom": "mat-one"}, "name": "alloy"}`),
		mustRecord(t, `{"type": "process_run", "uids": {"auto": "p1"}, "name": "casting"}`),
	}

	t.Run("default namespace skips untracked records", func(t *testing.T) {
		res, err := Build(quietCtx(), records, Options{Scope: record.ScopeRun})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, []string{"p1"}, res.Graph.Nodes())
	})

	t.Run("custom namespace", func(t *testing.T) {
		res, err := Build(quietCtx(), records, Options{Scope: record.ScopeRun, Namespace: "custom"})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, []string{"mat-one"}, res.Graph.Nodes())
	})
}

func TestBuildDisregardsAttributeTemplates(t *testing.T) {
	records := []*record.Record{
		mustRecord(t, `{"type": "parameter_template", "uids": {"auto": "t1"}, "name": "temp"}`),
		mustRecord(t, `{"type": "condition_template", "uids": {"auto": "t2"}, "name": "pressure"}`),
		mustRecord(t, `{"type": "property_template", "uids": {"auto": "t3"}, "name": "hardness"}`),
		mustRecord(t, `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy"}`),
	}
	res, err := Build(quietCtx(), records, Options{Scope: record.ScopeRun})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.Disregarded)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []string{"m1"}, res.Graph.Nodes())
}

func TestBuildNothingEligible(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		res, err := Build(quietCtx(), nil, Options{Scope: record.ScopeRun})
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("no record matches the scope", func(t *testing.T) {
		records := []*record.Record{
			mustRecord(t, `{"type": "material_spec", "uids": {"auto": "ms1"}, "name": "alloy spec"}`),
		}
		res, err := Build(quietCtx(), records, Options{Scope: record.ScopeRun})
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestBuildIdempotence(t *testing.T) {
	records := provenanceFixture(t)
	opts := Options{Scope: record.ScopeRun, AddTags: true}

	first, err := Build(quietCtx(), records, opts)
	require.NoError(t, err)
	second, err := Build(quietCtx(), records, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Graph.Nodes(), second.Graph.Nodes())
	assert.Equal(t, first.Graph.Edges(), second.Graph.Edges())
	assert.Equal(t, first.Names, second.Names)
	for _, id := range first.Graph.Nodes() {
		a, _ := first.Graph.Node(id)
		b, _ := second.Graph.Node(id)
		assert.Equal(t, a.AttrNames(), b.AttrNames())
		for _, name := range a.AttrNames() {
			assert.Equal(t, a.Attr(name), b.Attr(name))
		}
	}
}

func TestBuildRelabeledGraph(t *testing.T) {
	res, err := Build(quietCtx(), provenanceFixture(t), Options{Scope: record.ScopeRun})
	require.NoError(t, err)

	assert.Equal(t, "alloy,  m1", res.Names["m1"])
	assert.True(t, res.Relabeled.HasNode("alloy,  m1"))
	assert.Equal(t, res.Graph.NodeCount(), res.Relabeled.NodeCount())
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "alloy,  abc", displayLabel("alloy", "abcdef"))
	assert.Equal(t, "alloy,  ab", displayLabel("alloy", "ab"))
}
