package graph

// Graph is a directed multigraph keyed by identifier strings. Nodes keep
// their insertion order and edges keep both their insertion order and their
// multiplicity; adjacency maps back traversal. A graph is owned by the single
// build pass that creates it and is never mutated concurrently.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
}

// New creates an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}

// AddNode adds a node with the given ID and color, returning it. Adding an
// existing ID updates its color (when non-empty) rather than erroring, which
// lets a node referenced by an edge before its record is seen pick up its
// style later.
func (g *Graph) AddNode(id string, color Color) *Node {
	n, ok := g.nodes[id]
	if !ok {
		n = &Node{
			ID:    id,
			succs: make(map[string]*Node),
			preds: make(map[string]*Node),
		}
		g.nodes[id] = n
		g.order = append(g.order, id)
	}
	if color != "" {
		n.Color = color
	}
	return n
}

// AddEdge records a directed edge from -> to. Endpoints that do not exist yet
// are created with no style. Repeated edges between the same pair are kept;
// they are not deduplicated.
func (g *Graph) AddEdge(from, to string) {
	fromNode := g.AddNode(from, "")
	toNode := g.AddNode(to, "")
	fromNode.succs[to] = toNode
	toNode.preds[from] = fromNode
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether the ID exists in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Edges returns all edges in insertion order, duplicates included.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, counting multiplicity.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// successors returns distinct successor IDs of id.
func (g *Graph) successors(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(n.succs))
	for s := range n.succs {
		out = append(out, s)
	}
	return out
}

// predecessors returns distinct predecessor IDs of id.
func (g *Graph) predecessors(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(n.preds))
	for p := range n.preds {
		out = append(out, p)
	}
	return out
}
