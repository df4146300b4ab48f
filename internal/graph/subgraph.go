package graph

// InducedSubgraph returns a new graph over the nodes in keep, together with
// every edge whose both endpoints are kept. IDs in keep that are absent from
// the graph are ignored. Node styles, attribute sequences and insertion
// order carry over.
func (g *Graph) InducedSubgraph(keep Set) *Graph {
	sub := New()
	for _, id := range g.order {
		if _, ok := keep[id]; !ok {
			continue
		}
		copyNodeInto(sub, g.nodes[id], id)
	}
	for _, e := range g.edges {
		if _, ok := keep[e.From]; !ok {
			continue
		}
		if _, ok := keep[e.To]; !ok {
			continue
		}
		sub.AddEdge(e.From, e.To)
	}
	return sub
}

// Relabel returns a copy of the graph with node keys renamed through the
// mapping. Keys without a mapping entry keep their original ID. Used to swap
// identifier keys for human-readable labels before rendering.
func (g *Graph) Relabel(mapping map[string]string) *Graph {
	rename := func(id string) string {
		if label, ok := mapping[id]; ok {
			return label
		}
		return id
	}
	out := New()
	for _, id := range g.order {
		copyNodeInto(out, g.nodes[id], rename(id))
	}
	for _, e := range g.edges {
		out.AddEdge(rename(e.From), rename(e.To))
	}
	return out
}

// copyNodeInto adds a style-and-attribute copy of src under the given ID.
func copyNodeInto(dst *Graph, src *Node, id string) {
	n := dst.AddNode(id, src.Color)
	n.Shape = src.Shape
	for _, name := range src.attrNames {
		for _, v := range src.attrs[name] {
			n.AppendAttr(name, v)
		}
	}
}
