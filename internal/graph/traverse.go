package graph

// Set is a set of node IDs.
type Set map[string]struct{}

// Ancestors returns every node with a directed path to id, excluding id
// itself. An absent id yields an empty set.
func (g *Graph) Ancestors(id string) Set {
	return g.reach(id, g.predecessors)
}

// Descendants returns every node reachable from id, excluding id itself.
// An absent id yields an empty set.
func (g *Graph) Descendants(id string) Set {
	return g.reach(id, g.successors)
}

// reach is a breadth-first walk along the given neighbor function.
func (g *Graph) reach(id string, neighbors func(string) []string) Set {
	out := make(Set)
	if !g.HasNode(id) {
		return out
	}
	queue := []string{id}
	seen := Set{id: {}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range neighbors(cur) {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			out[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return out
}

// SliceFunc selects a node set relative to an anchor. Ancestors, descendants
// and component membership are the built-in implementations; callers may
// supply their own.
type SliceFunc func(g *Graph, anchor string) Set

// AncestorsOf is the SliceFunc form of Ancestors.
func AncestorsOf(g *Graph, anchor string) Set { return g.Ancestors(anchor) }

// DescendantsOf is the SliceFunc form of Descendants.
func DescendantsOf(g *Graph, anchor string) Set { return g.Descendants(anchor) }

// StrongComponentOf selects the strongly connected component containing the
// anchor.
func StrongComponentOf(g *Graph, anchor string) Set { return g.ComponentOf(anchor, true) }

// WeakComponentOf selects the weakly connected component containing the
// anchor.
func WeakComponentOf(g *Graph, anchor string) Set { return g.ComponentOf(anchor, false) }

// Slice applies each function to the anchor, unions the resulting node sets,
// optionally adds the anchor itself, and returns the induced subgraph over
// the union. This is the mechanism behind "everything upstream/downstream
// of X".
func (g *Graph) Slice(anchor string, funcs []SliceFunc, addAnchor bool) *Graph {
	keep := make(Set)
	for _, fn := range funcs {
		for id := range fn(g, anchor) {
			keep[id] = struct{}{}
		}
	}
	if addAnchor {
		keep[anchor] = struct{}{}
	}
	return g.InducedSubgraph(keep)
}
