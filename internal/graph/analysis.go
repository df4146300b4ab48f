package graph

// StronglyConnectedComponents returns the strongly connected components of
// the graph using Tarjan's algorithm. Component membership is deterministic;
// components come out in discovery order over node insertion order.
func (g *Graph) StronglyConnectedComponents() [][]string {
	index := make(map[string]int, len(g.nodes))
	lowlink := make(map[string]int, len(g.nodes))
	onStack := make(map[string]bool, len(g.nodes))
	var stack []string
	var components [][]string
	next := 0

	var strongconnect func(v string)
	strongconnect = func(v string) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.successors(v) {
			if _, seen := index[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}

		if lowlink[v] == index[v] {
			var comp []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			components = append(components, comp)
		}
	}

	for _, v := range g.order {
		if _, seen := index[v]; !seen {
			strongconnect(v)
		}
	}
	return components
}

// WeaklyConnectedComponents returns the connected components of the graph
// with edge direction ignored.
func (g *Graph) WeaklyConnectedComponents() [][]string {
	seen := make(Set, len(g.nodes))
	var components [][]string
	for _, start := range g.order {
		if _, ok := seen[start]; ok {
			continue
		}
		var comp []string
		queue := []string{start}
		seen[start] = struct{}{}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, next := range append(g.successors(cur), g.predecessors(cur)...) {
				if _, ok := seen[next]; ok {
					continue
				}
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
		components = append(components, comp)
	}
	return components
}

// ComponentOf returns the strongly or weakly connected component containing
// id. An id absent from every component yields an empty set; a present node
// is always in exactly one.
func (g *Graph) ComponentOf(id string, strong bool) Set {
	var components [][]string
	if strong {
		components = g.StronglyConnectedComponents()
	} else {
		components = g.WeaklyConnectedComponents()
	}
	for _, comp := range components {
		for _, member := range comp {
			if member == id {
				out := make(Set, len(comp))
				for _, m := range comp {
					out[m] = struct{}{}
				}
				return out
			}
		}
	}
	return make(Set)
}

// SimpleCycles enumerates all simple cycles in the graph. Each cycle is
// reported once, rooted at its earliest-inserted node, as the ordered list of
// nodes along the cycle. Self-loops are reported as single-element cycles.
func (g *Graph) SimpleCycles() [][]string {
	ids := g.order
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	// Distinct adjacency by position; multi-edges would otherwise report the
	// same cycle twice. Self-loops are collected separately.
	adj := make([][]int, len(ids))
	selfLoop := make([]bool, len(ids))
	for i, id := range ids {
		for _, s := range g.successors(id) {
			j := pos[s]
			if j == i {
				selfLoop[i] = true
				continue
			}
			adj[i] = append(adj[i], j)
		}
	}

	var cycles [][]string
	for i, loop := range selfLoop {
		if loop {
			cycles = append(cycles, []string{ids[i]})
		}
	}

	// Every remaining cycle is found exactly once by rooting the search at
	// its minimum-position node and only visiting nodes at or after the root.
	onPath := make([]bool, len(ids))
	var path []int
	var root int
	var search func(v int)
	search = func(v int) {
		path = append(path, v)
		onPath[v] = true
		for _, w := range adj[v] {
			if w < root {
				continue
			}
			if w == root {
				cycle := make([]string, len(path))
				for k, p := range path {
					cycle[k] = ids[p]
				}
				cycles = append(cycles, cycle)
				continue
			}
			if !onPath[w] {
				search(w)
			}
		}
		path = path[:len(path)-1]
		onPath[v] = false
	}
	for root = 0; root < len(ids); root++ {
		search(root)
	}
	return cycles
}

// Isolates returns the nodes with no incident edges, in insertion order.
func (g *Graph) Isolates() []string {
	var out []string
	for _, id := range g.order {
		n := g.nodes[id]
		if len(n.succs) == 0 && len(n.preds) == 0 {
			out = append(out, id)
		}
	}
	return out
}
