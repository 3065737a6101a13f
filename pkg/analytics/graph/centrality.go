package graph

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
)

// Centrality scores every node of a graph.
type Centrality interface {
	Compute(g *Graph) map[string]float64
}

// Betweenness is normalized betweenness centrality on the directed graph.
// Raw scores come from gonum's Brandes implementation and are scaled by
// 1/((n-1)(n-2)) so they fall in [0, 1]; graphs with two or fewer nodes
// score 0.
type Betweenness struct{}

// Compute returns a score for every node. An empty graph yields an empty map.
func (Betweenness) Compute(g *Graph) map[string]float64 {
	n := g.NodeCount()
	scores := make(map[string]float64, n)
	if n == 0 {
		return scores
	}

	raw := network.Betweenness(directed(g))

	scale := 0.0
	if n > 2 {
		scale = 1 / float64((n-1)*(n-2))
	}
	for i, name := range g.nodes {
		// nodes on no shortest path are absent from raw
		scores[name] = raw[int64(i)] * scale
	}
	return scores
}

// directed copies g into a gonum graph keyed by node index. Self-loops
// lie on no shortest path between distinct nodes and are skipped.
func directed(g *Graph) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := range g.nodes {
		dg.AddNode(simple.Node(i))
	}
	for from, succ := range g.succ {
		for _, to := range succ {
			if from == to {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(from), simple.Node(to)))
		}
	}
	return dg
}
