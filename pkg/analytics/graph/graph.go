// Package graph builds the author reply network from comments and scores
// nodes by centrality.
package graph

import "github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"

// Edge points from the replying author to the author replied to.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a directed, unweighted author graph. Nodes keep first-seen
// order and parallel edges collapse into one.
type Graph struct {
	nodes []string
	index map[string]int
	succ  [][]int
	seen  map[[2]int]struct{}
	edges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		seen:  make(map[[2]int]struct{}),
	}
}

// Build links each comment's author to the author of the comment it
// replies to. Replies to posts, replies to unknown comments and records
// with no author on either side add nothing.
func Build(comments corpus.Corpus) *Graph {
	g := New()
	byID := comments.Index()
	for _, c := range comments.Records {
		parentID, ok := c.ParentComment()
		if !ok {
			continue
		}
		parent, ok := byID[parentID]
		if !ok {
			continue
		}
		if c.Author == "" || parent.Author == "" {
			continue
		}
		g.AddEdge(c.Author, parent.Author)
	}
	return g
}

// AddEdge inserts from -> to, adding both nodes if needed.
func (g *Graph) AddEdge(from, to string) {
	u := g.node(from)
	v := g.node(to)
	key := [2]int{u, v}
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.succ[u] = append(g.succ[u], v)
	g.edges++
}

func (g *Graph) node(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.nodes)
	g.index[name] = i
	g.nodes = append(g.nodes, name)
	g.succ = append(g.succ, nil)
	return i
}

// Nodes returns author names in first-seen order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return g.edges }

// HasEdge reports whether from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	_, ok = g.seen[[2]int{u, v}]
	return ok
}

// Edges lists edges grouped by source in node order, then insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, vs := range g.succ {
		for _, v := range vs {
			out = append(out, Edge{From: g.nodes[u], To: g.nodes[v]})
		}
	}
	return out
}
