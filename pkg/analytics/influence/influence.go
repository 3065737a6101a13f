// Package influence ranks authors by a blend of engagement and their
// position in the reply network.
package influence

import (
	"sort"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/engagement"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/graph"
)

// DefaultLimit is used when Rank is called with limit <= 0.
const DefaultLimit = 5

// Weights defines the scoring weights
type Weights struct {
	Post       float64 // multiplier on summed post scores
	Comment    float64 // multiplier on summed comment scores
	Centrality float64 // multiplier on reply-graph centrality
}

// DefaultWeights returns Post 1.0, Comment 0.5, Centrality 100.
func DefaultWeights() Weights {
	return Weights{Post: 1.0, Comment: 0.5, Centrality: 100}
}

// Score is one author's influence with its components.
type Score struct {
	Author     string  `json:"author"`
	Total      float64 `json:"score"`
	PostScore  float64 `json:"post_score"`
	Comment    float64 `json:"comment_score"`
	Centrality float64 `json:"centrality"`
}

// Scorer calculates influence scores.
type Scorer struct {
	weights    Weights
	centrality graph.Centrality
}

// NewScorer creates a scorer. A nil centrality uses betweenness.
func NewScorer(w Weights, c graph.Centrality) *Scorer {
	if c == nil {
		c = graph.Betweenness{}
	}
	return &Scorer{weights: w, centrality: c}
}

// Rank scores every author seen in posts, comments or the reply graph:
//
//	score = Post·Σpost scores + Comment·Σcomment scores + Centrality·centrality
//
// and returns the top limit authors, highest first. Ties keep first-seen
// order across posts, then comments, then graph nodes.
func (s *Scorer) Rank(posts, comments corpus.Corpus, limit int) []Score {
	return s.RankGraph(posts, comments, graph.Build(comments), limit)
}

// RankGraph is Rank with the reply graph of comments already built.
func (s *Scorer) RankGraph(posts, comments corpus.Corpus, g *graph.Graph, limit int) []Score {
	if limit <= 0 {
		limit = DefaultLimit
	}

	idx := make(map[string]int)
	var out []Score
	entry := func(author string) *Score {
		i, ok := idx[author]
		if !ok {
			i = len(out)
			idx[author] = i
			out = append(out, Score{Author: author})
		}
		return &out[i]
	}

	for _, t := range engagement.Totals(posts) {
		entry(t.Author).PostScore += t.Total
	}
	for _, t := range engagement.Totals(comments) {
		entry(t.Author).Comment += t.Total
	}

	centrality := s.centrality.Compute(g)
	for _, node := range g.Nodes() {
		entry(node).Centrality = centrality[node]
	}

	for i := range out {
		out[i].Total = s.weights.Post*out[i].PostScore +
			s.weights.Comment*out[i].Comment +
			s.weights.Centrality*out[i].Centrality
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []Score{}
	}
	return out
}
