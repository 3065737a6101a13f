package influence

import (
	"math"
	"reflect"
	"testing"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/graph"
)

func post(author string, score *int64) corpus.Record {
	return corpus.Record{ID: author + "_p", Author: author, Score: score}
}

func reply(id, author, parent string, score int64) corpus.Record {
	return corpus.Record{ID: id, Author: author, ParentID: parent, Score: corpus.Int(score)}
}

func TestRankWeights(t *testing.T) {
	posts := corpus.New("posts",
		post("alice", corpus.Int(10)),
		post("bob", corpus.Int(4)),
		post("alice", corpus.Int(2)),
		post("carol", nil),
	)
	comments := corpus.New("comments",
		reply("c1", "bob", "t3_x", 6),
		reply("c2", "carol", "t1_c1", 1),
		reply("c3", "dave", "t1_c2", 0),
	)

	got := NewScorer(DefaultWeights(), nil).Rank(posts, comments, 10)

	// carol sits between dave and bob: betweenness 1/((3-1)(3-2)) = 0.5
	want := []struct {
		author string
		total  float64
	}{
		{"carol", 0.5 + 50},
		{"alice", 12},
		{"bob", 4 + 3},
		{"dave", 0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d scores, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Author != w.author || math.Abs(got[i].Total-w.total) > 1e-9 {
			t.Errorf("rank %d = %s %.3f, want %s %.3f", i, got[i].Author, got[i].Total, w.author, w.total)
		}
	}
	if got[0].Centrality != 0.5 || got[0].Comment != 1 {
		t.Errorf("carol components = %+v", got[0])
	}
}

func TestRankTiesAndLimit(t *testing.T) {
	posts := corpus.New("posts",
		post("zed", corpus.Int(5)),
		post("amy", corpus.Int(5)),
		post("deleted", corpus.Int(5)),
		post("", corpus.Int(5)),
		post("max", corpus.Int(5)),
		post("kim", corpus.Int(5)),
	)

	got := NewScorer(DefaultWeights(), nil).Rank(posts, corpus.New("comments"), 0)
	if len(got) != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, len(got))
	}
	order := []string{"zed", "amy", "deleted", "", "max"}
	for i, a := range order {
		if got[i].Author != a {
			t.Errorf("rank %d = %q, want %q", i, got[i].Author, a)
		}
	}
}

func TestRankEmpty(t *testing.T) {
	got := NewScorer(DefaultWeights(), nil).Rank(corpus.New("posts"), corpus.New("comments"), 5)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

type constCentrality float64

func (c constCentrality) Compute(g *graph.Graph) map[string]float64 {
	out := make(map[string]float64)
	for _, n := range g.Nodes() {
		out[n] = float64(c)
	}
	return out
}

func TestRankCustomWeightsAndCentrality(t *testing.T) {
	posts := corpus.New("posts", post("alice", corpus.Int(10)))
	comments := corpus.New("comments",
		reply("c1", "bob", "t3_x", 2),
		reply("c2", "carol", "t1_c1", 2),
	)

	w := Weights{Post: 0, Comment: 1, Centrality: 1}
	got := NewScorer(w, constCentrality(3)).Rank(posts, comments, 3)

	// graph-only contribution: bob and carol get 3 each plus comment score 2
	if got[0].Author != "bob" || got[0].Total != 5 {
		t.Errorf("first = %+v, want bob 5", got[0])
	}
	if got[1].Author != "carol" || got[1].Total != 5 {
		t.Errorf("second = %+v, want carol 5", got[1])
	}
	if got[2].Author != "alice" || got[2].Total != 0 {
		t.Errorf("third = %+v, want alice 0", got[2])
	}
}

func TestRankRaisingPostScoreNeverLowersRank(t *testing.T) {
	tests := []struct {
		yScore int64
		want   []string
	}{
		{5, []string{"x", "y"}},
		{6, []string{"y", "x"}},
		{100, []string{"y", "x"}},
	}

	prev := len(tests[0].want)
	for _, tt := range tests {
		posts := corpus.New("posts", post("x", corpus.Int(5)), post("y", corpus.Int(tt.yScore)))
		got := NewScorer(DefaultWeights(), nil).Rank(posts, corpus.New("comments"), 10)
		if len(got) != len(tt.want) {
			t.Fatalf("y=%d: expected %d scores, got %+v", tt.yScore, len(tt.want), got)
		}
		rank := -1
		for i, w := range tt.want {
			if got[i].Author != w {
				t.Errorf("y=%d: rank %d = %q, want %q", tt.yScore, i, got[i].Author, w)
			}
			if got[i].Author == "y" {
				rank = i
			}
		}
		if rank < 0 || rank > prev {
			t.Errorf("y=%d: rank of y went from %d to %d", tt.yScore, prev, rank)
		}
		prev = rank
	}
}

func TestRankGraphUsesGivenGraph(t *testing.T) {
	posts := corpus.New("posts", post("alice", corpus.Int(1)))
	comments := corpus.New("comments",
		reply("c1", "bob", "t3_x", 0),
		reply("c2", "carol", "t1_c1", 0),
		reply("c3", "dave", "t1_c2", 0),
	)
	s := NewScorer(DefaultWeights(), nil)

	g := graph.Build(comments)
	if got, want := s.RankGraph(posts, comments, g, 10), s.Rank(posts, comments, 10); !reflect.DeepEqual(got, want) {
		t.Errorf("RankGraph = %+v, Rank = %+v", got, want)
	}

	// centrality comes from the graph passed in, not from comments
	got := s.RankGraph(posts, corpus.New("comments"), g, 10)
	if got[0].Author != "carol" || got[0].Centrality != 0.5 {
		t.Errorf("first = %+v, want carol with centrality 0.5", got[0])
	}
}
