package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Influence.CentralityScale != 100 || cfg.Influence.CommentWeight != 0.5 {
		t.Errorf("unexpected influence defaults: %+v", cfg.Influence)
	}
	opts := cfg.TopicOptions()
	if opts.Count != 5 || opts.Seed != 42 || opts.MaxDF != 0.95 || opts.MinDF != 2 {
		t.Errorf("unexpected topic defaults: %+v", opts)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte(`
topics:
  count: 3
  iterations: 50
influence:
  centrality_scale: 10
sentiment:
  lexicon:
    based: 0.6
stopwords:
  extra: [reddit, subreddit]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Topics.Count != 3 || cfg.Topics.Iterations != 50 {
		t.Errorf("topics = %+v", cfg.Topics)
	}
	if cfg.Topics.TermsPerTopic != 5 || cfg.Topics.Seed != 42 {
		t.Errorf("omitted topic keys should keep defaults: %+v", cfg.Topics)
	}
	if cfg.Influence.CentralityScale != 10 || cfg.Influence.PostWeight != 1.0 {
		t.Errorf("influence = %+v", cfg.Influence)
	}
	if cfg.Limits.TopValues != 5 {
		t.Errorf("limits should default, got %+v", cfg.Limits)
	}
	if cfg.Sentiment.Lexicon["based"] != 0.6 {
		t.Errorf("lexicon = %v", cfg.Sentiment.Lexicon)
	}
	if len(cfg.Stopwords.Extra) != 2 {
		t.Errorf("stopwords = %v", cfg.Stopwords.Extra)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "topics: [unclosed"},
		{"zero topics", "topics: {count: 0}"},
		{"max_df range", "topics: {max_df: 1.5}"},
		{"min_df", "topics: {min_df: 0}"},
		{"negative limit", "limits: {influence: -1}"},
		{"lexicon range", "sentiment: {lexicon: {great: 2}}"},
		{"lexicon nan", "sentiment: {lexicon: {meh: .nan}}"},
		{"lexicon inf", "sentiment: {lexicon: {meh: -.inf}}"},
		{"max_df nan", "topics: {max_df: .nan}"},
		{"centrality scale nan", "influence: {centrality_scale: .nan}"},
		{"post weight inf", "influence: {post_weight: .inf}"},
		{"comment weight nan", "influence: {comment_weight: .nan}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoaderEmptyPath(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}
	if comp.Sentiment == nil || comp.Topics == nil || comp.Influence == nil || comp.Stoplist == nil {
		t.Fatalf("components missing: %+v", comp)
	}
	if !comp.Stoplist.IsStop("the") {
		t.Error("stoplist should contain English stopwords")
	}
}

func TestLoaderNonExistent(t *testing.T) {
	loader := Loader{Path: "/nonexistent/analytics.yaml"}
	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent config")
	}
}

func TestLoaderFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analytics.yaml")
	content := "stopwords:\n  extra: [golang]\nsentiment:\n  lexicon:\n    shiny: 0.4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	comp, err := (&Loader{Path: path}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !comp.Stoplist.IsStop("golang") {
		t.Error("extra stopword should be applied")
	}

	posts := corpus.New("posts", corpus.Record{ID: "p1", Text: corpus.Text("shiny")})
	if got := comp.Sentiment.Counts(posts, corpus.New("comments")); got.Positive != 1 {
		t.Errorf("lexicon extension should classify positive, got %+v", got)
	}
}
