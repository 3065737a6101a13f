package config

import (
	"fmt"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/influence"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/sentiment"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/stoplist"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/topics"
)

// Loader loads the configuration file and constructs components
type Loader struct {
	Path string
}

// Components holds the analysis components built from one configuration.
type Components struct {
	Config    Config
	Stoplist  *stoplist.Manager
	Sentiment *sentiment.Classifier
	Topics    *topics.Extractor
	Influence *influence.Scorer
}

// Load reads the configuration (defaults when Path is empty) and returns
// initialized components.
func (l *Loader) Load() (*Components, error) {
	cfg := Default()
	if l.Path != "" {
		loaded, err := Load(l.Path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}
	return Build(cfg), nil
}

// Build wires components from an already validated configuration.
func Build(cfg Config) *Components {
	stops := stoplist.NewEnglish(cfg.Stopwords.Extra...)
	return &Components{
		Config:    cfg,
		Stoplist:  stops,
		Sentiment: sentiment.NewClassifier(sentiment.NewLexicon(cfg.Sentiment.Lexicon)),
		Topics:    topics.NewExtractor(cfg.TopicOptions(), stops, nil),
		Influence: influence.NewScorer(influence.Weights{
			Post:       cfg.Influence.PostWeight,
			Comment:    cfg.Influence.CommentWeight,
			Centrality: cfg.Influence.CentralityScale,
		}, nil),
	}
}
