package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/topics"
)

// Config is the analysis configuration file.
type Config struct {
	Limits    Limits    `yaml:"limits"`
	Influence Influence `yaml:"influence"`
	Topics    Topics    `yaml:"topics"`
	Sentiment Sentiment `yaml:"sentiment"`
	Stopwords Stopwords `yaml:"stopwords"`
}

// Limits caps the length of ranked lists.
type Limits struct {
	TopValues int `yaml:"top_values"`
	Influence int `yaml:"influence"`
}

// Influence holds the influence blend weights.
type Influence struct {
	PostWeight      float64 `yaml:"post_weight"`
	CommentWeight   float64 `yaml:"comment_weight"`
	CentralityScale float64 `yaml:"centrality_scale"`
}

// Topics configures topic extraction.
type Topics struct {
	Count         int     `yaml:"count"`
	TermsPerTopic int     `yaml:"terms_per_topic"`
	MaxDF         float64 `yaml:"max_df"`
	MinDF         int     `yaml:"min_df"`
	Iterations    int     `yaml:"iterations"`
	Seed          int64   `yaml:"seed"`
}

// Sentiment extends the polarity lexicon.
type Sentiment struct {
	Lexicon map[string]float64 `yaml:"lexicon"`
}

// Stopwords adds words to the English stoplist.
type Stopwords struct {
	Extra []string `yaml:"extra"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := topics.DefaultOptions()
	return Config{
		Limits:    Limits{TopValues: 5, Influence: 5},
		Influence: Influence{PostWeight: 1.0, CommentWeight: 0.5, CentralityScale: 100},
		Topics: Topics{
			Count:         opts.Count,
			TermsPerTopic: opts.TermsPerTopic,
			MaxDF:         opts.MaxDF,
			MinDF:         opts.MinDF,
			Iterations:    opts.Iterations,
			Seed:          opts.Seed,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	switch {
	case c.Limits.TopValues < 0:
		return invalid("limits.top_values must not be negative")
	case c.Limits.Influence < 0:
		return invalid("limits.influence must not be negative")
	case !finite(c.Influence.PostWeight):
		return invalid("influence.post_weight must be finite")
	case !finite(c.Influence.CommentWeight):
		return invalid("influence.comment_weight must be finite")
	case !finite(c.Influence.CentralityScale):
		return invalid("influence.centrality_scale must be finite")
	case c.Topics.Count < 1:
		return invalid("topics.count must be at least 1")
	case c.Topics.TermsPerTopic < 1:
		return invalid("topics.terms_per_topic must be at least 1")
	case !finite(c.Topics.MaxDF) || c.Topics.MaxDF <= 0 || c.Topics.MaxDF > 1:
		return invalid("topics.max_df must be in (0, 1]")
	case c.Topics.MinDF < 1:
		return invalid("topics.min_df must be at least 1")
	case c.Topics.Iterations < 0:
		return invalid("topics.iterations must not be negative")
	}
	for word, p := range c.Sentiment.Lexicon {
		if !finite(p) || p < -1 || p > 1 {
			return invalid(fmt.Sprintf("sentiment.lexicon[%q] must be in [-1, 1]", word))
		}
	}
	return nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TopicOptions converts the topics section.
func (c Config) TopicOptions() topics.Options {
	return topics.Options{
		Count:         c.Topics.Count,
		TermsPerTopic: c.Topics.TermsPerTopic,
		MaxDF:         c.Topics.MaxDF,
		MinDF:         c.Topics.MinDF,
		Iterations:    c.Topics.Iterations,
		Seed:          c.Topics.Seed,
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, msg)
}
