// Package sentiment classifies post titles and comment bodies into
// positive, neutral and negative buckets.
package sentiment

import (
	"strings"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
)

// Scorer assigns a polarity in [-1, 1] to a piece of text.
type Scorer interface {
	Polarity(text string) float64
}

// Label is the class assigned to one text.
type Label int

const (
	Neutral Label = iota
	Positive
	Negative
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// Distribution holds the share of each class. Fields sum to 1 when at
// least one text was classified and are all 0 otherwise.
type Distribution struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Counts holds raw class counts.
type Counts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func (c Counts) Total() int { return c.Positive + c.Neutral + c.Negative }

// Distribution normalizes the counts.
func (c Counts) Distribution() Distribution {
	total := c.Total()
	if total == 0 {
		return Distribution{}
	}
	n := float64(total)
	return Distribution{
		Positive: float64(c.Positive) / n,
		Neutral:  float64(c.Neutral) / n,
		Negative: float64(c.Negative) / n,
	}
}

// Classifier buckets texts using a Scorer.
type Classifier struct {
	scorer Scorer
}

// NewClassifier wraps scorer. A nil scorer falls back to the built-in lexicon.
func NewClassifier(scorer Scorer) *Classifier {
	if scorer == nil {
		scorer = NewLexicon(nil)
	}
	return &Classifier{scorer: scorer}
}

// Classify labels a single text. Blank text is neutral.
func (c *Classifier) Classify(text string) Label {
	if strings.TrimSpace(text) == "" {
		return Neutral
	}
	p := c.scorer.Polarity(text)
	switch {
	case p > 0:
		return Positive
	case p < 0:
		return Negative
	default:
		return Neutral
	}
}

// Counts classifies post titles then comment bodies. Records with no
// text are skipped.
func (c *Classifier) Counts(posts, comments corpus.Corpus) Counts {
	var out Counts
	for _, set := range []corpus.Corpus{posts, comments} {
		for _, r := range set.Records {
			if r.Text == nil {
				continue
			}
			switch c.Classify(*r.Text) {
			case Positive:
				out.Positive++
			case Negative:
				out.Negative++
			default:
				out.Neutral++
			}
		}
	}
	return out
}

// Distribution returns the normalized class shares over posts and comments.
func (c *Classifier) Distribution(posts, comments corpus.Corpus) Distribution {
	return c.Counts(posts, comments).Distribution()
}
