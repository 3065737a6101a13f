// Package topics extracts latent topics from post titles.
package topics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/ingest"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/stoplist"
)

// Topic is one extracted topic. Index is 1-based.
type Topic struct {
	Index int      `json:"index"`
	Terms []string `json:"terms"`
}

func (t Topic) String() string {
	return fmt.Sprintf("Topic %d: %s", t.Index, strings.Join(t.Terms, ", "))
}

// Options tunes extraction.
type Options struct {
	Count         int
	TermsPerTopic int
	MaxDF         float64
	MinDF         int
	Iterations    int
	Seed          int64
}

// DefaultOptions returns the stock settings: 5 topics of 5 terms.
func DefaultOptions() Options {
	return Options{
		Count:         5,
		TermsPerTopic: 5,
		MaxDF:         0.95,
		MinDF:         2,
		Iterations:    200,
		Seed:          42,
	}
}

// Extractor runs vectorization and a topic model over post titles.
type Extractor struct {
	opts       Options
	vectorizer *Vectorizer
	model      Model
}

// NewExtractor builds an extractor. A nil stops uses the English list and
// a nil model uses GibbsLDA configured from opts.
func NewExtractor(opts Options, stops ingest.StopSet, model Model) *Extractor {
	if stops == nil {
		stops = stoplist.NewEnglish()
	}
	if model == nil {
		model = GibbsLDA{Iterations: opts.Iterations, Seed: opts.Seed}
	}
	return &Extractor{
		opts:       opts,
		vectorizer: NewVectorizer(ingest.NewTokenizer(stops), opts.MaxDF, opts.MinDF),
		model:      model,
	}
}

// Extract returns up to Count topics built from the non-empty titles in
// posts. Whitespace-only titles still count as documents for max_df. It
// returns an empty slice when no term survives pruning.
func (e *Extractor) Extract(posts corpus.Corpus) []Topic {
	var texts []string
	for _, r := range posts.Records {
		if r.Text == nil || *r.Text == "" {
			continue
		}
		texts = append(texts, *r.Text)
	}
	if len(texts) == 0 || e.opts.Count <= 0 {
		return []Topic{}
	}

	vocab, docs := e.vectorizer.Fit(texts)
	if len(vocab) == 0 {
		return []Topic{}
	}

	weights := e.model.Fit(docs, len(vocab), e.opts.Count)
	out := make([]Topic, 0, len(weights))
	for i, row := range weights {
		out = append(out, Topic{Index: i + 1, Terms: topTerms(row, vocab, e.opts.TermsPerTopic)})
	}
	return out
}

// topTerms picks the n highest-weighted terms, ties broken by vocabulary order.
func topTerms(weights []float64, vocab []string, n int) []string {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return weights[idx[a]] > weights[idx[b]]
	})
	if n > len(idx) || n <= 0 {
		n = len(idx)
	}
	terms := make([]string, 0, n)
	for _, i := range idx[:n] {
		terms = append(terms, vocab[i])
	}
	return terms
}
