package topics

import (
	"sort"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/ingest"
)

// Vectorizer turns documents into term-id sequences over a pruned,
// lexicographically sorted vocabulary.
type Vectorizer struct {
	// MaxDF drops terms present in more than this fraction of documents.
	MaxDF float64
	// MinDF drops terms present in fewer than this many documents.
	MinDF     int
	tokenizer *ingest.Tokenizer
}

// NewVectorizer creates a vectorizer that tokenizes with tok.
func NewVectorizer(tok *ingest.Tokenizer, maxDF float64, minDF int) *Vectorizer {
	return &Vectorizer{MaxDF: maxDF, MinDF: minDF, tokenizer: tok}
}

// Fit builds the vocabulary and returns every document as a sequence of
// vocabulary indices, in token order, with pruned terms removed.
// An empty vocabulary yields nil docs.
func (v *Vectorizer) Fit(texts []string) ([]string, [][]int) {
	tokenized := make([][]string, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		tokens := v.tokenizer.Tokenize(text)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	maxCount := v.MaxDF * float64(len(texts))
	vocab := make([]string, 0, len(df))
	for tok, n := range df {
		if float64(n) > maxCount || n < v.MinDF {
			continue
		}
		vocab = append(vocab, tok)
	}
	if len(vocab) == 0 {
		return nil, nil
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, tok := range vocab {
		index[tok] = i
	}

	docs := make([][]int, len(tokenized))
	for i, tokens := range tokenized {
		ids := make([]int, 0, len(tokens))
		for _, tok := range tokens {
			if id, ok := index[tok]; ok {
				ids = append(ids, id)
			}
		}
		docs[i] = ids
	}
	return vocab, docs
}
