package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StopSet reports whether a lowercased token should be dropped.
type StopSet interface {
	IsStop(token string) bool
}

// Tokenizer splits text into lowercased word tokens. A word is a run of
// letters, digits, marks or underscores; tokens shorter than the minimum
// length (2 by default) and stopwords are dropped.
type Tokenizer struct {
	stops       StopSet
	minLen      int
	apostrophes bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithMinLength sets the minimum token length in runes.
func WithMinLength(n int) Option {
	return func(t *Tokenizer) {
		if n > 0 {
			t.minLen = n
		}
	}
}

// WithApostrophes keeps inner apostrophes so contractions such as
// "don't" stay a single token.
func WithApostrophes() Option {
	return func(t *Tokenizer) { t.apostrophes = true }
}

// NewTokenizer creates a tokenizer. stops may be nil.
func NewTokenizer(stops StopSet, opts ...Option) *Tokenizer {
	t := &Tokenizer{stops: stops, minLen: 2}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into normalized tokens, removing stopwords.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		switch {
		case isWordRune(r):
			current.WriteRune(unicode.ToLower(r))
		case t.apostrophes && (r == '\'' || r == '’') && current.Len() > 0:
			current.WriteRune('\'')
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func (t *Tokenizer) processToken(token string) string {
	if t.apostrophes {
		token = strings.Trim(token, "'")
	}
	if utf8.RuneCountInString(token) < t.minLen {
		return ""
	}
	if t.stops != nil && t.stops.IsStop(token) {
		return ""
	}
	return token
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
