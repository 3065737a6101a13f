package sentiment

import (
	"strings"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/ingest"
)

// negationFactor is applied to a polarity word preceded by a negation.
const negationFactor = -0.5

// Lexicon scores text by averaging the polarity of known words.
// A word directly preceded by an intensifier has its polarity multiplied;
// a negation before the word (or before its intensifier) flips and dampens it.
type Lexicon struct {
	words        map[string]float64
	intensifiers map[string]float64
	tokenizer    *ingest.Tokenizer
}

// NewLexicon returns the built-in English lexicon extended (or overridden)
// by extra. Extra keys are lowercased.
func NewLexicon(extra map[string]float64) *Lexicon {
	words := make(map[string]float64, len(defaultWords)+len(extra))
	for w, p := range defaultWords {
		words[w] = p
	}
	for w, p := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		words[w] = clamp(p)
	}
	intens := make(map[string]float64, len(defaultIntensifiers))
	for w, m := range defaultIntensifiers {
		intens[w] = m
	}
	return &Lexicon{
		words:        words,
		intensifiers: intens,
		tokenizer:    ingest.NewTokenizer(nil, ingest.WithMinLength(1), ingest.WithApostrophes()),
	}
}

// Size returns the number of polarity words.
func (l *Lexicon) Size() int { return len(l.words) }

// Polarity returns a score in [-1, 1]. Text without any lexicon word scores 0.
func (l *Lexicon) Polarity(text string) float64 {
	text = ingest.CleanText(text)
	if text == "" {
		return 0
	}
	tokens := l.tokenizer.Tokenize(text)

	var sum float64
	matched := 0
	for i, tok := range tokens {
		p, ok := l.words[tok]
		if !ok {
			continue
		}
		j := i - 1
		if j >= 0 {
			if m, ok := l.intensifiers[tokens[j]]; ok {
				p *= m
				j--
			}
		}
		if j >= 0 && isNegation(tokens[j]) {
			p *= negationFactor
		}
		sum += p
		matched++
	}
	if matched == 0 {
		return 0
	}
	return clamp(sum / float64(matched))
}

func isNegation(tok string) bool {
	switch tok {
	case "not", "no", "never", "nothing", "nobody", "none", "nor", "cannot":
		return true
	}
	return strings.HasSuffix(tok, "n't")
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"so":         1.3,
	"too":        1.2,
	"super":      1.4,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.4,
	"totally":    1.3,
	"truly":      1.2,
	"highly":     1.3,
	"quite":      1.1,
	"most":       1.2,
	"somewhat":   0.7,
	"slightly":   0.5,
	"barely":     0.5,
	"kinda":      0.8,
}

var defaultWords = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.6, "awesome": 1.0,
	"best": 1.0, "better": 0.5, "love": 0.5, "loved": 0.7, "loving": 0.6,
	"like": 0.2, "liked": 0.3, "nice": 0.6, "happy": 0.8, "glad": 0.5,
	"cool": 0.35, "fun": 0.3, "funny": 0.25, "interesting": 0.5, "beautiful": 0.85,
	"wonderful": 1.0, "fantastic": 0.4, "perfect": 1.0, "brilliant": 0.9, "helpful": 0.5,
	"useful": 0.3, "thanks": 0.2, "thank": 0.2, "agree": 0.2, "right": 0.3,
	"correct": 0.3, "win": 0.8, "winning": 0.5, "success": 0.3, "successful": 0.75,
	"easy": 0.43, "clean": 0.37, "fast": 0.2, "fine": 0.4, "favorite": 0.5,
	"impressive": 1.0, "enjoy": 0.4, "enjoyed": 0.5, "exciting": 0.3, "excited": 0.375,
	"incredible": 0.9, "solid": 0.3, "positive": 0.23, "recommend": 0.3, "worth": 0.3,
	"smart": 0.2, "clever": 0.5, "safe": 0.5, "strong": 0.43, "free": 0.4,
	"wow": 0.1, "lol": 0.8, "yes": 0.2, "legit": 0.4, "epic": 0.5,
	"respect": 0.2, "hope": 0.2, "kind": 0.6, "welcome": 0.8, "improved": 0.4,
	// negative
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"worse": -0.4, "hate": -0.8, "hated": -0.9, "sad": -0.5, "angry": -0.5,
	"annoying": -0.8, "boring": -1.0, "stupid": -0.8, "dumb": -0.375, "ugly": -0.7,
	"wrong": -0.5, "broken": -0.4, "poor": -0.4, "fail": -0.5, "failed": -0.5,
	"failure": -0.3, "problem": -0.2, "issue": -0.1, "bug": -0.2, "slow": -0.3,
	"hard": -0.3, "difficult": -0.5, "disappointing": -0.6, "disappointed": -0.75, "useless": -0.5,
	"waste": -0.2, "scam": -0.6, "fake": -0.5, "toxic": -0.6, "crap": -0.8,
	"sucks": -0.3, "suck": -0.3, "lame": -0.5, "mess": -0.4, "nightmare": -0.6,
	"pathetic": -1.0, "ridiculous": -0.33, "unfortunately": -0.5, "sorry": -0.5, "painful": -0.7,
	"dangerous": -0.6, "scary": -0.5, "sick": -0.7, "tired": -0.4, "negative": -0.3,
	"lose": -0.4, "lost": -0.1, "losing": -0.3, "expensive": -0.5, "confusing": -0.3,
	"weird": -0.5, "hurt": -0.5, "ban": -0.3, "banned": -0.3, "garbage": -0.7,
}
