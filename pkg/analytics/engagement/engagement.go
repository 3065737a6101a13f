// Package engagement aggregates numeric engagement metrics.
package engagement

import (
	"sort"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
)

// Metrics holds mean engagement over a corpus.
type Metrics struct {
	AvgScore        float64 `json:"avg_score"`
	AvgCommentCount float64 `json:"avg_comment_count"`
}

// Mean averages score and comment count over the records where each metric
// is present. Each metric has its own denominator; no data yields 0.
func Mean(c corpus.Corpus) Metrics {
	var (
		scoreSum, commentSum float64
		scoreN, commentN     int
	)
	for _, r := range c.Records {
		if r.Score != nil {
			scoreSum += float64(*r.Score)
			scoreN++
		}
		if r.NumComments != nil {
			commentSum += float64(*r.NumComments)
			commentN++
		}
	}

	var m Metrics
	if scoreN > 0 {
		m.AvgScore = scoreSum / float64(scoreN)
	}
	if commentN > 0 {
		m.AvgCommentCount = commentSum / float64(commentN)
	}
	return m
}

// AuthorTotal is the summed score of one author's records.
type AuthorTotal struct {
	Author string
	Total  float64
}

// Totals sums scores per author in first-seen order. Authors are keyed
// verbatim; records without a score are skipped.
func Totals(c corpus.Corpus) []AuthorTotal {
	idx := make(map[string]int)
	var out []AuthorTotal
	for _, r := range c.Records {
		if r.Score == nil {
			continue
		}
		i, ok := idx[r.Author]
		if !ok {
			i = len(out)
			idx[r.Author] = i
			out = append(out, AuthorTotal{Author: r.Author})
		}
		out[i].Total += float64(*r.Score)
	}
	return out
}

// TopScoring returns up to limit scored records, highest score first.
// Ties keep corpus order.
func TopScoring(c corpus.Corpus, limit int) []corpus.Record {
	var out []corpus.Record
	for _, r := range c.Records {
		if r.Score != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].Score > *out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
