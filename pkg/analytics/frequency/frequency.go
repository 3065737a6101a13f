// Package frequency ranks categorical record fields by occurrence count.
package frequency

import (
	"sort"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
)

// Supported field names.
const (
	FieldSubreddit = "subreddit"
	FieldAuthor    = "author"
	FieldPostID    = "post_id"
)

// ValueCount is one ranked value.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopValues counts non-empty values of field and returns them by count
// descending, ties in first-seen order. limit <= 0 returns every value.
// Unknown fields produce an empty result.
func TopValues(c corpus.Corpus, field string, limit int) []ValueCount {
	get := accessor(field)
	if get == nil {
		return []ValueCount{}
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range c.Records {
		v := get(r)
		if v == "" {
			continue
		}
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func accessor(field string) func(corpus.Record) string {
	switch field {
	case FieldSubreddit:
		return func(r corpus.Record) string { return r.Subreddit }
	case FieldAuthor:
		return func(r corpus.Record) string { return r.Author }
	case FieldPostID:
		return func(r corpus.Record) string { return r.PostID }
	}
	return nil
}
