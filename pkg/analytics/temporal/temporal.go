// Package temporal buckets post activity by time in UTC.
package temporal

import (
	"sort"
	"time"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
)

// Days lists weekday names Monday first, the row order of a Grid.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Trends counts posts per weekday name and per hour of day.
type Trends struct {
	ByDay  map[string]int `json:"by_day"`
	ByHour map[int]int    `json:"by_hour"`
}

// Aggregate counts posts by weekday and hour. Posts without a timestamp
// are skipped.
func Aggregate(posts corpus.Corpus) Trends {
	tr := Trends{ByDay: make(map[string]int), ByHour: make(map[int]int)}
	for _, ts := range timestamps(posts) {
		tr.ByDay[ts.Weekday().String()]++
		tr.ByHour[ts.Hour()]++
	}
	return tr
}

// Grid is a weekday x hour count matrix; rows follow Days.
type Grid [7][24]int

// At returns the count for a weekday and hour.
func (h Grid) At(day time.Weekday, hour int) int {
	return h[dayRow(day)][hour]
}

// Heatmap counts posts per weekday and hour.
func Heatmap(posts corpus.Corpus) Grid {
	var h Grid
	for _, ts := range timestamps(posts) {
		h[dayRow(ts.Weekday())][ts.Hour()]++
	}
	return h
}

// DayCount is the number of posts on one calendar date.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Daily returns posts per calendar date in ascending date order.
func Daily(posts corpus.Corpus) []DayCount {
	counts := make(map[string]int)
	for _, ts := range timestamps(posts) {
		counts[ts.Format("2006-01-02")]++
	}
	out := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DayCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func timestamps(posts corpus.Corpus) []time.Time {
	out := make([]time.Time, 0, len(posts.Records))
	for _, r := range posts.Records {
		if r.CreatedAt == nil {
			continue
		}
		out = append(out, time.Unix(*r.CreatedAt, 0).UTC())
	}
	return out
}

// dayRow maps Sunday=0 onto a Monday-first row.
func dayRow(d time.Weekday) int {
	return (int(d) + 6) % 7
}
