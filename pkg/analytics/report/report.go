package report

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/engagement"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/frequency"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/influence"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/sentiment"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/temporal"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/topics"
)

// Builder stamps reports with monotonic ULIDs. Safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is the result of one analysis run.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	PostCount    int `json:"post_count"`
	CommentCount int `json:"comment_count"`

	TopSubreddits      []frequency.ValueCount `json:"top_subreddits"`
	TopAuthors         []frequency.ValueCount `json:"top_authors"`
	MostCommentedPosts []frequency.ValueCount `json:"most_commented_posts"`

	Engagement      engagement.Metrics `json:"engagement"`
	TopScoringPosts []PostSummary      `json:"top_scoring_posts"`

	Sentiment       sentiment.Distribution `json:"sentiment"`
	SentimentCounts sentiment.Counts       `json:"sentiment_counts"`

	Topics []topics.Topic `json:"topics"`

	Influence  []influence.Score `json:"influence"`
	ReplyGraph GraphSummary      `json:"reply_graph"`

	Temporal temporal.Trends     `json:"temporal"`
	Heatmap  temporal.Grid       `json:"heatmap"`
	Daily    []temporal.DayCount `json:"daily"`
}

// PostSummary is a compact view of one post.
type PostSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subreddit string `json:"subreddit"`
	Author    string `json:"author"`
	Score     int64  `json:"score"`
}

// GraphSummary describes the reply network size.
type GraphSummary struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Build returns an empty report with a fresh ID generated at now.
func (b *Builder) Build(now time.Time) Report {
	b.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	return Report{
		ID:                 id,
		GeneratedAt:        now.UTC(),
		TopSubreddits:      []frequency.ValueCount{},
		TopAuthors:         []frequency.ValueCount{},
		MostCommentedPosts: []frequency.ValueCount{},
		TopScoringPosts:    []PostSummary{},
		Topics:             []topics.Topic{},
		Influence:          []influence.Score{},
		Daily:              []temporal.DayCount{},
		Temporal: temporal.Trends{
			ByDay:  map[string]int{},
			ByHour: map[int]int{},
		},
	}
}

// WriteText prints a plain-text summary of r.
func (r Report) WriteText(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Report %s (%s)\n", r.ID, r.GeneratedAt.Format(time.RFC3339))
	p.printf("Posts: %d  Comments: %d\n", r.PostCount, r.CommentCount)

	p.printf("\nTop Subreddits:\n")
	for _, v := range r.TopSubreddits {
		p.printf("  %s: %d posts\n", v.Value, v.Count)
	}
	p.printf("\nTop Authors:\n")
	for _, v := range r.TopAuthors {
		p.printf("  %s: %d posts\n", v.Value, v.Count)
	}

	p.printf("\nEngagement:\n")
	p.printf("  Average score: %.2f\n", r.Engagement.AvgScore)
	p.printf("  Average comments: %.2f\n", r.Engagement.AvgCommentCount)

	p.printf("\nSentiment:\n")
	p.printf("  positive: %.1f%%\n", r.Sentiment.Positive*100)
	p.printf("  neutral: %.1f%%\n", r.Sentiment.Neutral*100)
	p.printf("  negative: %.1f%%\n", r.Sentiment.Negative*100)

	p.printf("\nTopics:\n")
	for _, t := range r.Topics {
		p.printf("  %s\n", t)
	}

	p.printf("\nUser Influence:\n")
	for _, s := range r.Influence {
		p.printf("  %s: %.2f\n", s.Author, s.Total)
	}

	p.printf("\nActivity by day:\n")
	for _, day := range temporal.Days {
		if n, ok := r.Temporal.ByDay[day]; ok {
			p.printf("  %s: %d\n", day, n)
		}
	}
	p.printf("\nActivity by hour (UTC):\n")
	for h := 0; h < 24; h++ {
		if n, ok := r.Temporal.ByHour[h]; ok {
			p.printf("  %02d:00: %d\n", h, n)
		}
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
