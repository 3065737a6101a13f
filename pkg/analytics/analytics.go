// Package analytics runs every corpus analysis in one pass and assembles
// the results into a report.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/config"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/engagement"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/frequency"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/graph"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/report"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/temporal"
)

// Engine is the analytics facade
type Engine struct {
	store    store.Store
	accessor *corpus.Accessor
	comp     *config.Components
	builder  *report.Builder
	now      func() time.Time
}

// Options configures an Engine
type Options struct {
	Store      store.Store
	Components *config.Components // defaults when nil
	Now        func() time.Time   // time.Now when nil
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	comp := opts.Components
	if comp == nil {
		comp = config.Build(config.Default())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:    opts.Store,
		accessor: corpus.NewAccessor(opts.Store),
		comp:     comp,
		builder:  report.New(),
		now:      now,
	}
}

// Close releases the underlying store.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Analyze loads posts and comments once and runs every analysis over them.
func (e *Engine) Analyze(ctx context.Context) (report.Report, error) {
	posts, err := e.accessor.Load(ctx, store.Posts)
	if err != nil {
		return report.Report{}, fmt.Errorf("analyze: %w", err)
	}
	comments, err := e.accessor.Load(ctx, store.Comments)
	if err != nil {
		return report.Report{}, fmt.Errorf("analyze: %w", err)
	}
	return e.Report(posts, comments), nil
}

// Report runs every analysis over already loaded corpora.
func (e *Engine) Report(posts, comments corpus.Corpus) report.Report {
	limits := e.comp.Config.Limits
	r := e.builder.Build(e.now())

	r.PostCount = posts.Len()
	r.CommentCount = comments.Len()

	r.TopSubreddits = frequency.TopValues(posts, frequency.FieldSubreddit, limits.TopValues)
	r.TopAuthors = frequency.TopValues(posts, frequency.FieldAuthor, limits.TopValues)
	r.MostCommentedPosts = frequency.TopValues(comments, frequency.FieldPostID, limits.TopValues)

	r.Engagement = engagement.Mean(posts)
	for _, p := range engagement.TopScoring(posts, limits.TopValues) {
		s := report.PostSummary{ID: p.ID, Subreddit: p.Subreddit, Author: p.Author, Score: *p.Score}
		if p.Text != nil {
			s.Title = *p.Text
		}
		r.TopScoringPosts = append(r.TopScoringPosts, s)
	}

	r.SentimentCounts = e.comp.Sentiment.Counts(posts, comments)
	r.Sentiment = r.SentimentCounts.Distribution()

	r.Topics = e.comp.Topics.Extract(posts)

	g := graph.Build(comments)
	r.Influence = e.comp.Influence.RankGraph(posts, comments, g, limits.Influence)
	r.ReplyGraph = report.GraphSummary{Nodes: g.NodeCount(), Edges: g.EdgeCount()}

	r.Temporal = temporal.Aggregate(posts)
	r.Heatmap = temporal.Heatmap(posts)
	r.Daily = temporal.Daily(posts)

	return r
}
