package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store/sqlite"
)

func TestRunImportsIntoSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	postsPath := filepath.Join(dir, "posts.jsonl")
	commentsPath := filepath.Join(dir, "comments.jsonl")
	dbPath := filepath.Join(dir, "reddit.db")

	posts := `{"id":"p1","title":"Great news","subreddit":"golang","author":"alice","created_utc":1700000000,"score":10,"num_comments":1}
{"id":"p2","title":"Awful bug","subreddit":"golang","author":"bob","created_utc":1700003600,"score":20,"num_comments":0}
`
	comments := `{"id":"c1","post_id":"p1","body":"agree","author":"bob","parent_id":"t3_p1","score":3}
`
	if err := os.WriteFile(postsPath, []byte(posts), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(commentsPath, []byte(comments), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := run(ctx, dbPath, postsPath, commentsPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Posts != 2 || stats.Comments != 1 {
		t.Errorf("stats = %+v", stats)
	}

	// importing again replaces rows instead of duplicating them
	if _, err := run(ctx, dbPath, postsPath, ""); err != nil {
		t.Fatalf("second run: %v", err)
	}

	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	engine := analytics.New(analytics.Options{Store: st})
	defer engine.Close()

	rep, err := engine.Analyze(ctx)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.PostCount != 2 || rep.CommentCount != 1 {
		t.Errorf("counts = %d/%d", rep.PostCount, rep.CommentCount)
	}
	if len(rep.TopSubreddits) != 1 || rep.TopSubreddits[0].Count != 2 {
		t.Errorf("TopSubreddits = %v", rep.TopSubreddits)
	}
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(context.Background(), filepath.Join(dir, "x.db"), filepath.Join(dir, "missing.jsonl"), ""); err == nil {
		t.Error("expected error for missing posts file")
	}
}
