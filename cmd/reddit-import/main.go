package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/internal/dataset"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store/sqlite"
)

func main() {
	var (
		envFile  = flag.String("env", ".env", "dotenv file to load before reading the environment")
		dbPath   = flag.String("db", "", "SQLite database path (default $REDDIT_ANALYTICS_DB or reddit.db)")
		posts    = flag.String("posts", "", "Path to posts JSONL file")
		comments = flag.String("comments", "", "Path to comments JSONL file")
	)
	flag.Parse()

	if *posts == "" && *comments == "" {
		log.Fatal("--posts or --comments required")
	}

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: could not load %s (%v). Using process environment.", *envFile, err)
	}
	if *dbPath == "" {
		*dbPath = os.Getenv("REDDIT_ANALYTICS_DB")
	}
	if *dbPath == "" {
		*dbPath = "reddit.db"
	}

	stats, err := run(context.Background(), *dbPath, *posts, *comments)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	fmt.Printf("Imported %d posts and %d comments into %s (%d skipped)\n", stats.Posts, stats.Comments, *dbPath, stats.Skipped)
}

func run(ctx context.Context, dbPath, postsPath, commentsPath string) (dataset.Stats, error) {
	var (
		posts    []dataset.Post
		comments []dataset.Comment
		err      error
	)
	if postsPath != "" {
		if posts, err = dataset.LoadPosts(postsPath); err != nil {
			return dataset.Stats{}, fmt.Errorf("load posts: %w", err)
		}
	}
	if commentsPath != "" {
		if comments, err = dataset.LoadComments(commentsPath); err != nil {
			return dataset.Stats{}, fmt.Errorf("load comments: %w", err)
		}
	}

	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		return dataset.Stats{}, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return dataset.Import(ctx, st, posts, comments)
}
