package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store"
)

// Post is one submission as found in Reddit API dumps.
type Post struct {
	ID          string      `json:"id"`
	Title       *string     `json:"title"`
	Selftext    string      `json:"selftext"`
	Subreddit   string      `json:"subreddit"`
	Author      string      `json:"author"`
	CreatedUTC  json.Number `json:"created_utc"`
	Score       json.Number `json:"score"`
	Ups         json.Number `json:"ups"`
	Downs       json.Number `json:"downs"`
	NumComments json.Number `json:"num_comments"`
}

// Comment is one comment as found in Reddit API dumps. LinkID ("t3_<post>")
// stands in for PostID when the latter is absent.
type Comment struct {
	ID         string      `json:"id"`
	PostID     string      `json:"post_id"`
	LinkID     string      `json:"link_id"`
	Body       *string     `json:"body"`
	Author     string      `json:"author"`
	CreatedUTC json.Number `json:"created_utc"`
	ParentID   string      `json:"parent_id"`
	Score      json.Number `json:"score"`
	Ups        json.Number `json:"ups"`
	Downs      json.Number `json:"downs"`
}

// LoadPosts loads posts from a JSONL file.
func LoadPosts(path string) ([]Post, error) {
	return loadJSONL[Post](path)
}

// LoadComments loads comments from a JSONL file.
func LoadComments(path string) ([]Comment, error) {
	return loadJSONL[Comment](path)
}

func loadJSONL[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []T
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item T
		dec := json.NewDecoder(strings.NewReader(line))
		dec.UseNumber()
		if err := dec.Decode(&item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}

// Row converts the post into a store row keyed "post_<id>".
func (p Post) Row() store.Row {
	cols := map[string]string{store.ColPostID: p.ID}
	if p.Title != nil {
		cols[store.ColPostTitle] = *p.Title
	}
	setString(cols, store.ColPostSelftext, p.Selftext)
	setString(cols, store.ColPostSubreddit, p.Subreddit)
	setString(cols, store.ColPostAuthor, p.Author)
	setString(cols, store.ColPostCreated, p.CreatedUTC.String())
	setString(cols, store.ColScore, p.Score.String())
	setString(cols, store.ColUps, p.Ups.String())
	setString(cols, store.ColDowns, p.Downs.String())
	setString(cols, store.ColNumComments, p.NumComments.String())
	return store.Row{Key: store.PostKey(p.ID), Columns: cols}
}

// Post returns the id of the post the comment belongs to.
func (c Comment) Post() string {
	if c.PostID != "" {
		return c.PostID
	}
	return strings.TrimPrefix(c.LinkID, corpus.PostPrefix)
}

// Row converts the comment into a store row keyed "comment_<id>_post_<post>".
func (c Comment) Row() store.Row {
	postID := c.Post()
	cols := map[string]string{store.ColCommentID: c.ID}
	if c.Body != nil {
		cols[store.ColCommentText] = *c.Body
	}
	setString(cols, store.ColCommentPostID, postID)
	setString(cols, store.ColCommentAuthor, c.Author)
	setString(cols, store.ColCommentCreated, c.CreatedUTC.String())
	setString(cols, store.ColCommentParentID, c.ParentID)
	setString(cols, store.ColScore, c.Score.String())
	setString(cols, store.ColUps, c.Ups.String())
	setString(cols, store.ColDowns, c.Downs.String())
	return store.Row{Key: store.CommentKey(c.ID, postID), Columns: cols}
}

func setString(cols map[string]string, col, v string) {
	if v != "" {
		cols[col] = v
	}
}

// Stats counts imported and skipped records.
type Stats struct {
	Posts    int
	Comments int
	Skipped  int
}

// Import writes posts and comments into st. Records without an id are
// skipped. The first store error aborts the import.
func Import(ctx context.Context, st store.Store, posts []Post, comments []Comment) (Stats, error) {
	var stats Stats
	for _, p := range posts {
		if strings.TrimSpace(p.ID) == "" {
			stats.Skipped++
			continue
		}
		if err := st.Put(ctx, store.Posts, p.Row()); err != nil {
			return stats, fmt.Errorf("import post %s: %w", p.ID, err)
		}
		stats.Posts++
	}
	for _, c := range comments {
		if strings.TrimSpace(c.ID) == "" {
			stats.Skipped++
			continue
		}
		if err := st.Put(ctx, store.Comments, c.Row()); err != nil {
			return stats, fmt.Errorf("import comment %s: %w", c.ID, err)
		}
		stats.Comments++
	}
	return stats, nil
}
