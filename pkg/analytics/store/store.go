package store

import (
	"context"
	"strings"
)

// Dataset names understood by every Store implementation.
const (
	Posts    = "posts"
	Comments = "comments"
)

// Column qualifiers, grouped by column family the way the raw records are
// written by the acquisition layer.
const (
	ColPostID        = "post_data:id"
	ColPostTitle     = "post_data:title"
	ColPostSelftext  = "post_data:selftext"
	ColPostSubreddit = "post_data:subreddit"
	ColPostAuthor    = "post_data:author"
	ColPostCreated   = "post_data:created_utc"

	ColCommentID       = "comment_data:id"
	ColCommentPostID   = "comment_data:post_id"
	ColCommentText     = "comment_data:text"
	ColCommentAuthor   = "comment_data:author"
	ColCommentCreated  = "comment_data:created_utc"
	ColCommentParentID = "comment_data:parent_id"

	ColScore       = "metrics:score"
	ColUps         = "metrics:ups"
	ColDowns       = "metrics:downs"
	ColNumComments = "metrics:num_comments"
)

// Store is the raw record boundary: a column-family style table per dataset.
type Store interface {
	Close() error

	// Put replaces every column of the row stored under key.
	Put(ctx context.Context, dataset string, row Row) error

	// Scan returns all rows of a dataset. An unknown or empty dataset yields
	// no rows and no error; errors mean the backing store could not be read.
	Scan(ctx context.Context, dataset string) ([]Row, error)
}

// Row is one stored record: a row key plus qualified column values.
type Row struct {
	Key     string
	Columns map[string]string
}

// Get returns a column value and whether it was present.
func (r Row) Get(col string) (string, bool) {
	v, ok := r.Columns[col]
	return v, ok
}

// PostKey builds the row key for a post.
func PostKey(id string) string {
	return "post_" + id
}

// CommentKey builds the row key for a comment belonging to postID.
func CommentKey(id, postID string) string {
	return "comment_" + id + "_post_" + postID
}

// IDFromKey recovers the record id from a row key produced by PostKey or
// CommentKey. It returns "" for keys of any other shape.
func IDFromKey(key string) string {
	switch {
	case strings.HasPrefix(key, "post_"):
		return strings.TrimPrefix(key, "post_")
	case strings.HasPrefix(key, "comment_"):
		rest := strings.TrimPrefix(key, "comment_")
		if i := strings.Index(rest, "_post_"); i >= 0 {
			return rest[:i]
		}
		return rest
	}
	return ""
}

// ValidDataset reports whether name is one of the known datasets.
func ValidDataset(name string) bool {
	return name == Posts || name == Comments
}
