package corpus

import "strings"

// Fullname prefixes carried by parent references.
const (
	CommentPrefix = "t1_"
	PostPrefix    = "t3_"
)

// Record is one post or comment. Optional fields are nil when the stored
// value is absent or not parseable.
type Record struct {
	ID        string
	Author    string
	CreatedAt *int64 // Unix seconds, UTC
	Score     *int64
	Text      *string // title for posts, body for comments

	// posts
	Subreddit   string
	Selftext    string
	NumComments *int64
	Ups         *int64
	Downs       *int64

	// comments
	ParentID string
	PostID   string
}

// ParentComment returns the id of the parent comment when this record
// replies to another comment rather than to the post.
func (r Record) ParentComment() (string, bool) {
	if !strings.HasPrefix(r.ParentID, CommentPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(r.ParentID, CommentPrefix)
	return id, id != ""
}

// RepliesToPost reports whether the parent reference names a post.
func (r Record) RepliesToPost() bool {
	return strings.HasPrefix(r.ParentID, PostPrefix)
}

// Int returns a pointer to v, for building records by hand.
func Int(v int64) *int64 { return &v }

// Text returns a pointer to s, for building records by hand.
func Text(s string) *string { return &s }
