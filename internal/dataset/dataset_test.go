package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/corpus"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store/memstore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPosts(t *testing.T) {
	path := writeFile(t, "posts.jsonl", `{"id":"p1","title":"Hello &amp; welcome","subreddit":"golang","author":"gopher","created_utc":1700000000.0,"score":12,"num_comments":3}

not json
{"id":"p2","title":"","subreddit":"rust"}
`)

	posts, err := LoadPosts(path)
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts (malformed line skipped), got %d", len(posts))
	}

	row := posts[0].Row()
	if row.Key != "post_p1" {
		t.Errorf("key = %q", row.Key)
	}
	if v, _ := row.Get(store.ColPostCreated); v != "1700000000.0" {
		t.Errorf("created_utc = %q", v)
	}
	if v, _ := row.Get(store.ColScore); v != "12" {
		t.Errorf("score = %q", v)
	}

	empty := posts[1].Row()
	if v, ok := empty.Get(store.ColPostTitle); !ok || v != "" {
		t.Errorf("present empty title should be kept, got %q %v", v, ok)
	}
	if _, ok := empty.Get(store.ColScore); ok {
		t.Error("absent score should not be written")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	if _, err := LoadPosts(writeFile(t, "empty.jsonl", "\n\n")); err == nil {
		t.Error("expected error for file without items")
	}
	if _, err := LoadComments("/nonexistent/comments.jsonl"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCommentRow(t *testing.T) {
	body := "first!"
	c := Comment{ID: "c1", LinkID: "t3_p9", Body: &body, Author: "bob", ParentID: "t3_p9", Score: "4"}
	if c.Post() != "p9" {
		t.Errorf("Post() = %q, want p9", c.Post())
	}
	row := c.Row()
	if row.Key != "comment_c1_post_p9" {
		t.Errorf("key = %q", row.Key)
	}
	if v, _ := row.Get(store.ColCommentPostID); v != "p9" {
		t.Errorf("post id column = %q", v)
	}

	c.PostID = "p1"
	if c.Post() != "p1" {
		t.Error("explicit post_id should win over link_id")
	}
}

func TestImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	posts, err := LoadPosts(writeFile(t, "posts.jsonl",
		`{"id":"p1","title":"Go 1.22 is out","subreddit":"golang","author":"alice","created_utc":1700000000,"score":10}
{"id":"","title":"orphan"}`))
	if err != nil {
		t.Fatal(err)
	}
	comments, err := LoadComments(writeFile(t, "comments.jsonl",
		`{"id":"c1","post_id":"p1","body":"nice","author":"bob","parent_id":"t3_p1","score":2}
{"id":"c2","link_id":"t3_p1","body":"agreed","author":"carol","parent_id":"t1_c1","score":"1"}`))
	if err != nil {
		t.Fatal(err)
	}

	stats, err := Import(ctx, st, posts, comments)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats != (Stats{Posts: 1, Comments: 2, Skipped: 1}) {
		t.Errorf("stats = %+v", stats)
	}

	acc := corpus.NewAccessor(st)
	pc, err := acc.Load(ctx, store.Posts)
	if err != nil {
		t.Fatal(err)
	}
	if pc.Len() != 1 || pc.Records[0].Subreddit != "golang" || *pc.Records[0].Score != 10 {
		t.Errorf("posts = %+v", pc.Records)
	}
	cc, err := acc.Load(ctx, store.Comments)
	if err != nil {
		t.Fatal(err)
	}
	if cc.Len() != 2 {
		t.Fatalf("comments = %d", cc.Len())
	}
	if parent, ok := cc.Records[1].ParentComment(); !ok || parent != "c1" {
		t.Errorf("parent = %q %v", parent, ok)
	}
	if cc.Records[1].PostID != "p1" {
		t.Errorf("post id = %q", cc.Records[1].PostID)
	}
}

func TestImportStoreFailure(t *testing.T) {
	st := memstore.New()
	st.SetFailure(errors.New("disk full"))

	_, err := Import(context.Background(), st, []Post{{ID: "p1"}}, nil)
	if !errors.Is(err, internalerr.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
