package corpus

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store"
)

// Corpus is the in-memory snapshot of one dataset at analysis time.
type Corpus struct {
	Dataset string
	Records []Record
}

// New builds a corpus from records.
func New(dataset string, records ...Record) Corpus {
	return Corpus{Dataset: dataset, Records: records}
}

// Len returns the number of records.
func (c Corpus) Len() int { return len(c.Records) }

// Empty reports whether the corpus has no records.
func (c Corpus) Empty() bool { return len(c.Records) == 0 }

// Index maps record ids to records. Records without an id are left out;
// the first record wins if an id repeats.
func (c Corpus) Index() map[string]Record {
	idx := make(map[string]Record, len(c.Records))
	for _, r := range c.Records {
		if r.ID == "" {
			continue
		}
		if _, ok := idx[r.ID]; ok {
			continue
		}
		idx[r.ID] = r
	}
	return idx
}

// Accessor loads typed corpora from a raw record store.
type Accessor struct {
	store store.Store
}

// NewAccessor creates an accessor over st.
func NewAccessor(st store.Store) *Accessor {
	return &Accessor{store: st}
}

// Load reads every record of a dataset. Unknown and empty datasets produce
// an empty corpus; only an unreachable store is an error.
func (a *Accessor) Load(ctx context.Context, dataset string) (Corpus, error) {
	c := Corpus{Dataset: dataset}
	if a == nil || a.store == nil {
		return c, fmt.Errorf("load %s: %w", dataset, internalerr.ErrStoreUnavailable)
	}
	if !store.ValidDataset(dataset) {
		return c, nil
	}

	rows, err := a.store.Scan(ctx, dataset)
	if err != nil {
		return c, fmt.Errorf("load %s: %w", dataset, err)
	}

	c.Records = make([]Record, 0, len(rows))
	for _, row := range rows {
		if dataset == store.Posts {
			c.Records = append(c.Records, PostFromRow(row))
		} else {
			c.Records = append(c.Records, CommentFromRow(row))
		}
	}
	return c, nil
}

// PostFromRow maps a posts row into a Record.
func PostFromRow(row store.Row) Record {
	r := Record{
		ID:          stringCol(row, store.ColPostID),
		Author:      stringCol(row, store.ColPostAuthor),
		CreatedAt:   intCol(row, store.ColPostCreated),
		Score:       intCol(row, store.ColScore),
		Text:        textCol(row, store.ColPostTitle),
		Subreddit:   stringCol(row, store.ColPostSubreddit),
		Selftext:    stringCol(row, store.ColPostSelftext),
		NumComments: intCol(row, store.ColNumComments),
		Ups:         intCol(row, store.ColUps),
		Downs:       intCol(row, store.ColDowns),
	}
	if r.ID == "" {
		r.ID = store.IDFromKey(row.Key)
	}
	return r
}

// CommentFromRow maps a comments row into a Record.
func CommentFromRow(row store.Row) Record {
	r := Record{
		ID:        stringCol(row, store.ColCommentID),
		Author:    stringCol(row, store.ColCommentAuthor),
		CreatedAt: intCol(row, store.ColCommentCreated),
		Score:     intCol(row, store.ColScore),
		Text:      textCol(row, store.ColCommentText),
		Ups:       intCol(row, store.ColUps),
		Downs:     intCol(row, store.ColDowns),
		ParentID:  stringCol(row, store.ColCommentParentID),
		PostID:    stringCol(row, store.ColCommentPostID),
	}
	if r.ID == "" {
		r.ID = store.IDFromKey(row.Key)
	}
	return r
}

func stringCol(row store.Row, col string) string {
	v, _ := row.Get(col)
	return strings.TrimSpace(v)
}

func textCol(row store.Row, col string) *string {
	v, ok := row.Get(col)
	if !ok {
		return nil
	}
	return &v
}

// intCol parses integer columns. Float renderings such as "1700000000.0"
// are truncated; anything else unparseable counts as missing.
func intCol(row store.Row, col string) *int64 {
	v, ok := row.Get(col)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	n := int64(math.Trunc(f))
	return &n
}
