package domain

import "context"

// Source pairs a caller-chosen label with the subreddit it points at.
// Records produced from a source carry its label, not the raw subreddit
// name, so downstream analysis can group by whatever naming the study uses.
type Source struct {
	Label     string
	Subreddit string
}

// Post is the clean data structure for storage
type Post struct {
	Source       string    `json:"source"`
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	SelfText     string    `json:"selftext,omitempty"`
	Author       string    `json:"author"`
	URL          string    `json:"url"`
	Score        int       `json:"score"`
	UpvoteRatio  float32   `json:"upvote_ratio"`
	CommentCount int       `json:"comment_count"`
	CreatedUTC   float64   `json:"created_utc"`
	Comments     []Comment `json:"comments,omitempty"`
}

// Comment is a top-level reply attached to a post.
type Comment struct {
	PostID     string  `json:"post_id"`
	ID         string  `json:"comment_id"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
}

// SearchOptions carries the parameters of one search query. The zero value
// is not usable; callers should start from DefaultSearchOptions.
type SearchOptions struct {
	Query        string
	Sort         string
	TimeFilter   string
	PostLimit    int
	GetComments  bool
	CommentLimit int
}

// DefaultSearchOptions returns the conventional defaults for a query.
func DefaultSearchOptions(query string) SearchOptions {
	return SearchOptions{
		Query:        query,
		Sort:         "top",
		TimeFilter:   "all",
		PostLimit:    50,
		GetComments:  true,
		CommentLimit: 10,
	}
}

// Collector defines the interface for data fetching
type Collector interface {
	// SearchPosts queries one subreddit for posts matching opts.Query,
	// honoring opts.Sort, opts.TimeFilter and opts.PostLimit.
	SearchPosts(ctx context.Context, subreddit string, opts SearchOptions) ([]Post, error)
	// TopComments fetches up to limit top-level comments of a post.
	TopComments(ctx context.Context, subreddit, postID string, limit int) ([]Comment, error)
}
