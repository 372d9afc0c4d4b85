package domain

// Row is one comment joined with the fields of its parent post.
type Row struct {
	Source        string  `json:"source"`
	PostID        string  `json:"post_id"`
	Title         string  `json:"title"`
	PostAuthor    string  `json:"post_author"`
	PostScore     int     `json:"post_score"`
	CommentID     string  `json:"comment_id"`
	CommentAuthor string  `json:"comment_author"`
	CommentBody   string  `json:"comment_body"`
	CommentScore  int     `json:"comment_score"`
	CreatedUTC    float64 `json:"created_utc"`
}

// Flatten joins posts and their comments into a single table, one row per
// comment. Posts without comments contribute no rows; the post table keeps
// the full picture.
func Flatten(posts []Post) []Row {
	var rows []Row
	for _, p := range posts {
		for _, c := range p.Comments {
			rows = append(rows, Row{
				Source:        p.Source,
				PostID:        p.ID,
				Title:         p.Title,
				PostAuthor:    p.Author,
				PostScore:     p.Score,
				CommentID:     c.ID,
				CommentAuthor: c.Author,
				CommentBody:   c.Body,
				CommentScore:  c.Score,
				CreatedUTC:    c.CreatedUTC,
			})
		}
	}
	return rows
}
