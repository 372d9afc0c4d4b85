package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/arete-labs/reddit-harvester/internal/domain"
)

// WriteNDJSON appends one JSON object per post, comments nested.
func WriteNDJSON(path string, posts []domain.Post) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, p := range posts {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding post %s: %w", p.ID, err)
		}
	}
	return nil
}

// WritePostsCSV writes the post table, one row per post, comments excluded.
func WritePostsCSV(path string, posts []domain.Post) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"source", "post_id", "title", "author", "score", "upvote_ratio", "comment_count", "created_utc", "url"})
	for _, p := range posts {
		w.Write([]string{
			p.Source,
			p.ID,
			p.Title,
			p.Author,
			strconv.Itoa(p.Score),
			strconv.FormatFloat(float64(p.UpvoteRatio), 'f', 2, 32),
			strconv.Itoa(p.CommentCount),
			strconv.FormatFloat(p.CreatedUTC, 'f', 0, 64),
			p.URL,
		})
	}
	w.Flush()
	return w.Error()
}

// WriteJoinedCSV writes the flattened post×comment table, one row per
// comment with its parent post's fields repeated.
func WriteJoinedCSV(path string, posts []domain.Post) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"source", "post_id", "title", "post_author", "post_score", "comment_id", "comment_author", "comment_body", "comment_score", "created_utc"})
	for _, r := range domain.Flatten(posts) {
		w.Write([]string{
			r.Source,
			r.PostID,
			r.Title,
			r.PostAuthor,
			strconv.Itoa(r.PostScore),
			r.CommentID,
			r.CommentAuthor,
			r.CommentBody,
			strconv.Itoa(r.CommentScore),
			strconv.FormatFloat(r.CreatedUTC, 'f', 0, 64),
		})
	}
	w.Flush()
	return w.Error()
}

// WriteGraphJSON writes the author-interaction graph as a single JSON
// document with node and edge lists, ready for network-analysis tooling.
func WriteGraphJSON(path string, posts []domain.Post) error {
	nodes, edges := domain.InteractionGraph(posts)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	doc := struct {
		Nodes []string      `json:"nodes"`
		Edges []domain.Edge `json:"edges"`
	}{Nodes: nodes, Edges: edges}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCommentsCSV writes the comment table, one row per comment, keyed back
// to its post by post_id.
func WriteCommentsCSV(path string, posts []domain.Post) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"source", "post_id", "comment_id", "author", "score", "created_utc", "body"})
	for _, p := range posts {
		for _, c := range p.Comments {
			w.Write([]string{
				p.Source,
				c.PostID,
				c.ID,
				c.Author,
				strconv.Itoa(c.Score),
				strconv.FormatFloat(c.CreatedUTC, 'f', 0, 64),
				c.Body,
			})
		}
	}
	w.Flush()
	return w.Error()
}
