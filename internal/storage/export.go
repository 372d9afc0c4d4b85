package storage

import (
	"os"
	"path/filepath"

	"github.com/arete-labs/reddit-harvester/internal/domain"
)

// ExportRun writes every output of one run under dir, prefixed with the run
// ID: an NDJSON dump, the posts and comments tables, the joined
// post×comment table, and the interaction graph.
func ExportRun(dir, runID string, posts []domain.Post) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	prefix := filepath.Join(dir, runID)
	if err := WriteNDJSON(prefix+".ndjson", posts); err != nil {
		return err
	}
	if err := WritePostsCSV(prefix+"-posts.csv", posts); err != nil {
		return err
	}
	if err := WriteCommentsCSV(prefix+"-comments.csv", posts); err != nil {
		return err
	}
	if err := WriteJoinedCSV(prefix+"-joined.csv", posts); err != nil {
		return err
	}
	return WriteGraphJSON(prefix+"-graph.json", posts)
}
