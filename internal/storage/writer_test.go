package storage

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arete-labs/reddit-harvester/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePosts() []domain.Post {
	return []domain.Post{
		{
			Source: "epl",
			ID:     "p1",
			Title:  "VAR strikes again",
			Author: "alice",
			Score:  120,
			Comments: []domain.Comment{
				{PostID: "p1", ID: "c1", Body: "terrible call", Author: "bob", Score: 4},
				{PostID: "p1", ID: "c2", Body: "agreed", Author: "carol", Score: 2},
			},
		},
		{Source: "epl", ID: "p2", Title: "Quiet matchday", Author: "dave", Score: 3},
	}
}

func TestWriteNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")

	require.NoError(t, WriteNDJSON(path, samplePosts()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var decoded []domain.Post
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var p domain.Post
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &p))
		decoded = append(decoded, p)
	}

	require.Len(t, decoded, 2)
	assert.Equal(t, "p1", decoded[0].ID)
	assert.Len(t, decoded[0].Comments, 2)
	assert.Empty(t, decoded[1].Comments)
}

func TestWriteNDJSON_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")

	require.NoError(t, WriteNDJSON(path, samplePosts()))
	require.NoError(t, WriteNDJSON(path, samplePosts()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 4, lines)
}

func TestWritePostsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.csv")

	require.NoError(t, WritePostsCSV(path, samplePosts()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3) // header + 2 posts
	assert.Equal(t, "source", rows[0][0])
	assert.Equal(t, "epl", rows[1][0])
	assert.Equal(t, "VAR strikes again", rows[1][2])
}

func TestWriteJoinedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joined.csv")

	require.NoError(t, WriteJoinedCSV(path, samplePosts()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3) // header + 2 comments, commentless post excluded
	assert.Equal(t, "VAR strikes again", rows[1][2])
	assert.Equal(t, "alice", rows[1][3])
	assert.Equal(t, "terrible call", rows[1][7])
}

func TestExportRun(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, ExportRun(dir, "run-1", samplePosts()))

	for _, name := range []string{
		"run-1.ndjson",
		"run-1-posts.csv",
		"run-1-comments.csv",
		"run-1-joined.csv",
		"run-1-graph.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestExportRun_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, ExportRun(dir, "run-2", samplePosts()))

	_, err := os.Stat(filepath.Join(dir, "run-2.ndjson"))
	assert.NoError(t, err)
}

func TestWriteGraphJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")

	require.NoError(t, WriteGraphJSON(path, samplePosts()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Nodes []string `json:"nodes"`
		Edges []domain.Edge
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, doc.Nodes)
	require.Len(t, doc.Edges, 2)
	assert.Equal(t, "bob", doc.Edges[0].From)
	assert.Equal(t, "alice", doc.Edges[0].To)
}

func TestWriteCommentsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")

	require.NoError(t, WriteCommentsCSV(path, samplePosts()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3) // header + 2 comments, postless rows excluded
	assert.Equal(t, "p1", rows[1][1])
	assert.Equal(t, "terrible call", rows[1][6])
}
