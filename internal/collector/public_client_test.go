package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arete-labs/reddit-harvester/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const searchBody = `{
	"data": {
		"children": [
			{"kind": "t3", "data": {"id": "abc", "title": "VAR ruins everything", "selftext": "again", "author": "alice", "score": 42, "upvote_ratio": 0.91, "num_comments": 7, "created_utc": 1700000000}},
			{"kind": "t3", "data": {"id": "def", "title": "Quiet week", "author": "bob", "score": 3, "num_comments": 0, "created_utc": 1700000100}}
		]
	}
}`

const commentsBody = `[
	{"data": {"children": [{"kind": "t3", "data": {"id": "abc"}}]}},
	{"data": {"children": [
		{"kind": "t1", "data": {"id": "c1", "body": "bad call", "author": "carol", "score": 5, "created_utc": 1700000200}},
		{"kind": "t1", "data": {"id": "c2", "body": "so bad", "author": "dave", "score": 1, "created_utc": 1700000300}},
		{"kind": "more", "data": {}}
	]}}
]`

func newTestPublicClient(t *testing.T, handler http.HandlerFunc) *PublicClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	pc, err := NewPublicClient("reddit-harvester-test/0.1")
	require.NoError(t, err)
	pc.baseURL = server.URL
	pc.limiter = rate.NewLimiter(rate.Inf, 1) // no throttling in tests
	return pc
}

func TestPublicClient_SearchPosts(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/PremierLeague/search.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "VAR", q.Get("q"))
		assert.Equal(t, "1", q.Get("restrict_sr"))
		assert.Equal(t, "top", q.Get("sort"))
		assert.Equal(t, "all", q.Get("t"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(searchBody))
	})

	opts := domain.DefaultSearchOptions("VAR")
	posts, err := pc.SearchPosts(context.Background(), "PremierLeague", opts)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "abc", posts[0].ID)
	assert.Equal(t, "VAR ruins everything", posts[0].Title)
	assert.InDelta(t, 0.91, posts[0].UpvoteRatio, 0.001)
	assert.Equal(t, 7, posts[0].CommentCount)
}

func TestPublicClient_TopComments(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/PremierLeague/comments/abc.json", r.URL.Path)
		w.Write([]byte(commentsBody))
	})

	comments, err := pc.TopComments(context.Background(), "PremierLeague", "abc", 5)

	require.NoError(t, err)
	require.Len(t, comments, 2) // "more" stub excluded
	assert.Equal(t, "c1", comments[0].ID)
	assert.Equal(t, "abc", comments[0].PostID)
	assert.Equal(t, "bad call", comments[0].Body)
}

func TestPublicClient_TopCommentsCapped(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(commentsBody))
	})

	comments, err := pc.TopComments(context.Background(), "PremierLeague", "abc", 1)

	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestPublicClient_NotFoundIsAPIError(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := pc.SearchPosts(context.Background(), "doesnotexist", domain.DefaultSearchOptions("VAR"))

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "doesnotexist", apiErr.Source)
}

func TestPublicClient_TooManyRequestsIsRateLimitError(t *testing.T) {
	pc := newTestPublicClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := pc.SearchPosts(context.Background(), "PremierLeague", domain.DefaultSearchOptions("VAR"))

	var rlErr *domain.RateLimitError
	assert.ErrorAs(t, err, &rlErr)
}

func TestPublicClient_RequiresUserAgent(t *testing.T) {
	_, err := NewPublicClient("")
	assert.Error(t, err)
}
