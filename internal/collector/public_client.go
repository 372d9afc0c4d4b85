package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/arete-labs/reddit-harvester/internal/domain"
	"golang.org/x/time/rate"
)

const publicBaseURL = "https://www.reddit.com"

// PublicClient hits the unauthenticated .json endpoints. Slower limits, no
// credentials needed; handy for small pulls and for local testing.
type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	baseURL    string
}

type publicPostData struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Author      string  `json:"author"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	UpvoteRatio float32 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

type publicPostListing struct {
	Data struct {
		Children []struct {
			Kind string         `json:"kind"`
			Data publicPostData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type publicCommentListing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				ID         string  `json:"id"`
				Body       string  `json:"body"`
				Author     string  `json:"author"`
				Score      int     `json:"score"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func NewPublicClient(userAgent string) (*PublicClient, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("a user agent is required for public access")
	}
	return &PublicClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Public JSON Limit: 1 req / 2 seconds (Stricter)
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		userAgent: userAgent,
		baseURL:   publicBaseURL,
	}, nil
}

func (pc *PublicClient) SearchPosts(ctx context.Context, sub string, opts domain.SearchOptions) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("q", opts.Query)
	params.Set("restrict_sr", "1")
	params.Set("sort", opts.Sort)
	params.Set("t", opts.TimeFilter)
	params.Set("limit", strconv.Itoa(opts.PostLimit))
	params.Set("raw_json", "1")

	endpoint := fmt.Sprintf("%s/r/%s/search.json?%s", pc.baseURL, sub, params.Encode())

	body, err := pc.get(ctx, sub, endpoint)
	if err != nil {
		return nil, err
	}

	var listing publicPostListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, &domain.APIError{Source: sub, Err: fmt.Errorf("decoding search listing: %w", err)}
	}

	var posts []domain.Post
	for _, child := range listing.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		d := child.Data
		posts = append(posts, domain.Post{
			ID:           d.ID,
			Title:        d.Title,
			SelfText:     d.SelfText,
			Author:       d.Author,
			URL:          d.URL,
			Score:        d.Score,
			UpvoteRatio:  d.UpvoteRatio,
			CommentCount: d.NumComments,
			CreatedUTC:   d.CreatedUTC,
		})
	}
	return posts, nil
}

func (pc *PublicClient) TopComments(ctx context.Context, sub, postID string, limit int) ([]domain.Comment, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("depth", "1")
	params.Set("raw_json", "1")

	endpoint := fmt.Sprintf("%s/r/%s/comments/%s.json?%s", pc.baseURL, sub, postID, params.Encode())

	body, err := pc.get(ctx, sub, endpoint)
	if err != nil {
		return nil, err
	}

	// The comments endpoint returns a two-element array: [post, comments].
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) < 2 {
		return nil, &domain.APIError{Source: sub, Err: fmt.Errorf("unexpected comments payload for post %s", postID)}
	}

	var listing publicCommentListing
	if err := json.Unmarshal(raw[1], &listing); err != nil {
		return nil, &domain.APIError{Source: sub, Err: fmt.Errorf("decoding comment listing: %w", err)}
	}

	var comments []domain.Comment
	for _, child := range listing.Data.Children {
		if child.Kind != "t1" {
			continue
		}
		if len(comments) >= limit {
			break
		}
		d := child.Data
		comments = append(comments, domain.Comment{
			PostID:     postID,
			ID:         d.ID,
			Body:       d.Body,
			Author:     d.Author,
			Score:      d.Score,
			CreatedUTC: d.CreatedUTC,
		})
	}
	return comments, nil
}

func (pc *PublicClient) get(ctx context.Context, sub, endpoint string) ([]byte, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return nil, &domain.APIError{Source: sub, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &domain.RateLimitError{Err: fmt.Errorf("reddit public access status: %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, &domain.APIError{Source: sub, Err: fmt.Errorf("reddit public access status: %d", resp.StatusCode)}
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.APIError{Source: sub, Err: err}
	}
	return buf, nil
}
