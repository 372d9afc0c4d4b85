package collector

import (
	"context"
	"errors"
	"time"

	"github.com/arete-labs/reddit-harvester/internal/config"
	"github.com/arete-labs/reddit-harvester/internal/domain"
	"github.com/loganintech/go-reddit/v2/reddit"
	"golang.org/x/time/rate"
)

// APIClient talks to the authenticated Reddit API through go-reddit.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(cfg config.RedditConfig) (*APIClient, error) {
	creds := reddit.Credentials{
		ID:       cfg.ClientID,
		Secret:   cfg.ClientSecret,
		Username: cfg.Username,
		Password: cfg.Password,
	}

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(cfg.UserAgent))
	if err != nil {
		return nil, err
	}

	// API Rate Limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIClient{client: client, limiter: limiter}, nil
}

func (ac *APIClient) SearchPosts(ctx context.Context, sub string, opts domain.SearchOptions) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	posts, _, err := ac.client.Subreddit.SearchPosts(ctx, opts.Query, sub, &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: opts.PostLimit},
			Time:        opts.TimeFilter,
		},
		Sort: opts.Sort,
	})
	if err != nil {
		return nil, mapError(sub, err)
	}

	result := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		var created float64
		if p.Created != nil {
			created = float64(p.Created.Time.Unix())
		}
		result = append(result, domain.Post{
			ID:           p.ID,
			Title:        p.Title,
			SelfText:     p.Body,
			Author:       p.Author,
			URL:          p.URL,
			Score:        p.Score,
			UpvoteRatio:  p.UpvoteRatio,
			CommentCount: p.NumberOfComments,
			CreatedUTC:   created,
		})
	}
	return result, nil
}

func (ac *APIClient) TopComments(ctx context.Context, sub, postID string, limit int) ([]domain.Comment, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pac, _, err := ac.client.Post.Get(ctx, postID)
	if err != nil {
		return nil, mapError(sub, err)
	}

	var result []domain.Comment
	for _, c := range pac.Comments {
		if len(result) >= limit {
			break
		}
		var created float64
		if c.Created != nil {
			created = float64(c.Created.Time.Unix())
		}
		result = append(result, domain.Comment{
			PostID:     postID,
			ID:         c.ID,
			Body:       c.Body,
			Author:     c.Author,
			Score:      c.Score,
			CreatedUTC: created,
		})
	}
	return result, nil
}

// mapError sorts go-reddit failures into the two error kinds callers handle.
func mapError(sub string, err error) error {
	var rle *reddit.RateLimitError
	if errors.As(err, &rle) {
		return &domain.RateLimitError{Err: err}
	}
	return &domain.APIError{Source: sub, Err: err}
}
