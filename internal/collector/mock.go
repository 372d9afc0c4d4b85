package collector

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/arete-labs/reddit-harvester/internal/domain"
)

// MockClient implements domain.Collector but returns fake data
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) SearchPosts(ctx context.Context, sub string, opts domain.SearchOptions) ([]domain.Post, error) {
	var posts []domain.Post
	for i := 0; i < opts.PostLimit; i++ {
		posts = append(posts, domain.Post{
			ID:           fmt.Sprintf("mock_%s_%d", sub, i),
			Title:        fmt.Sprintf("[%s] Simulated discussion of %q #%d", sub, opts.Query, i),
			SelfText:     "Simulated post body.",
			Author:       fmt.Sprintf("simulated_poster_%d", i%5),
			URL:          "http://localhost/mock-url",
			Score:        rand.Intn(500),
			UpvoteRatio:  0.5 + rand.Float32()/2,
			CommentCount: rand.Intn(50),
			CreatedUTC:   float64(time.Now().Unix()),
		})
	}
	return posts, nil
}

func (mc *MockClient) TopComments(ctx context.Context, sub, postID string, limit int) ([]domain.Comment, error) {
	var comments []domain.Comment
	for i := 0; i < limit; i++ {
		comments = append(comments, domain.Comment{
			PostID:     postID,
			ID:         fmt.Sprintf("%s_c%d", postID, i),
			Body:       fmt.Sprintf("Simulated reply #%d", i),
			Author:     fmt.Sprintf("simulated_commenter_%d", i%7),
			Score:      rand.Intn(100),
			CreatedUTC: float64(time.Now().Unix()),
		})
	}
	return comments, nil
}
