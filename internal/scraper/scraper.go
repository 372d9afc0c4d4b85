package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/arete-labs/reddit-harvester/internal/domain"
)

// ErrNoSources is returned by MultiScrape when the source list is empty.
var ErrNoSources = errors.New("no sources specified")

var (
	validSorts       = []string{"relevance", "hot", "top", "new", "comments"}
	validTimeFilters = []string{"all", "hour", "day", "week", "month", "year"}
)

// Scraper turns high-level search parameters into collector calls and
// assembles a flat result set. It holds no state between calls beyond the
// collector's session, so one instance is safe to reuse across runs.
type Scraper struct {
	collector domain.Collector

	// FailFast aborts MultiScrape on the first failed source. The default
	// keeps going: the failed source is logged and skipped, and results from
	// the sources that succeeded are returned.
	FailFast bool
}

func New(c domain.Collector) *Scraper {
	return &Scraper{collector: c}
}

// Scrape queries one source for posts matching opts.Query and, when
// requested, attaches up to opts.CommentLimit top-level comments per post.
// Every returned post carries src.Label as its source.
func (s *Scraper) Scrape(ctx context.Context, src domain.Source, opts domain.SearchOptions) ([]domain.Post, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}

	posts, err := s.collector.SearchPosts(ctx, src.Subreddit, opts)
	if err != nil {
		return nil, err
	}
	if len(posts) > opts.PostLimit {
		posts = posts[:opts.PostLimit]
	}

	for i := range posts {
		posts[i].Source = src.Label
		if !opts.GetComments {
			continue
		}
		comments, err := s.collector.TopComments(ctx, src.Subreddit, posts[i].ID, opts.CommentLimit)
		if err != nil {
			return nil, err
		}
		if len(comments) > opts.CommentLimit {
			comments = comments[:opts.CommentLimit]
		}
		posts[i].Comments = comments
	}

	return posts, nil
}

// MultiScrape runs Scrape once per source, sequentially, concatenating
// results in input order.
func (s *Scraper) MultiScrape(ctx context.Context, sources []domain.Source, opts domain.SearchOptions) ([]domain.Post, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	var all []domain.Post
	for _, src := range sources {
		posts, err := s.Scrape(ctx, src, opts)
		if err != nil {
			if s.FailFast {
				// Results collected so far stay with the caller.
				return all, fmt.Errorf("scraping %s: %w", src.Label, err)
			}
			slog.Warn("Source failed, continuing", "source", src.Label, "err", err)
			continue
		}
		all = append(all, posts...)
	}
	return all, nil
}

func validate(opts domain.SearchOptions) error {
	if !slices.Contains(validSorts, opts.Sort) {
		return fmt.Errorf("sort must be one of %v, got %q", validSorts, opts.Sort)
	}
	if !slices.Contains(validTimeFilters, opts.TimeFilter) {
		return fmt.Errorf("time filter must be one of %v, got %q", validTimeFilters, opts.TimeFilter)
	}
	if opts.PostLimit <= 0 {
		return fmt.Errorf("post limit must be positive, got %d", opts.PostLimit)
	}
	if opts.GetComments && opts.CommentLimit <= 0 {
		return fmt.Errorf("comment limit must be positive when comments are requested, got %d", opts.CommentLimit)
	}
	return nil
}
