package domain

import "fmt"

// APIError reports a failed call against the Reddit API: the service was
// unreachable, returned a malformed body, or the subreddit does not exist.
type APIError struct {
	Source string
	Err    error
}

func (e *APIError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("api error for r/%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("api error: %v", e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// RateLimitError reports that the caller's API quota is exhausted. It is
// surfaced as-is; no retries happen below this package.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }
