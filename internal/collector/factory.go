package collector

import (
	"fmt"

	"github.com/arete-labs/reddit-harvester/internal/config"
	"github.com/arete-labs/reddit-harvester/internal/domain"
)

// New selects the correct implementation based on the configured mode
func New(cfg *config.Config) (domain.Collector, error) {
	switch cfg.Collector.Mode {
	case "api":
		if cfg.Reddit.ClientID == "" || cfg.Reddit.ClientSecret == "" {
			return nil, fmt.Errorf("reddit client_id and client_secret are required for api mode")
		}
		return NewAPIClient(cfg.Reddit)
	case "public":
		return NewPublicClient(cfg.Reddit.UserAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown collector mode: %s (use 'api', 'public', or 'mock')", cfg.Collector.Mode)
	}
}
