package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Reddit    RedditConfig    `mapstructure:"reddit"`
	Collector CollectorConfig `mapstructure:"collector"`
	Scrape    ScrapeConfig    `mapstructure:"scrape"`
	Output    OutputConfig    `mapstructure:"output"`
	LogFormat string          `mapstructure:"log_format"`
}

// RedditConfig carries the API credentials. Nothing below main reads the
// environment directly; credentials always travel through this struct.
type RedditConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	UserAgent    string `mapstructure:"user_agent"`
}

// CollectorConfig selects the fetching implementation
type CollectorConfig struct {
	Mode string `mapstructure:"mode"` // api, public, or mock
}

// ScrapeConfig holds the search parameters for a run
type ScrapeConfig struct {
	SourcesFile  string `mapstructure:"sources_file"`
	Query        string `mapstructure:"query"`
	Sort         string `mapstructure:"sort"`
	TimeFilter   string `mapstructure:"time_filter"`
	PostLimit    int    `mapstructure:"post_limit"`
	GetComments  bool   `mapstructure:"get_comments"`
	CommentLimit int    `mapstructure:"comment_limit"`
	// FailFast aborts a multi-source run on the first failed source instead
	// of logging and moving on.
	FailFast bool `mapstructure:"fail_fast"`
}

// OutputConfig holds export settings
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from config.yaml and environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set defaults
	v.SetDefault("collector.mode", "api")
	v.SetDefault("reddit.user_agent", "reddit-harvester/0.1")
	v.SetDefault("scrape.sources_file", "input/sources.csv")
	v.SetDefault("scrape.sort", "top")
	v.SetDefault("scrape.time_filter", "all")
	v.SetDefault("scrape.post_limit", 50)
	v.SetDefault("scrape.get_comments", true)
	v.SetDefault("scrape.comment_limit", 10)
	v.SetDefault("scrape.fail_fast", false)
	v.SetDefault("output.dir", "data")
	v.SetDefault("log_format", "json")

	// Environment variable bindings
	v.AutomaticEnv()
	v.BindEnv("reddit.client_id", "REDDIT_CLIENT_ID")
	v.BindEnv("reddit.client_secret", "REDDIT_CLIENT_SECRET")
	v.BindEnv("reddit.username", "REDDIT_USERNAME")
	v.BindEnv("reddit.password", "REDDIT_PASSWORD")
	v.BindEnv("reddit.user_agent", "REDDIT_USER_AGENT")
	v.BindEnv("collector.mode", "COLLECTOR_MODE")
	v.BindEnv("scrape.query", "SCRAPE_QUERY")
	v.BindEnv("log_format", "LOG_FORMAT")

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
