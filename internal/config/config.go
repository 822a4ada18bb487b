package config

import (
	"fmt"
	"net"
	"time"

	"github.com/go-playground/validator/v10"
	driver "github.com/go-sql-driver/mysql"

	"github.com/cldprgm/Network-vibe/internal/ranking"
)

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ContextTimeout  int           `mapstructure:"context_timeout" validate:"gte=1"` // seconds
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host          string        `mapstructure:"host" validate:"required"`
	Port          string        `mapstructure:"port" validate:"required"`
	User          string        `mapstructure:"user" validate:"required"`
	Pass          string        `mapstructure:"pass"`
	Name          string        `mapstructure:"name" validate:"required"`
	Loc           string        `mapstructure:"loc"`
	MaxRetry      int           `mapstructure:"max_retry" validate:"gte=0"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	Migrate       bool          `mapstructure:"migrate"`
}

// DSN renders the go-sql-driver connection string. Rows matched, not rows
// changed, are reported so that no-op updates are not mistaken for misses.
func (d DatabaseConfig) DSN() (string, error) {
	loc, err := time.LoadLocation(d.Loc)
	if err != nil {
		return "", fmt.Errorf("database loc %q: %w", d.Loc, err)
	}
	c := driver.NewConfig()
	c.User = d.User
	c.Passwd = d.Pass
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(d.Host, d.Port)
	c.DBName = d.Name
	c.ParseTime = true
	c.Loc = loc
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

// CacheConfig holds redis connection settings.
type CacheConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required"`
	Pass string `mapstructure:"pass"`
	DB   int    `mapstructure:"db" validate:"gte=0"`
}

func (c CacheConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// AuthConfig controls viewer identification.
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	SessionHeader string `mapstructure:"session_header"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// RankingConfig tunes candidate building, list caching and pagination.
type RankingConfig struct {
	TrendingWindow     time.Duration `mapstructure:"trending_window" validate:"gt=0"`
	PersonalizedWindow time.Duration `mapstructure:"personalized_window" validate:"gt=0"`
	CandidatePool      int           `mapstructure:"candidate_pool" validate:"gte=1"`
	MaxListSize        int           `mapstructure:"max_list_size" validate:"gte=1"`
	HighRelevance      float64       `mapstructure:"high_relevance"`
	LowRelevance       float64       `mapstructure:"low_relevance"`
	BuildJitter        float64       `mapstructure:"build_jitter" validate:"gte=0"`
	Seed               int64         `mapstructure:"seed"`

	FeedPageSize      int `mapstructure:"feed_page_size" validate:"gte=1,ltefield=FeedMaxPageSize"`
	FeedMaxPageSize   int `mapstructure:"feed_max_page_size" validate:"gte=1"`
	CommunityPageSize int `mapstructure:"community_page_size" validate:"gte=1"`
	ProfilePageSize   int `mapstructure:"profile_page_size" validate:"gte=1"`

	TrendingTTL     time.Duration `mapstructure:"trending_ttl" validate:"gt=0"`
	PersonalizedTTL time.Duration `mapstructure:"personalized_ttl" validate:"gt=0"`
	SessionTTL      time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
	AuthRecsTTL     time.Duration `mapstructure:"auth_recs_ttl" validate:"gt=0"`
	UnauthRecsTTL   time.Duration `mapstructure:"unauth_recs_ttl" validate:"gt=0"`
	ProfileTTL      time.Duration `mapstructure:"profile_ttl" validate:"gt=0"`
}

// ScoreConfig controls the periodic score jobs.
type ScoreConfig struct {
	Interval       time.Duration   `mapstructure:"interval" validate:"gt=0"`
	PostWindow     time.Duration   `mapstructure:"post_window" validate:"gt=0"`
	ActivityWindow time.Duration   `mapstructure:"activity_window" validate:"gt=0"`
	Weights        ranking.Weights `mapstructure:"weights"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Ranking  RankingConfig  `mapstructure:"ranking"`
	Score    ScoreConfig    `mapstructure:"score"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":9090"
	}
	if c.Server.ContextTimeout == 0 {
		c.Server.ContextTimeout = 30
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}

	if c.Database.Port == "" {
		c.Database.Port = "3306"
	}
	if c.Database.Loc == "" {
		c.Database.Loc = "UTC"
	}
	if c.Database.MaxRetry == 0 {
		c.Database.MaxRetry = 10
	}
	if c.Database.RetryInterval == 0 {
		c.Database.RetryInterval = 2 * time.Second
	}

	if c.Cache.Host == "" {
		c.Cache.Host = "127.0.0.1"
	}
	if c.Cache.Port == "" {
		c.Cache.Port = "6379"
	}

	if c.Auth.SessionHeader == "" {
		c.Auth.SessionHeader = "X-Session-ID"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	r := &c.Ranking
	if r.TrendingWindow == 0 {
		r.TrendingWindow = 30 * 24 * time.Hour
	}
	if r.PersonalizedWindow == 0 {
		r.PersonalizedWindow = 90 * 24 * time.Hour
	}
	if r.CandidatePool == 0 {
		r.CandidatePool = 5000
	}
	if r.MaxListSize == 0 {
		r.MaxListSize = 2000
	}
	if r.HighRelevance == 0 {
		r.HighRelevance = 0.6
	}
	if r.LowRelevance == 0 {
		r.LowRelevance = 0.1
	}
	if r.FeedPageSize == 0 {
		r.FeedPageSize = 25
	}
	if r.FeedMaxPageSize == 0 {
		r.FeedMaxPageSize = 30
	}
	if r.CommunityPageSize == 0 {
		r.CommunityPageSize = 12
	}
	if r.ProfilePageSize == 0 {
		r.ProfilePageSize = 25
	}
	if r.TrendingTTL == 0 {
		r.TrendingTTL = 240 * time.Second
	}
	if r.PersonalizedTTL == 0 {
		r.PersonalizedTTL = 300 * time.Second
	}
	if r.SessionTTL == 0 {
		r.SessionTTL = 60 * time.Second
	}
	if r.AuthRecsTTL == 0 {
		r.AuthRecsTTL = 5 * time.Minute
	}
	if r.UnauthRecsTTL == 0 {
		r.UnauthRecsTTL = 9 * time.Minute
	}
	if r.ProfileTTL == 0 {
		r.ProfileTTL = 5 * time.Minute
	}

	s := &c.Score
	if s.Interval == 0 {
		s.Interval = 10 * time.Minute
	}
	if s.PostWindow == 0 {
		s.PostWindow = 30 * 24 * time.Hour
	}
	if s.ActivityWindow == 0 {
		s.ActivityWindow = 7 * 24 * time.Hour
	}
	if s.Weights == (ranking.Weights{}) {
		s.Weights = ranking.DefaultWeights()
	}
}

// Validate checks the filled configuration.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
