package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envAliases keeps the flat variable names deployments already use.
var envAliases = map[string]string{
	"database.host":          "DATABASE_HOST",
	"database.port":          "DATABASE_PORT",
	"database.user":          "DATABASE_USER",
	"database.pass":          "DATABASE_PASS",
	"database.name":          "DATABASE_NAME",
	"cache.host":             "CACHE_HOST",
	"cache.port":             "CACHE_PORT",
	"cache.pass":             "CACHE_PASS",
	"cache.db":               "CACHE_DB",
	"server.address":         "SERVER_ADDRESS",
	"server.context_timeout": "CONTEXT_TIMEOUT",
	"auth.jwt_secret":        "JWT_SECRET",
}

// Load reads .env (optional), then the config file (optional), then the
// environment, and returns the filled and validated configuration.
// An empty cfgFile searches ./config.yaml and ./configs/config.yaml.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return Config{}, err
		}
	}
	bindStructKeys(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// bindStructKeys makes every nested key visible to Unmarshal so that
// AutomaticEnv overrides such as RANKING_TRENDING_TTL apply without a config file.
func bindStructKeys(v *viper.Viper) {
	for _, key := range []string{
		"server.shutdown_timeout",
		"database.loc", "database.max_retry", "database.retry_interval", "database.migrate",
		"auth.session_header",
		"log.level", "log.format",
		"ranking.trending_window", "ranking.personalized_window", "ranking.candidate_pool",
		"ranking.max_list_size", "ranking.high_relevance", "ranking.low_relevance",
		"ranking.build_jitter", "ranking.seed",
		"ranking.feed_page_size", "ranking.feed_max_page_size",
		"ranking.community_page_size", "ranking.profile_page_size",
		"ranking.trending_ttl", "ranking.personalized_ttl", "ranking.session_ttl",
		"ranking.auth_recs_ttl", "ranking.unauth_recs_ttl", "ranking.profile_ttl",
		"score.interval", "score.post_window", "score.activity_window",
		"score.weights.rating", "score.weights.comments", "score.weights.freshness",
		"score.weights.random", "score.weights.jitter_max",
	} {
		_ = v.BindEnv(key)
	}
}
