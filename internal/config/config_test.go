package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cldprgm/Network-vibe/internal/config"
	"github.com/cldprgm/Network-vibe/internal/ranking"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_USER", "vibe")
	t.Setenv("DATABASE_PASS", "secret")
	t.Setenv("DATABASE_NAME", "network_vibe")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 30, cfg.Server.ContextTimeout)
	assert.Equal(t, "127.0.0.1:6379", cfg.Cache.Addr())
	assert.Equal(t, 240*time.Second, cfg.Ranking.TrendingTTL)
	assert.Equal(t, 300*time.Second, cfg.Ranking.PersonalizedTTL)
	assert.Equal(t, 9*time.Minute, cfg.Ranking.UnauthRecsTTL)
	assert.Equal(t, 2000, cfg.Ranking.MaxListSize)
	assert.Equal(t, 25, cfg.Ranking.FeedPageSize)
	assert.Equal(t, 30, cfg.Ranking.FeedMaxPageSize)
	assert.Equal(t, 12, cfg.Ranking.CommunityPageSize)
	assert.Equal(t, 30*24*time.Hour, cfg.Score.PostWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.Score.ActivityWindow)
	assert.Equal(t, ranking.DefaultWeights(), cfg.Score.Weights)
	assert.Zero(t, cfg.Ranking.BuildJitter)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONTEXT_TIMEOUT", "5")
	t.Setenv("CACHE_HOST", "redis")
	t.Setenv("RANKING_TRENDING_TTL", "90s")
	t.Setenv("SCORE_INTERVAL", "1m")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Server.ContextTimeout)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr())
	assert.Equal(t, 90*time.Second, cfg.Ranking.TrendingTTL)
	assert.Equal(t, time.Minute, cfg.Score.Interval)
}

func TestLoadConfigFile(t *testing.T) {
	setRequiredEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ranking:
  community_page_size: 20
  build_jitter: 0.05
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Ranking.CommunityPageSize)
	assert.InDelta(t, 0.05, cfg.Ranking.BuildJitter, 1e-9)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidateRejectsBadValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.Load(viper.New(), "")
	assert.Error(t, err)
}

func TestValidateRejectsMissingDatabase(t *testing.T) {
	var cfg config.Config
	cfg.FillDefaults()
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := config.DatabaseConfig{
		Host: "db", Port: "3306", User: "vibe", Pass: "secret", Name: "network_vibe", Loc: "UTC",
	}
	dsn, err := d.DSN()
	require.NoError(t, err)

	assert.Contains(t, dsn, "vibe:secret@tcp(db:3306)/network_vibe?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")

	d.Loc = "Not/AZone"
	_, err = d.DSN()
	assert.Error(t, err)
}
