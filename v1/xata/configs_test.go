package xata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("XATA_DATABASE_URL", "https://ws-test.example.xata.sh/db/docs:main")
	t.Setenv("XATA_API_KEY", "secret")
	t.Setenv("XATA_DIMENSION", "1536")
	t.Setenv("XATA_HTTP_TIMEOUT", "5s")

	cfg := NewConfig()
	assert.Equal(t, "https://ws-test.example.xata.sh/db/docs:main", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 1536, cfg.Dimension)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestNewConfig_IgnoresMalformedOverrides(t *testing.T) {
	t.Setenv("XATA_DATABASE_URL", "https://ws-test.example.xata.sh/db/docs:main")
	t.Setenv("XATA_API_KEY", "secret")
	t.Setenv("XATA_DIMENSION", "not-a-number")
	t.Setenv("XATA_HTTP_TIMEOUT", "soon")

	cfg := NewConfig()
	assert.Equal(t, DefaultDimension, cfg.Dimension)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestConfigValidate(t *testing.T) {
	cfg := FromDatabaseURL("https://ws-test.example.xata.sh/db/docs:main").WithAPIKey("k")
	cfg.Dimension = 0
	cfg.HTTPTimeout = 0

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultDimension, cfg.Dimension)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)

	assert.Error(t, DefaultConfig().Validate())
	assert.Error(t, FromDatabaseURL("https://ws.example.xata.sh/db/d").Validate())
}
