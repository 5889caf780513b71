package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATASET_SEED", "POLICY_COUNT", "CLAIM_COUNT", "STORE_PORT", "STORE_STARTUP_TIMEOUT", "SLOW_QUERY_THRESHOLD_MS"} {
		t.Setenv(key, "")
	}

	cfg := fromEnv()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, int64(41), cfg.DatasetSeed)
	assert.Equal(t, 100, cfg.PolicyCount)
	assert.Equal(t, 30, cfg.ClaimCount)
	assert.Equal(t, 0, cfg.StorePort)
	assert.Equal(t, 5*time.Second, cfg.StoreStartupTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThreshold)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", " 9090 ")
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("POLICY_COUNT", "12")
	t.Setenv("ENABLE_SQL_TRACE", "true")
	t.Setenv("STORE_STARTUP_TIMEOUT", "2")

	cfg := fromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(7), cfg.DatasetSeed)
	assert.Equal(t, 12, cfg.PolicyCount)
	assert.True(t, cfg.EnableSQLTrace)
	assert.Equal(t, 2*time.Second, cfg.StoreStartupTimeout)
}

func TestFromEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("CLAIM_COUNT", "many")
	t.Setenv("LOG_COMPRESS", "perhaps")

	cfg := fromEnv()
	assert.Equal(t, 30, cfg.ClaimCount)
	assert.True(t, cfg.LogCompress)
}
