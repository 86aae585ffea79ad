package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rogueblind-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("RB_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("RB_JWT_PRIVATE_KEY", "private2.key")
	defer clear2()

	a := assert.New(t)
	assert.NoError(t, Load())

	cfg := Instance()
	a.Equal("test-secret", cfg.RecaptchaSecret)
	a.Equal("public.pem", cfg.JWT.PublicKey)
	a.Equal("private2.key", cfg.JWT.PrivateKey, "environment overrides the file")
	a.Equal(60, cfg.PlayerCreateDelay)
	a.Equal("debug", cfg.Log.Level)

	// ensure we aren't using a pointer
	cfg.JWT.PrivateKey = "bad"
	cfg = Instance()
	a.Equal("private2.key", cfg.JWT.PrivateKey)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "./sql", cfg.MigrationsPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.PlayerCreateDelay)
}

func TestLoad_missingFileUsesEnvironment(t *testing.T) {
	clear1 := util.SetEnv("RB_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	clear2 := util.SetEnv("RB_PG_DSN", "postgres://env@localhost/env")
	defer clear2()

	assert.NoError(t, Load())
	assert.Equal(t, "postgres://env@localhost/env", Instance().PGDSN)
}
