package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "")
	t.Setenv("BCRYPT_ROUNDS", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "3500", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, "hms-api", cfg.JWTIssuer)
	assert.Equal(t, "hms-client", cfg.JWTAudience)
	assert.Equal(t, 10, cfg.BcryptRounds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "5m")
	t.Setenv("BCRYPT_ROUNDS", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 10, cfg.BcryptRounds, "cost never drops below 10")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.DBAutoMigrate)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		AccessTokenSecret:  "access",
		RefreshTokenSecret: "refresh",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	}
	require.NoError(t, cfg.Validate())

	cfg.RefreshTokenSecret = "access"
	assert.Error(t, cfg.Validate())

	cfg.RefreshTokenSecret = ""
	assert.Error(t, cfg.Validate())
}
