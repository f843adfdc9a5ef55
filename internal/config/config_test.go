package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "mysecretkey123", cfg.JWTSecret)
	require.Empty(t, cfg.DBConn)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("JWT_SECRET", "another-secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_CONN", "host=localhost dbname=calculator sslmode=disable")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "3001", cfg.Port)
	require.Equal(t, "another-secret", cfg.JWTSecret)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "host=localhost dbname=calculator sslmode=disable", cfg.DBConn)
}
