package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithPath_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=tickets_test\n"), 0o600))

	cfg, err := LoadWithPath(path)
	require.NoError(t, err)

	assert.Equal(t, "seat-reservation", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "tickets_test", cfg.Database.Name)
	assert.Equal(t, 15*time.Minute, cfg.Reservation.HoldTTL)
	assert.Equal(t, 5*time.Second, cfg.Redis.SeatStatusTTL)
	assert.False(t, cfg.Reservation.ExpirySweepEnabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadWithPath_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9000\nORDER_HOLD_TTL=10m\n"), 0o600))

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("EXPIRY_SWEEP_ENABLED", "true")
	t.Setenv("EXPIRY_SWEEP_INTERVAL", "30s")

	cfg, err := LoadWithPath(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.Reservation.HoldTTL)
	assert.True(t, cfg.Reservation.ExpirySweepEnabled)
	assert.Equal(t, 30*time.Second, cfg.Reservation.ExpirySweepEvery)
}

func TestLoadWithPath_MissingFile(t *testing.T) {
	_, err := LoadWithPath(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:         AppConfig{Name: "seat-reservation"},
			Server:      ServerConfig{Port: 8080},
			Database:    DatabaseConfig{Host: "localhost", Name: "seats"},
			Reservation: ReservationConfig{HoldTTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing app name", func(c *Config) { c.App.Name = "" }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, true},
		{"zero hold ttl", func(c *Config) { c.Reservation.HoldTTL = 0 }, true},
		{"sweeper without interval", func(c *Config) {
			c.Reservation.ExpirySweepEnabled = true
			c.Reservation.ExpirySweepBatch = 10
		}, true},
		{"sweeper configured", func(c *Config) {
			c.Reservation.ExpirySweepEnabled = true
			c.Reservation.ExpirySweepEvery = time.Minute
			c.Reservation.ExpirySweepBatch = 10
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", Name: "seats", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/seats?sslmode=disable", d.DSN())
}
