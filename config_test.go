package objects_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	objects "github.com/nevaobjects/objects-go"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := objects.NewConfig("access", "secret", "bucket")

	assert.Equal(t, "access", cfg.AccessKey)
	assert.Equal(t, "secret", cfg.SecretKey)
	assert.Equal(t, "bucket", cfg.Bucket)
	assert.Equal(t, objects.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, objects.DefaultExpiry, cfg.DefaultExpiry)
	assert.Equal(t, time.Hour, cfg.DefaultExpiry)
	assert.NotEmpty(t, cfg.Region)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := objects.NewConfig("access", "secret", "bucket")

	tests := []struct {
		name    string
		mutate  func(cfg objects.Config) objects.Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(cfg objects.Config) objects.Config { return cfg },
		},
		{
			name: "missing access key",
			mutate: func(cfg objects.Config) objects.Config {
				cfg.AccessKey = ""
				return cfg
			},
			wantErr: true,
			errMsg:  "access key is required",
		},
		{
			name: "missing secret key",
			mutate: func(cfg objects.Config) objects.Config {
				cfg.SecretKey = ""
				return cfg
			},
			wantErr: true,
			errMsg:  "secret key is required",
		},
		{
			name: "missing bucket",
			mutate: func(cfg objects.Config) objects.Config {
				cfg.Bucket = ""
				return cfg
			},
			wantErr: true,
			errMsg:  "bucket is required",
		},
		{
			name: "negative default expiry",
			mutate: func(cfg objects.Config) objects.Config {
				cfg.DefaultExpiry = -time.Minute
				return cfg
			},
			wantErr: true,
			errMsg:  "default expiry must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.mutate(valid).Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, objects.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("OBJECTS_ACCESS_KEY", "env-access")
	t.Setenv("OBJECTS_SECRET_KEY", "env-secret")
	t.Setenv("OBJECTS_BUCKET", "env-bucket")

	cfg, err := objects.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-access", cfg.AccessKey)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, "env-bucket", cfg.Bucket)
	assert.Equal(t, objects.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, objects.DefaultExpiry, cfg.DefaultExpiry)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("OBJECTS_ACCESS_KEY", "env-access")
	t.Setenv("OBJECTS_SECRET_KEY", "env-secret")
	t.Setenv("OBJECTS_BUCKET", "env-bucket")
	t.Setenv("OBJECTS_ENDPOINT", "https://s3.example.test")
	t.Setenv("OBJECTS_DEFAULT_EXPIRY", "30m")

	cfg, err := objects.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://s3.example.test", cfg.Endpoint)
	assert.Equal(t, 30*time.Minute, cfg.DefaultExpiry)
}
