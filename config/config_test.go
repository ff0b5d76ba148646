package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opsledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "memory", cfg.Blob.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeFile(t, `
server:
  port: "9000"
database:
  path: /var/lib/opsledger/data.db
blob:
  driver: s3
  s3:
    bucket: docs
    path_style: true
cache:
  size: 10
  ttl: 5s
auth:
  token_ttl: 1h
`)
	t.Setenv("PORT", "9100")
	t.Setenv("BLOB_S3_ENDPOINT", "http://minio:9000")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "/var/lib/opsledger/data.db", cfg.Database.Path)
	assert.Equal(t, "s3", cfg.Blob.Driver)
	assert.Equal(t, "docs", cfg.Blob.S3.Bucket)
	assert.True(t, cfg.Blob.S3.PathStyle)
	assert.Equal(t, "http://minio:9000", cfg.Blob.S3.Endpoint)
	assert.Equal(t, 10, cfg.Cache.Size)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep their defaults")

	opts := cfg.Blob.Options()
	assert.Equal(t, "docs", opts.S3.Bucket)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = Load(writeFile(t, "server: [unterminated"))
	assert.Error(t, err)

	t.Setenv("CACHE_SIZE", "lots")
	_, err = Load(writeFile(t, ""))
	assert.ErrorContains(t, err, "CACHE_SIZE")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Auth.Domain = "tenant.eu.auth0.com"
	cfg.Blob.Driver = "s3"
	cfg.Cache.Size = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "BLOB_S3_BUCKET is required")
	assert.Contains(t, err.Error(), "cache size must be positive")

	cfg.Blob.Driver = "ftp"
	assert.ErrorContains(t, cfg.Validate(), `unknown blob driver "ftp"`)

	cfg = Default()
	cfg.Auth.Domain = "tenant.eu.auth0.com"
	cfg.Auth.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
