package shared_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JianhaoLuo18/UniFrontend/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FLATLY_CONFIG", "")
	t.Setenv("FLATLY_BACKEND_URL", "")
	t.Setenv("APP_ENV", "")

	c := shared.Load()

	assert.Equal(t, "prod", c.AppEnv)
	assert.NotEmpty(t, c.BackendBase)
	assert.Equal(t, 20*time.Second, c.HTTPTimeout)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatly.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"backend_base: http://file-host:8080\napp_env: dev\ncache_ttl_seconds: 60\n",
	), 0o600))

	t.Setenv("FLATLY_CONFIG", path)
	t.Setenv("APP_ENV", "staging") // env wins over file
	t.Setenv("FLATLY_BACKEND_URL", "")

	c := shared.Load()

	assert.Equal(t, "http://file-host:8080", c.BackendBase)
	assert.Equal(t, "staging", c.AppEnv)
	assert.Equal(t, time.Minute, c.CacheTTL)
}
