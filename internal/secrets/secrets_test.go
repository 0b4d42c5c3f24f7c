// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the credential variable for the duration of the test.
// t.Setenv registers the restore; Unsetenv makes it truly absent rather
// than empty, which matters because godotenv only fills absent variables.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	require.NoError(t, os.Unsetenv(EnvAPIKey))
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvAPIKey+"=llx-from-file\n"), 0o644))

	key, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "llx-from-file", key)
}

func TestLoadFromEnvironmentFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "llx-from-env")

	// No .env file in the directory; the ambient environment decides.
	key, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "llx-from-env", key)
}

func TestLoadFromEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "llx-ambient")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAPIKey+"=llx-file\n"), 0o644))

	key, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "llx-ambient", key, "already-set environment variables are not overridden")
}

func TestLoadFromNothingSet(t *testing.T) {
	clearEnv(t)

	key, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestLoadFromMalformedEnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("not a dotenv line\n"), 0o644))

	_, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}
