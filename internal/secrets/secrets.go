// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the parsing service credential. A .env file
// sitting next to the executable is loaded into the environment when
// present; values already set in the process environment always win.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvAPIKey names the environment variable holding the LlamaParse credential.
const EnvAPIKey = "LLAMA_CLOUD_API_KEY"

// Load resolves the credential for the running binary: the .env file in
// the executable's directory (if any) followed by the ambient environment.
// A missing .env file is not an error; an empty return means no credential
// was found anywhere.
func Load() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		// No executable path (unusual); the environment alone decides.
		return os.Getenv(EnvAPIKey), nil
	}
	return LoadFrom(filepath.Dir(exe))
}

// LoadFrom resolves the credential using the .env file in dir, falling
// back to the process environment. godotenv never overrides variables
// that are already set, so the environment takes precedence.
func LoadFrom(dir string) (string, error) {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("loading %s: %w", envPath, err)
		}
	}
	return os.Getenv(EnvAPIKey), nil
}
