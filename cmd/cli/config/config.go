package config

import (
	"os"
	"path/filepath"
)

const defaultAPIURL = "http://localhost:8080"

const tokenFileName = ".taskdeck_token"

// APIURL returns the base URL for the Taskdeck API.
// It can be overridden with the TASKDECK_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("TASKDECK_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// APIKey returns the static API key sent with every protected request,
// from the TASKDECK_API_KEY environment variable.
func APIKey() string {
	return os.Getenv("TASKDECK_API_KEY")
}

// SaveToken writes the bearer token to the token file in the home directory,
// readable only by the current user.
func SaveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0o600)
}

// ReadToken loads the stored bearer token. Returns an error when no token is
// saved, which callers report as "please login first".
func ReadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DeleteToken removes the stored token. Missing file is not an error.
func DeleteToken() error {
	err := os.Remove(tokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func tokenPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, tokenFileName)
}
