package config

import (
	"os"
	"strings"
)

// fallbackVersion is used when neither the environment nor a VERSION
// file provides one.
const fallbackVersion = "0.1.0"

// GetVersion returns the version from the APP_VERSION environment variable
// (set by CI/CD) or from a VERSION file in the working directory.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}

	return fallbackVersion
}
