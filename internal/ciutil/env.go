package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/periodic-api/internal/redact"
)

// Environment variable names read by test and tooling code.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// EnvTestDatabaseURL is the preferred name for the integration test database.
	EnvTestDatabaseURL = "PERIODIC_TEST_DB_URL"
	EnvDatabaseURL     = "DATABASE_URL"
	// EnvAppDatabaseURL is the server's own setting, database.url.
	EnvAppDatabaseURL = "PERIODIC_DATABASE_URL"
)

// DatabaseURLVars lists the database URL variables in order of preference.
var DatabaseURLVars = []string{EnvTestDatabaseURL, EnvDatabaseURL, EnvAppDatabaseURL}

// IsCI reports whether the process runs under a known CI provider.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty variable in
// envVars, or defaultValue when none is set. Using any variable but the
// first is logged as a warning with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, name := range envVars {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("Using fallback environment variable",
				slog.String("used_var", name),
				slog.String("preferred_var", envVars[0]),
				slog.String("value", redact.String(val)))
		}
		return val
	}
	return defaultValue
}

// DatabaseURL returns the first configured database URL, or "".
func DatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks(DatabaseURLVars, "", logger)
}
