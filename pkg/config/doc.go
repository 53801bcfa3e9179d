// Package config manages feedback application configuration.
//
// Configuration is loaded from an optional YAML file and overridden by
// environment variables. Each attribute tracks its source (default, file,
// or environment) for operator inspection.
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string (required)
//   - FEEDBACK_SESSION_SECRET: session cookie signing key (required)
//   - BIND_ADDRESS, PORT: HTTP listen address
//   - FEEDBACK_LOG_LEVEL: debug, info, warn, error
//   - FEEDBACK_PRETTY_LOGS: human-friendly console logging
//   - FEEDBACK_CONFIG_PATH: directory containing feedback.yml
package config
