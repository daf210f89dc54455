// Package config defines the application configuration structure and
// loading logic. Configuration comes from an optional config.yaml file
// and KANBAN_-prefixed environment variables, with environment variables
// taking precedence. Loaded values are validated before use.
package config
