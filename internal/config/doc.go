// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional config
// file. It provides type-safe access to settings needed by the study tools
// while keeping configuration details out of the core packages.
package config
