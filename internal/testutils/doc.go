// Package testutils provides helpers shared by package tests: builders for
// domain items and an in-memory slog handler for asserting log output.
package testutils
