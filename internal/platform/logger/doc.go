// Package logger provides structured logging for the study tools.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON or text logging with configurable log levels.
package logger
