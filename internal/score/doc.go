// Package score grades multiple-choice sessions. It reads a session through
// the AnswerSheet interface and never changes it, so scores can be computed
// live while the session is still running.
package score
