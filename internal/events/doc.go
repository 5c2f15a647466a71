// Package events lets a study session notify interested components (a
// renderer, a progress recorder) after each state change without the session
// knowing who listens.
//
// The primary components are:
// - SessionEvent: describes one completed session operation
// - EventHandler: interface for components that handle events
// - EventEmitter: interface for components that emit events
package events
