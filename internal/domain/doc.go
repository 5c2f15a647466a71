// Package domain contains the study items the rest of the application works
// with: multiple-choice questions and flashcards. Items are value types that
// are validated on construction, so every Question or Flashcard that exists
// satisfies its invariants.
package domain
