package domain

// ItemKind tags the kind of study item a session runs over.
type ItemKind string

// Supported item kinds.
const (
	KindMCQ       ItemKind = "mcq"
	KindFlashcard ItemKind = "flashcard"
)

// String returns the kind as plain text.
func (k ItemKind) String() string {
	return string(k)
}

// Item is the constraint for anything a study session can run over.
// The union keeps a session's kind fixed at compile time.
type Item interface {
	Question | Flashcard

	// Kind reports which session mode the item belongs to.
	Kind() ItemKind

	// ItemID returns the item's positive identifier.
	ItemID() int
}
