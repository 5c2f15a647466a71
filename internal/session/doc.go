// Package session drives one study attempt over an ordered list of items.
//
// A Controller is generic over the item type: a quiz session runs over
// domain.Question values and accepts answers, a deck session runs over
// domain.Flashcard values and flips cards. The controller owns its state
// exclusively; callers mutate it only through Load, SelectAnswer, Flip,
// Advance, Retreat and Reset, and read it through Snapshot and the accessors,
// which return copies.
//
// Phases move Loading -> Ready -> Active <-> Revealed -> Completed. Reset
// returns a loaded session to Ready. Operations invoked in the wrong phase or
// mode fail with ErrInvalidTransition and leave the state untouched.
//
// A Controller is not safe for concurrent use; it is driven by a single
// caller, one operation at a time.
package session
