// Package extract turns generator-produced quiz text into validated study
// items. Input is split into numbered blocks ("1. **...**"); each block is
// parsed on its own and malformed blocks are skipped, so one bad block never
// costs the rest of the set. MCQExtractor yields domain.Question values and
// FlashcardExtractor yields domain.Flashcard values.
package extract
