package extract

import "regexp"

// blockStart matches the line that opens a block: an optional indent, an
// integer, a period and the opening emphasis marker. Only the match start is
// used, so the marker stays with the block it opens.
var blockStart = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]*\*\*`)

// promptPattern captures the text of the first emphasis pair after the
// leading number. The pair must close on the same line.
var promptPattern = regexp.MustCompile(`^[ \t]*\d+\.[ \t]*\*\*([^\n]*?)\*\*`)

// block is one numbered span of raw text.
type block struct {
	// index is the 1-based position among all blocks offered to the parser.
	index int
	text  string
}

// splitBlocks cuts raw into blocks at every block boundary. Text before the
// first boundary is preamble and is dropped.
func splitBlocks(raw string) []block {
	starts := blockStart.FindAllStringIndex(raw, -1)
	blocks := make([]block, 0, len(starts))
	for i, loc := range starts {
		end := len(raw)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, block{index: i + 1, text: raw[loc[0]:end]})
	}
	return blocks
}

// prompt returns the emphasised text after the block number, or false when
// the block does not open with a closed emphasis pair.
func (b block) prompt() (string, bool) {
	m := promptPattern.FindStringSubmatchIndex(b.text)
	if m == nil {
		return "", false
	}
	return b.text[m[2]:m[3]], true
}

// afterPrompt returns the block text following the prompt's closing marker.
func (b block) afterPrompt() string {
	m := promptPattern.FindStringIndex(b.text)
	if m == nil {
		return b.text
	}
	return b.text[m[1]:]
}
