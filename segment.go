package sqlgram

// Segment is a fragment holding a small fixed token list: a keyword pair,
// a separator, any constant phrase. Segments are stateless, so the
// package-level values below are shared freely; a freshly built Segment
// with the same tokens behaves identically.
type Segment struct {
	tokens []Token
}

// NewSegment creates a constant-phrase fragment from the given tokens.
// An empty segment is valid and contributes nothing to the output.
func NewSegment(tokens ...Token) Segment {
	toks := make([]Token, len(tokens))
	copy(toks, tokens)
	return Segment{tokens: toks}
}

// Len returns the number of tokens in the segment.
func (s Segment) Len() int { return len(s.tokens) }

// Tokens implements Fragment.
func (s Segment) Tokens() Iterator {
	return &sliceIterator{toks: s.tokens}
}

// Canonical separators. The joiner placement pins the spacing: Comma
// renders with no space before the comma and one after ("a, b"), Dot
// renders with no surrounding space ("a.b").
var (
	Comma     = NewSegment(Joiner, Punctuation(","))
	Dot       = NewSegment(Joiner, Punctuation("."), Joiner)
	Semicolon = NewSegment(Joiner, Punctuation(";"))
)
