package sqlgram

// Fragment is the capability every grammar node implements: producing, on
// demand, a deterministic, finite, restartable stream of tokens.
//
// Tokens must return a fresh traversal every call. Two traversals of the
// same fragment value yield token-for-token identical sequences, and a
// traversal never mutates the fragment. Fragments are plain immutable
// values; composing or rendering them is safe from any number of
// goroutines without locking.
//
// The interface is deliberately minimal so that an open-ended catalog of
// node types — column references, type names, whole statement forms —
// can plug into the composition engine here without this package knowing
// what any of them mean.
type Fragment interface {
	// Tokens returns a fresh traversal over the fragment's token stream.
	Tokens() Iterator
}

// Iterator yields the tokens of one traversal. Next returns false once
// the stream is exhausted and keeps returning false afterwards.
type Iterator interface {
	Next() (Token, bool)
}

// FragmentFunc adapts a function to the Fragment interface. The function
// must return a fresh Iterator on every call.
type FragmentFunc func() Iterator

// Tokens implements Fragment.
func (f FragmentFunc) Tokens() Iterator { return f() }

// IteratorFunc adapts a function to the Iterator interface.
type IteratorFunc func() (Token, bool)

// Next implements Iterator.
func (f IteratorFunc) Next() (Token, bool) { return f() }

// Collect drains a fresh traversal of f into a slice. Mostly useful in
// tests and diagnostics; rendering streams tokens without materializing
// them.
func Collect(f Fragment) []Token {
	var out []Token
	it := f.Tokens()
	for tok, ok := it.Next(); ok; tok, ok = it.Next() {
		out = append(out, tok)
	}
	return out
}

// sliceIterator traverses a fixed token slice.
type sliceIterator struct {
	toks []Token
	pos  int
}

func (it *sliceIterator) Next() (Token, bool) {
	if it.pos >= len(it.toks) {
		return Token{}, false
	}
	tok := it.toks[it.pos]
	it.pos++
	return tok, true
}
