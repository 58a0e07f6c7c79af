package sqlgram

// The joiners pinned to the delimiters cancel the renderer's default
// inter-token spacing immediately inside them; without them the output
// would read "( x )" instead of "(x)".
var (
	openParen  = NewSegment(Punctuation("("), Joiner)
	closeParen = NewSegment(Joiner, Punctuation(")"))
)

// Parenthesized wraps a fragment in paired parentheses with no interior
// leading or trailing space. The type parameter keeps statically-known
// compositions monomorphized; use Parenthesize for interface values at
// open-ended composition sites.
type Parenthesized[T Fragment] struct {
	inner T
}

// NewParenthesized wraps inner in parentheses.
func NewParenthesized[T Fragment](inner T) Parenthesized[T] {
	return Parenthesized[T]{inner: inner}
}

// Parenthesize wraps an already-boxed fragment in parentheses.
func Parenthesize(inner Fragment) Parenthesized[Fragment] {
	if inner == nil {
		panic("cannot parenthesize a nil fragment")
	}
	return Parenthesized[Fragment]{inner: inner}
}

// Inner returns the wrapped fragment.
func (p Parenthesized[T]) Inner() T { return p.inner }

// Tokens implements Fragment: left delimiter, joiner, the inner stream,
// joiner, right delimiter.
func (p Parenthesized[T]) Tokens() Iterator {
	children, separator := p.parts()
	return newSeqIterator(children, separator)
}

func (p Parenthesized[T]) parts() ([]Fragment, Fragment) {
	return []Fragment{openParen, p.inner, closeParen}, nil
}
