package sqlgram

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a token. The kind alone decides how the renderer
// spaces and escapes the token, so the set is closed and exhaustively
// switched over in render.go.
type TokenKind int

const (
	// KindJoiner is a zero-width token that suppresses the space the
	// renderer would otherwise insert between its neighbors. It is the
	// only kind with empty text.
	KindJoiner TokenKind = iota
	KindKeyword
	KindIdentifier
	KindOperator
	KindNumericConstant
	KindStringConstant
	KindBitStringConstant
	KindPositionalParameter
	KindPunctuation
)

// String returns the kind name for diagnostics.
func (k TokenKind) String() string {
	switch k {
	case KindJoiner:
		return "joiner"
	case KindKeyword:
		return "keyword"
	case KindIdentifier:
		return "identifier"
	case KindOperator:
		return "operator"
	case KindNumericConstant:
		return "numeric constant"
	case KindStringConstant:
		return "string constant"
	case KindBitStringConstant:
		return "bit-string constant"
	case KindPositionalParameter:
		return "positional parameter"
	case KindPunctuation:
		return "punctuation"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is an immutable lexical atom: a kind plus a text payload. The
// payload is the logical content, not the serialized form — an identifier
// holds its unquoted name, a string constant its unescaped content, a
// positional parameter its decimal index. Escaping and placeholder syntax
// are the renderer's job.
//
// A Token is itself a Fragment producing exactly one token.
type Token struct {
	text  string
	kind  TokenKind
	quote bool // identifiers only: caller forced quoting
}

// Joiner is the zero-width spacing-suppression token. Adjacent tokens
// separated by a Joiner render with no space between them.
var Joiner = Token{kind: KindJoiner}

// Kind returns the token's classification.
func (t Token) Kind() TokenKind { return t.kind }

// Text returns the token's payload. Empty only for Joiner.
func (t Token) Text() string { return t.text }

// ForceQuoted reports whether the caller requested quoting regardless of
// the renderer's own policy. Meaningful only for identifiers.
func (t Token) ForceQuoted() bool { return t.quote }

// Tokens implements Fragment with a single-token stream.
func (t Token) Tokens() Iterator {
	return &singleIterator{tok: t}
}

type singleIterator struct {
	tok  Token
	done bool
}

func (it *singleIterator) Next() (Token, bool) {
	if it.done {
		return Token{}, false
	}
	it.done = true
	return it.tok, true
}

func newToken(kind TokenKind, text string) Token {
	if text == "" {
		panic(fmt.Errorf("%s token requires non-empty text", kind))
	}
	return Token{kind: kind, text: text}
}

// Keyword creates a keyword token such as SELECT or FROM. The text is
// emitted verbatim.
func Keyword(text string) Token {
	return newToken(KindKeyword, text)
}

// Identifier creates an identifier token. The renderer emits it bare when
// the dialect allows, and quoted when the name collides with a reserved
// word or contains characters outside the dialect's bare-identifier set.
func Identifier(name string) Token {
	return newToken(KindIdentifier, name)
}

// QuotedIdentifier creates an identifier token that the renderer always
// quotes, whether or not quoting would be required.
func QuotedIdentifier(name string) Token {
	tok := newToken(KindIdentifier, name)
	tok.quote = true
	return tok
}

// Operator creates an operator token such as = or ||.
func Operator(text string) Token {
	return newToken(KindOperator, text)
}

// NumericConstant creates a numeric constant token from its textual form.
func NumericConstant(text string) Token {
	return newToken(KindNumericConstant, text)
}

// IntegerConstant creates a numeric constant token for v.
func IntegerConstant(v int64) Token {
	return Token{kind: KindNumericConstant, text: strconv.FormatInt(v, 10)}
}

// FloatConstant creates a numeric constant token for v.
func FloatConstant(v float64) Token {
	return Token{kind: KindNumericConstant, text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// StringConstant creates a string constant token. The renderer wraps the
// content in single quotes and doubles any embedded single quote. Empty
// content is allowed: it renders as ''.
func StringConstant(text string) Token {
	return Token{kind: KindStringConstant, text: text}
}

// BitStringConstant creates a bit-string constant token from a string of
// binary digits, rendered as B'digits'.
func BitStringConstant(digits string) Token {
	if digits == "" {
		panic(fmt.Errorf("bit-string constant requires at least one digit"))
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' && digits[i] != '1' {
			panic(fmt.Errorf("bit-string constant may contain only 0 and 1, got %q", digits))
		}
	}
	return Token{kind: KindBitStringConstant, text: digits}
}

// PositionalParameter creates a parameter reference token. Indexes are
// 1-based; the dialect decides the placeholder syntax ($1, ?, ?1, @p1).
func PositionalParameter(index int) Token {
	if index < 1 {
		panic(fmt.Errorf("positional parameter index must be >= 1, got %d", index))
	}
	return Token{kind: KindPositionalParameter, text: strconv.Itoa(index)}
}

// Punctuation creates a punctuation token such as a comma or parenthesis.
func Punctuation(text string) Token {
	return newToken(KindPunctuation, text)
}
