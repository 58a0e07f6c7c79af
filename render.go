package sqlgram

import "strings"

// Renderer serializes a fragment's token stream into final command text
// for one dialect. The zero value renders PostgreSQL; Renderer values are
// stateless and safe for concurrent use.
type Renderer struct {
	dialect Dialect
}

// NewRenderer creates a renderer for the given dialect.
func NewRenderer(d Dialect) *Renderer {
	return &Renderer{dialect: d}
}

// Dialect returns the renderer's dialect.
func (r *Renderer) Dialect() Dialect { return r.dialect }

// Render walks f's token stream once and produces the command text.
// Between two consecutive tokens it inserts exactly one space unless
// either token is a joiner; joiners contribute no text of their own.
// Rendering is total: it cannot fail on a constructed fragment, and the
// same fragment value always renders identical text.
func (r *Renderer) Render(f Fragment) string {
	var sb strings.Builder
	it := f.Tokens()
	wrote := false
	oweSpace := false
	for tok, ok := it.Next(); ok; tok, ok = it.Next() {
		if tok.kind == KindJoiner {
			oweSpace = false
			continue
		}
		if wrote && oweSpace {
			sb.WriteByte(' ')
		}
		r.writeToken(&sb, tok)
		wrote = true
		oweSpace = true
	}
	return sb.String()
}

func (r *Renderer) writeToken(sb *strings.Builder, tok Token) {
	switch tok.kind {
	case KindIdentifier:
		if tok.quote || r.dialect.reserved(tok.text) || !r.dialect.bareSafe(tok.text) {
			sb.WriteString(r.dialect.quoteIdentifier(tok.text))
		} else {
			sb.WriteString(tok.text)
		}
	case KindStringConstant:
		sb.WriteByte('\'')
		sb.WriteString(strings.ReplaceAll(tok.text, "'", "''"))
		sb.WriteByte('\'')
	case KindBitStringConstant:
		sb.WriteString("B'")
		sb.WriteString(tok.text)
		sb.WriteByte('\'')
	case KindPositionalParameter:
		sb.WriteString(r.dialect.placeholder(tok.text))
	case KindKeyword, KindOperator, KindNumericConstant, KindPunctuation:
		sb.WriteString(tok.text)
	case KindJoiner:
		// Filtered out by Render before reaching here.
	}
}

// Render produces PostgreSQL command text for f.
func Render(f Fragment) string {
	return NewRenderer(DialectPostgres).Render(f)
}
