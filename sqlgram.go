// Package sqlgram composes typed SQL grammar fragments into well-formed
// command text.
//
// The package works one direction only: a caller assembles a tree of
// fragments, and the renderer flattens that tree into a single token
// stream and serializes it. Correct spacing, separators, and
// parenthesization follow purely from the shape of the tree; there is no
// parsing, no semantic validation, and no tree rewriting.
//
// # Basic Usage
//
// Fragments are immutable values. Tokens are the leaves; JoinedSequence,
// Parenthesized, and Segment compose them:
//
//	cols := sqlgram.JoinSeparated(sqlgram.Comma,
//		sqlgram.Identifier("id"),
//		sqlgram.Identifier("name"),
//	)
//	stmt := sqlgram.Join(
//		sqlgram.Keyword("SELECT"), cols,
//		sqlgram.Keyword("FROM"), sqlgram.Identifier("users"),
//	)
//
//	sqlgram.Render(stmt)
//	// SELECT id, name FROM users
//
// Rendering is a total function: once a fragment tree is built it always
// renders, and rendering the same tree twice yields byte-identical text.
//
// # Dialects
//
// Render uses PostgreSQL conventions. Other engines differ only in
// identifier quoting, placeholder syntax, and reserved words; select them
// through a Renderer:
//
//	sqlgram.NewRenderer(sqlgram.DialectMySQL).Render(stmt)
//
// # Open-Ended Composition
//
// Any type with a Tokens() method participates in composition. The
// built-in fragments cover tokens, constant phrases, separated lists, and
// parenthesized groups; grammar-specific node types live outside this
// package and plug in through the Fragment interface.
//
// # Schema-Validated Identifiers
//
// For callers that want identifiers checked against a known schema,
// Schema wraps a DBML project and hands out identifier fragments only for
// tables and columns the schema actually contains.
package sqlgram
