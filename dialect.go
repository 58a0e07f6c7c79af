package sqlgram

import (
	"fmt"
	"strings"

	"github.com/YOCKOW/sqlgram/internal/keyword"
)

// Dialect selects the identifier quoting style, the positional-parameter
// placeholder syntax, and the reserved-word set a Renderer applies. Token
// spacing is dialect-independent.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectMySQL
	DialectSQLite
	DialectSQLServer
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	case DialectMySQL:
		return "mysql"
	case DialectSQLite:
		return "sqlite"
	case DialectSQLServer:
		return "sqlserver"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// quoteIdentifier returns the quoted, escaped form of name.
func (d Dialect) quoteIdentifier(name string) string {
	switch d {
	case DialectMySQL:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case DialectSQLServer:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		// PostgreSQL and SQLite double-quote, doubling embedded quotes.
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

// placeholder renders a positional parameter reference; index is the
// token's decimal payload.
func (d Dialect) placeholder(index string) string {
	switch d {
	case DialectMySQL:
		return "?"
	case DialectSQLite:
		return "?" + index
	case DialectSQLServer:
		return "@p" + index
	default:
		return "$" + index
	}
}

// reserved reports whether name collides with a reserved word and must be
// quoted to be used as an identifier.
func (d Dialect) reserved(name string) bool {
	word := strings.ToLower(name)
	switch d {
	case DialectMySQL:
		return keyword.MySQL(word)
	case DialectSQLite:
		return keyword.SQLite(word)
	case DialectSQLServer:
		return keyword.SQLServer(word)
	default:
		return keyword.Postgres(word)
	}
}

// bareSafe reports whether name can be emitted without quoting. The rule
// is conservative: letters, digits, underscore, and dollar, not starting
// with a digit or dollar. PostgreSQL and SQLite additionally exclude
// upper-case letters, since an unquoted identifier would be case-folded
// and no longer round-trip.
func (d Dialect) bareSafe(name string) bool {
	if name == "" {
		return false
	}
	allowUpper := d == DialectMySQL || d == DialectSQLServer
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z' || c == '_':
		case c >= 'A' && c <= 'Z':
			if !allowUpper {
				return false
			}
		case c >= '0' && c <= '9' || c == '$':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
