// Package keyword holds the per-dialect reserved-word sets backing the
// renderer's decision to force-quote an identifier. Lookups expect the
// word already folded to lower case.
package keyword

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Reserved words per PostgreSQL: those that cannot be used as a bare
// column or table name.
var postgres = set(
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "authorization", "binary", "both", "case", "cast",
	"check", "collate", "collation", "column", "concurrently",
	"constraint", "create", "cross", "current_catalog", "current_date",
	"current_role", "current_schema", "current_time", "current_timestamp",
	"current_user", "default", "deferrable", "desc", "distinct", "do",
	"else", "end", "except", "false", "fetch", "for", "foreign", "freeze",
	"from", "full", "grant", "group", "having", "ilike", "in", "initially",
	"inner", "intersect", "into", "is", "isnull", "join", "lateral",
	"leading", "left", "like", "limit", "localtime", "localtimestamp",
	"natural", "not", "notnull", "null", "offset", "on", "only", "or",
	"order", "outer", "overlaps", "placing", "primary", "references",
	"returning", "right", "select", "session_user", "similar", "some",
	"symmetric", "system_user", "table", "tablesample", "then", "to",
	"trailing", "true", "union", "unique", "user", "using", "variadic",
	"verbose", "when", "where", "window", "with",
)

var mysql = set(
	"add", "all", "alter", "and", "as", "asc", "before", "between",
	"bigint", "binary", "blob", "both", "by", "call", "cascade", "case",
	"change", "char", "character", "check", "collate", "column",
	"condition", "constraint", "continue", "convert", "create", "cross",
	"current_date", "current_time", "current_timestamp", "current_user",
	"cursor", "database", "databases", "decimal", "declare", "default",
	"delete", "desc", "describe", "distinct", "div", "double", "drop",
	"else", "exists", "exit", "explain", "false", "fetch", "float", "for",
	"force", "foreign", "from", "fulltext", "grant", "group", "having",
	"if", "ignore", "in", "index", "inner", "insert", "int", "integer",
	"interval", "into", "is", "join", "key", "keys", "kill", "leading",
	"left", "like", "limit", "lines", "load", "localtime",
	"localtimestamp", "lock", "long", "match", "natural", "regexp",
	"rename", "repeat", "replace", "not", "null", "numeric", "on",
	"optimize", "option", "or", "order", "out", "outer", "primary",
	"procedure", "range", "read", "references", "restrict", "return",
	"revoke", "right", "schema", "select", "set", "show", "smallint",
	"table", "then", "to", "trailing", "trigger", "true", "union",
	"unique", "unlock", "unsigned", "update", "usage", "use", "using",
	"values", "varchar", "when", "where", "while", "with", "write", "xor",
)

var sqlite = set(
	"abort", "action", "add", "after", "all", "alter", "always",
	"analyze", "and", "as", "asc", "attach", "autoincrement", "before",
	"begin", "between", "by", "cascade", "case", "cast", "check",
	"collate", "column", "commit", "conflict", "constraint", "create",
	"cross", "current", "current_date", "current_time",
	"current_timestamp", "database", "default", "deferrable", "deferred",
	"delete", "desc", "detach", "distinct", "do", "drop", "each", "else",
	"end", "escape", "except", "exclude", "exclusive", "exists",
	"explain", "fail", "filter", "first", "following", "for", "foreign",
	"from", "full", "generated", "glob", "group", "groups", "having",
	"if", "ignore", "immediate", "in", "index", "indexed", "initially",
	"inner", "insert", "instead", "intersect", "into", "is", "isnull",
	"join", "key", "last", "left", "like", "limit", "match",
	"materialized", "natural", "no", "not", "nothing", "notnull", "null",
	"nulls", "of", "offset", "on", "or", "order", "others", "outer",
	"over", "partition", "plan", "pragma", "preceding", "primary",
	"query", "raise", "range", "recursive", "references", "regexp",
	"reindex", "release", "rename", "replace", "restrict", "returning",
	"right", "rollback", "row", "rows", "savepoint", "select", "set",
	"table", "temp", "temporary", "then", "ties", "to", "transaction",
	"trigger", "unbounded", "union", "unique", "update", "using",
	"vacuum", "values", "view", "virtual", "when", "where", "window",
	"with", "without",
)

var sqlserver = set(
	"add", "all", "alter", "and", "any", "as", "asc", "authorization",
	"backup", "begin", "between", "break", "browse", "bulk", "by",
	"cascade", "case", "check", "checkpoint", "close", "clustered",
	"coalesce", "collate", "column", "commit", "compute", "constraint",
	"contains", "continue", "convert", "create", "cross", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"cursor", "database", "dbcc", "deallocate", "declare", "default",
	"delete", "deny", "desc", "distinct", "distributed", "double",
	"drop", "else", "end", "errlvl", "escape", "except", "exec",
	"execute", "exists", "exit", "external", "fetch", "file",
	"fillfactor", "for", "foreign", "freetext", "from", "full",
	"function", "goto", "grant", "group", "having", "holdlock",
	"identity", "if", "in", "index", "inner", "insert", "intersect",
	"into", "is", "join", "key", "kill", "left", "like", "lineno",
	"load", "merge", "national", "nocheck", "nonclustered", "not",
	"null", "nullif", "of", "off", "offsets", "on", "open", "option",
	"or", "order", "outer", "over", "percent", "pivot", "plan",
	"primary", "print", "proc", "procedure", "public", "raiserror",
	"read", "readtext", "reconfigure", "references", "replication",
	"restore", "restrict", "return", "revert", "revoke", "right",
	"rollback", "rowcount", "rowguidcol", "rule", "save", "schema",
	"select", "session_user", "set", "setuser", "shutdown", "some",
	"statistics", "system_user", "table", "tablesample", "textsize",
	"then", "to", "top", "tran", "transaction", "trigger", "truncate",
	"union", "unique", "unpivot", "update", "updatetext", "use", "user",
	"values", "varying", "view", "waitfor", "when", "where", "while",
	"with", "writetext",
)

// Postgres reports whether word is reserved in PostgreSQL.
func Postgres(word string) bool {
	_, ok := postgres[word]
	return ok
}

// MySQL reports whether word is reserved in MySQL/MariaDB.
func MySQL(word string) bool {
	_, ok := mysql[word]
	return ok
}

// SQLite reports whether word is a SQLite keyword.
func SQLite(word string) bool {
	_, ok := sqlite[word]
	return ok
}

// SQLServer reports whether word is reserved in Transact-SQL.
func SQLServer(word string) bool {
	_, ok := sqlserver[word]
	return ok
}
