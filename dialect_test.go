package sqlgram

import "testing"

func TestDialect_String(t *testing.T) {
	cases := []struct {
		dialect Dialect
		want    string
	}{
		{DialectPostgres, "postgres"},
		{DialectMySQL, "mysql"},
		{DialectSQLite, "sqlite"},
		{DialectSQLServer, "sqlserver"},
	}
	for _, tc := range cases {
		if got := tc.dialect.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestDialect_QuoteIdentifier(t *testing.T) {
	cases := []struct {
		dialect Dialect
		name    string
		want    string
	}{
		{DialectPostgres, "users", `"users"`},
		{DialectPostgres, `we"ird`, `"we""ird"`},
		{DialectSQLite, "users", `"users"`},
		{DialectMySQL, "users", "`users`"},
		{DialectMySQL, "we`ird", "`we``ird`"},
		{DialectSQLServer, "users", "[users]"},
		{DialectSQLServer, "we]ird", "[we]]ird]"},
	}
	for _, tc := range cases {
		if got := tc.dialect.quoteIdentifier(tc.name); got != tc.want {
			t.Errorf("%s: quoteIdentifier(%q) = %q, want %q",
				tc.dialect, tc.name, got, tc.want)
		}
	}
}

func TestDialect_Placeholder(t *testing.T) {
	param := PositionalParameter(2)
	cases := []struct {
		dialect Dialect
		want    string
	}{
		{DialectPostgres, "$2"},
		{DialectMySQL, "?"},
		{DialectSQLite, "?2"},
		{DialectSQLServer, "@p2"},
	}
	for _, tc := range cases {
		if got := NewRenderer(tc.dialect).Render(param); got != tc.want {
			t.Errorf("%s: Render = %q, want %q", tc.dialect, got, tc.want)
		}
	}
}

func TestDialect_BareSafe(t *testing.T) {
	cases := []struct {
		dialect Dialect
		name    string
		want    bool
	}{
		{DialectPostgres, "users", true},
		{DialectPostgres, "user_id", true},
		{DialectPostgres, "_hidden", true},
		{DialectPostgres, "v$1", true},
		{DialectPostgres, "Name", false}, // case folding would lose the capital
		{DialectPostgres, "1st", false},
		{DialectPostgres, "$x", false},
		{DialectPostgres, "user name", false},
		{DialectPostgres, "", false},
		{DialectMySQL, "Name", true},
		{DialectSQLServer, "Name", true},
		{DialectSQLite, "Name", false},
	}
	for _, tc := range cases {
		if got := tc.dialect.bareSafe(tc.name); got != tc.want {
			t.Errorf("%s: bareSafe(%q) = %v, want %v",
				tc.dialect, tc.name, got, tc.want)
		}
	}
}

func TestDialect_Reserved(t *testing.T) {
	if !DialectPostgres.reserved("select") {
		t.Error("postgres: select should be reserved")
	}
	if !DialectPostgres.reserved("SELECT") {
		t.Error("postgres: reserved check should be case-insensitive")
	}
	if DialectPostgres.reserved("users") {
		t.Error("postgres: users should not be reserved")
	}
	if !DialectSQLite.reserved("autoincrement") {
		t.Error("sqlite: autoincrement should be reserved")
	}
	if !DialectSQLServer.reserved("top") {
		t.Error("sqlserver: top should be reserved")
	}
	if !DialectMySQL.reserved("fulltext") {
		t.Error("mysql: fulltext should be reserved")
	}
}
