package keyword

import "testing"

func TestPostgres(t *testing.T) {
	for _, word := range []string{"select", "from", "where", "order", "group", "user"} {
		if !Postgres(word) {
			t.Errorf("Postgres(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"users", "email", "insert", ""} {
		if Postgres(word) {
			t.Errorf("Postgres(%q) = true, want false", word)
		}
	}
}

func TestMySQL(t *testing.T) {
	if !MySQL("insert") || !MySQL("select") || !MySQL("lines") {
		t.Error("expected reserved MySQL words")
	}
	if MySQL("users") {
		t.Error("users should not be reserved in MySQL")
	}
}

func TestSQLite(t *testing.T) {
	if !SQLite("autoincrement") || !SQLite("pragma") {
		t.Error("expected reserved SQLite words")
	}
	if SQLite("users") {
		t.Error("users should not be reserved in SQLite")
	}
}

func TestSQLServer(t *testing.T) {
	if !SQLServer("top") || !SQLServer("pivot") {
		t.Error("expected reserved T-SQL words")
	}
	if SQLServer("users") {
		t.Error("users should not be reserved in T-SQL")
	}
}
