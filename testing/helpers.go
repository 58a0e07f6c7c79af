// Package testing provides test utilities for sqlgram.
package testing

import (
	"testing"

	"github.com/YOCKOW/sqlgram"
	"github.com/zoobzio/dbml"
)

// TestSchema creates a schema for testing with users, posts, and orders
// tables.
func TestSchema(t *testing.T) *sqlgram.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	schema, err := sqlgram.NewSchema(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertRender renders frag with the default renderer and compares the
// result, reporting a detailed mismatch.
func AssertRender(t *testing.T, expected string, frag sqlgram.Fragment) {
	t.Helper()
	actual := sqlgram.Render(frag)
	if actual != expected {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRenderDialect is AssertRender for a specific dialect.
func AssertRenderDialect(t *testing.T, d sqlgram.Dialect, expected string, frag sqlgram.Fragment) {
	t.Helper()
	actual := sqlgram.NewRenderer(d).Render(frag)
	if actual != expected {
		t.Errorf("%s SQL mismatch:\nExpected: %s\nActual:   %s", d, expected, actual)
	}
}
