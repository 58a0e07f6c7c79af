package integration

import (
	"context"
	"testing"

	"github.com/YOCKOW/sqlgram"
)

func TestMSSQL_RenderedDDLAndDML(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	mc := getMSSQLContainer(t)
	r := sqlgram.NewRenderer(sqlgram.DialectSQLServer)

	create := sqlgram.Join(
		sqlgram.Keyword("CREATE"), sqlgram.Keyword("TABLE"),
		sqlgram.Identifier("events"),
		sqlgram.Parenthesize(sqlgram.JoinSeparated(sqlgram.Comma,
			columnDef("id", sqlgram.Join(
				sqlgram.Keyword("BIGINT"), sqlgram.Keyword("IDENTITY"),
				sqlgram.Keyword("PRIMARY"), sqlgram.Keyword("KEY"))),
			columnDef("label", varcharType(255)),
			// "top" is reserved in T-SQL and must come out bracket-quoted.
			columnDef("top", sqlgram.Keyword("INT")),
		)),
	)
	mc.Exec(ctx, t, r.Render(create))

	insert := sqlgram.Join(
		sqlgram.Keyword("INSERT"), sqlgram.Keyword("INTO"),
		sqlgram.Identifier("events"),
		sqlgram.Parenthesize(sqlgram.JoinSeparated(sqlgram.Comma,
			sqlgram.Identifier("label"), sqlgram.Identifier("top"))),
		sqlgram.Keyword("VALUES"),
		sqlgram.Parenthesize(sqlgram.JoinSeparated(sqlgram.Comma,
			sqlgram.PositionalParameter(1), sqlgram.PositionalParameter(2))),
	)
	mc.Exec(ctx, t, r.Render(insert), "deploy", 5)

	query := sqlgram.Join(
		sqlgram.Keyword("SELECT"), sqlgram.Identifier("top"),
		sqlgram.Keyword("FROM"), sqlgram.Identifier("events"),
		sqlgram.Keyword("WHERE"), sqlgram.Identifier("label"),
		sqlgram.Operator("="), sqlgram.PositionalParameter(1),
	)

	var top int
	if err := mc.QueryRow(ctx, t, r.Render(query), "deploy").Scan(&top); err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}
	if top != 5 {
		t.Errorf("top = %d, want 5", top)
	}
}
