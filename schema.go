package sqlgram

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Schema hands out identifier fragments validated against a DBML project,
// so a statement can only reference tables and columns the schema
// actually contains. Validation happens at fragment construction;
// rendering stays total.
type Schema struct {
	// table name -> column name -> present
	tables map[string]map[string]bool
}

// NewSchema builds a Schema from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{tables: make(map[string]map[string]bool)}
	for _, table := range project.Tables {
		cols := make(map[string]bool, len(table.Columns))
		for _, col := range table.Columns {
			cols[col.Name] = true
		}
		s.tables[table.Name] = cols
	}
	return s, nil
}

// Table returns an identifier fragment for a table, or an error when the
// schema has no such table.
func (s *Schema) Table(name string) (Token, error) {
	if _, ok := s.tables[name]; !ok {
		return Token{}, fmt.Errorf("table '%s' not found in schema", name)
	}
	return Identifier(name), nil
}

// Column returns an identifier fragment for a column of a table.
func (s *Schema) Column(table, column string) (Token, error) {
	cols, ok := s.tables[table]
	if !ok {
		return Token{}, fmt.Errorf("table '%s' not found in schema", table)
	}
	if !cols[column] {
		return Token{}, fmt.Errorf("column '%s' not found in table '%s'", column, table)
	}
	return Identifier(column), nil
}

// QualifiedColumn returns a table.column fragment with no interior
// spacing.
func (s *Schema) QualifiedColumn(table, column string) (JoinedSequence, error) {
	col, err := s.Column(table, column)
	if err != nil {
		return JoinedSequence{}, err
	}
	return Join(Identifier(table), Dot, col), nil
}

// T is Table for call sites where the name is statically known to be in
// the schema; it panics on an unknown table.
func (s *Schema) T(name string) Token {
	tok, err := s.Table(name)
	if err != nil {
		panic(err)
	}
	return tok
}

// C is Column with the same panic-on-unknown contract as T.
func (s *Schema) C(table, column string) Token {
	tok, err := s.Column(table, column)
	if err != nil {
		panic(err)
	}
	return tok
}

// QC is QualifiedColumn with the same panic-on-unknown contract as T.
func (s *Schema) QC(table, column string) JoinedSequence {
	seq, err := s.QualifiedColumn(table, column)
	if err != nil {
		panic(err)
	}
	return seq
}
