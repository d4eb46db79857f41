// Package sheetssql treats a Google Sheets spreadsheet as a small append-only
// table store. Each tab is a table whose first two rows hold column names and types.
package sheetssql

import (
	"context"
	"fmt"
)

// SheetsClient defines the spreadsheet operations the store needs
type SheetsClient interface {
	GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error)
	AppendRows(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error
	CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error)
	SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
}

// Column defines a column with name and type
type Column struct {
	Name string
	Type string // e.g., "text", "date", "int", "float", "bool", "uuid", "timestamp"
}

// TableSchema defines the structure of a table
type TableSchema struct {
	Name    string
	Columns []Column
}

// Schema defines the database schema
type Schema struct {
	Tables []TableSchema
}

// Table returns the schema for a table by name
func (s *Schema) Table(name string) (TableSchema, bool) {
	for _, table := range s.Tables {
		if table.Name == name {
			return table, true
		}
	}
	return TableSchema{}, false
}

// DB represents a connection to a Google Sheets "database"
type DB struct {
	client        SheetsClient
	spreadsheetID string
	schema        *Schema
}

// NewDB creates a new Sheets SQL database connection and ensures schema exists
func NewDB(ctx context.Context, client SheetsClient, spreadsheetID string, schema *Schema) (*DB, error) {
	db := &DB{
		client:        client,
		spreadsheetID: spreadsheetID,
		schema:        schema,
	}

	if err := db.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}

// SpreadsheetID returns the database spreadsheet ID
func (db *DB) SpreadsheetID() string {
	return db.spreadsheetID
}

// InsertRows appends rows to the specified table
func (db *DB) InsertRows(ctx context.Context, tableName string, rows [][]interface{}) error {
	if _, ok := db.schema.Table(tableName); !ok {
		return fmt.Errorf("table %s is not in the schema", tableName)
	}
	return db.client.AppendRows(ctx, db.spreadsheetID, tableName, rows)
}
