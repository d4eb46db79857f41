package sheetssql

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
)

// GetTableAs retrieves all rows from T's table and maps them to structs of type T
// Skips the first two rows (headers and types)
func GetTableAs[T any](ctx context.Context, db *DB) ([]T, error) {
	tableName := TableName[T]()

	values, err := db.client.GetValues(ctx, db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	if len(values) < 3 {
		// Need at least headers, types, and one data row
		return []T{}, nil
	}

	t := reflect.TypeFor[T]()

	// Map each header to the field tagged with it
	fieldIndexByColumn := make(map[int]int)
	for colIdx, header := range values[0] {
		name := cellString(header)
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("ssql_header") == name {
				fieldIndexByColumn[colIdx] = i
				break
			}
		}
	}

	dataRows := values[2:]
	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		result := reflect.New(t).Elem()

		for colIdx, fieldIdx := range fieldIndexByColumn {
			if colIdx >= len(row) || row[colIdx] == nil {
				continue
			}

			if err := setFieldValue(result.Field(fieldIdx), row[colIdx]); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+3, cellString(values[0][colIdx]), err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// cellString returns a cell as the string the Sheets API would render it as
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// setFieldValue converts a sheet cell value to the appropriate Go type and sets it on the field
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	cellStr := cellString(cellValue)

	switch field.Kind() {
	case reflect.String:
		field.SetString(cellStr)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cellStr == "" {
			field.SetInt(0)
			return nil
		}
		intVal, err := strconv.ParseInt(cellStr, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int: %w", err)
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		if cellStr == "" {
			field.SetFloat(0)
			return nil
		}
		floatVal, err := strconv.ParseFloat(cellStr, 64)
		if err != nil {
			return fmt.Errorf("failed to parse float: %w", err)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		if cellStr == "" {
			field.SetBool(false)
			return nil
		}
		boolVal, err := strconv.ParseBool(cellStr)
		if err != nil {
			return fmt.Errorf("failed to parse bool: %w", err)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// modelRow flattens the tagged fields of a model into a sheet row
func modelRow(v reflect.Value) []interface{} {
	t := v.Type()
	row := make([]interface{}, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("ssql_header") == "" {
			continue
		}
		row = append(row, v.Field(i).Interface())
	}
	return row
}

// InsertModel appends a struct as a row to its corresponding table
func InsertModel[T any](ctx context.Context, db *DB, model T) error {
	return InsertModels(ctx, db, []T{model})
}

// InsertModels appends multiple structs as rows to their corresponding table
func InsertModels[T any](ctx context.Context, db *DB, models []T) error {
	if len(models) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(models))
	for _, model := range models {
		rows = append(rows, modelRow(reflect.ValueOf(model)))
	}

	return db.InsertRows(ctx, TableName[T](), rows)
}
