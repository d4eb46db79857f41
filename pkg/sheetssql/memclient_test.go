package sheetssql

import (
	"context"
	"fmt"
	"strings"
)

// memClient is an in-memory spreadsheet keyed by tab title
type memClient struct {
	tabs      map[string][][]interface{}
	order     []string
	appendErr error
}

func newMemClient() *memClient {
	return &memClient{tabs: map[string][][]interface{}{}}
}

func (m *memClient) GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error) {
	tab, cells, _ := strings.Cut(sheetRange, "!")
	rows, ok := m.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("unknown tab %s", tab)
	}
	// Only the header range is ever requested with a cell range
	if cells == "A1:ZZ2" && len(rows) > 2 {
		rows = rows[:2]
	}
	return rows, nil
}

func (m *memClient) AppendRows(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	if _, ok := m.tabs[sheetRange]; !ok {
		return fmt.Errorf("unknown tab %s", sheetRange)
	}
	m.tabs[sheetRange] = append(m.tabs[sheetRange], values...)
	return nil
}

func (m *memClient) CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error) {
	if _, ok := m.tabs[sheetTitle]; ok {
		return 0, fmt.Errorf("tab %s already exists", sheetTitle)
	}
	m.tabs[sheetTitle] = [][]interface{}{}
	m.order = append(m.order, sheetTitle)
	return int64(len(m.order)), nil
}

func (m *memClient) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	titles := make([]string, 0, len(m.tabs))
	for title := range m.tabs {
		titles = append(titles, title)
	}
	return titles, nil
}
