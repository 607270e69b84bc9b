package repository

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/usecase/interfaces"
)

// readRange spans every column we could ever add; row 1 holds the headers.
const readRange = "A:ZZ"

// SheetRecordStore is the Record Store Adapter: it translates
// {site, table, field, value} operations into Google Sheets values calls.
//
// There is deliberately no cache and no batching: the sheet is the single
// source of truth and is also edited by humans, so every operation must
// observe the latest state. Locate-and-patch is used because the values API
// has no keyed update; the read-overlay-write sequence races with concurrent
// writers and the last write wins.

type SheetRecordStore struct {
	svc   *sheets.Service
	sites *entities.SiteRegistry
}

var _ interfaces.IRecordStore = (*SheetRecordStore)(nil)

func NewSheetRecordStore(svc *sheets.Service, sites *entities.SiteRegistry) *SheetRecordStore {
	return &SheetRecordStore{svc: svc, sites: sites}
}

func (r *SheetRecordStore) sheetID(siteID string) (string, error) {
	site, ok := r.sites.Get(siteID)
	if !ok {
		return "", fmt.Errorf("unknown site %q", siteID)
	}
	return site.SheetID, nil
}

func (r *SheetRecordStore) readAll(ctx context.Context, siteID, table string) ([][]string, error) {
	sheetID, err := r.sheetID(siteID)
	if err != nil {
		return nil, err
	}
	resp, err := r.svc.Spreadsheets.Values.Get(sheetID, table+"!"+readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading %s for %s: %w", table, siteID, err)
	}
	return toStringRows(resp.Values), nil
}

func (r *SheetRecordStore) List(ctx context.Context, siteID, table string) ([]entities.Record, error) {
	rows, err := r.readAll(ctx, siteID, table)
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows), nil
}

func (r *SheetRecordStore) FindByField(ctx context.Context, siteID, table, field, value string) (entities.Record, error) {
	records, err := r.List(ctx, siteID, table)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec[field] == value {
			return rec, nil
		}
	}
	return nil, nil
}

// FindRowIndex returns the 1-based sheet row of the first match, counting the
// header row, or 0 when absent. The index goes stale if rows are inserted or
// removed between lookup and use.
func (r *SheetRecordStore) FindRowIndex(ctx context.Context, siteID, table, field, value string) (int, error) {
	rows, err := r.readAll(ctx, siteID, table)
	if err != nil {
		return 0, err
	}
	idx := locateRow(rows, field, value)
	if idx < 0 {
		return 0, nil
	}
	return idx + 1, nil
}

func (r *SheetRecordStore) FullRow(ctx context.Context, siteID, table, field, value string) ([]string, []string, error) {
	rows, err := r.readAll(ctx, siteID, table)
	if err != nil {
		return nil, nil, err
	}
	idx := locateRow(rows, field, value)
	if idx < 0 {
		return nil, nil, nil
	}
	return rows[0], rows[idx], nil
}

func (r *SheetRecordStore) Append(ctx context.Context, siteID, table string, rows [][]string) error {
	sheetID, err := r.sheetID(siteID)
	if err != nil {
		return err
	}
	_, err = r.svc.Spreadsheets.Values.
		Append(sheetID, table+"!"+readRange, &sheets.ValueRange{Values: toInterfaceRows(rows)}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending to %s for %s: %w", table, siteID, err)
	}
	return nil
}

// UpdateByField re-reads the table, overlays patch onto the first matching
// row by column name, and writes the whole row back at its original position.
// Patch keys that are not sheet columns are silently dropped.
func (r *SheetRecordStore) UpdateByField(ctx context.Context, siteID, table, field, value string, patch map[string]string) error {
	sheetID, err := r.sheetID(siteID)
	if err != nil {
		return err
	}
	rows, err := r.readAll(ctx, siteID, table)
	if err != nil {
		return err
	}
	idx := locateRow(rows, field, value)
	if idx < 0 {
		return interfaces.ErrRowNotFound
	}

	updated := overlayRow(rows[0], rows[idx], patch)
	rng := fmt.Sprintf("%s!A%d:ZZ%d", table, idx+1, idx+1)
	_, err = r.svc.Spreadsheets.Values.
		Update(sheetID, rng, &sheets.ValueRange{Values: toInterfaceRows([][]string{updated})}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("updating row %d in %s for %s: %w", idx+1, table, siteID, err)
	}
	return nil
}

// DeleteRow physically removes one row at a 1-based position that counts the
// header row.
func (r *SheetRecordStore) DeleteRow(ctx context.Context, siteID, table string, rowIndex int) error {
	sheetID, err := r.sheetID(siteID)
	if err != nil {
		return err
	}
	if rowIndex < 2 {
		return fmt.Errorf("refusing to delete row %d (header or invalid)", rowIndex)
	}

	spreadsheet, err := r.svc.Spreadsheets.Get(sheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("loading spreadsheet for %s: %w", siteID, err)
	}
	var tabID int64 = -1
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == table {
			tabID = sh.Properties.SheetId
			break
		}
	}
	if tabID < 0 {
		return fmt.Errorf("tab %s not found for %s", table, siteID)
	}

	_, err = r.svc.Spreadsheets.BatchUpdate(sheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    tabID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1),
					EndIndex:   int64(rowIndex),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("deleting row %d in %s for %s: %w", rowIndex, table, siteID, err)
	}
	return nil
}

func toStringRows(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellString(cell)
		}
		out[i] = cells
	}
	return out
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// rowsToRecords maps data rows onto the header row. Short rows read as empty
// cells for the trailing columns.
func rowsToRecords(rows [][]string) []entities.Record {
	if len(rows) < 2 {
		return []entities.Record{}
	}
	headers := rows[0]
	records := make([]entities.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(entities.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = row[i]
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// locateRow returns the 0-based index of the first data row whose field
// column equals value, or -1.
func locateRow(rows [][]string, field, value string) int {
	if len(rows) < 2 {
		return -1
	}
	fieldIdx := -1
	for i, h := range rows[0] {
		if h == field {
			fieldIdx = i
			break
		}
	}
	if fieldIdx < 0 {
		return -1
	}
	for i := 1; i < len(rows); i++ {
		if fieldIdx < len(rows[i]) && rows[i][fieldIdx] == value {
			return i
		}
	}
	return -1
}

// overlayRow applies patch onto row by header name, padding the row out to
// the header width first so every column is addressable.
func overlayRow(headers, row []string, patch map[string]string) []string {
	updated := make([]string, len(headers))
	copy(updated, row)
	for key, val := range patch {
		for i, h := range headers {
			if h == key {
				updated[i] = val
				break
			}
		}
	}
	return updated
}
