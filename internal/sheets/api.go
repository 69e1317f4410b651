package sheets

import "context"

// SheetsAPI defines the sheet operations the leaderboard manager needs.
// This separates infrastructure concerns from export logic and lets
// tests substitute an in-memory double.
type SheetsAPI interface {
	UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error
	ClearRange(ctx context.Context, spreadsheetID, range_ string) error
	CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error
	SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error)
}
