// Package report renders worker summaries as spreadsheets.
package report

import (
	"fmt"
	"io"

	"github.com/baharkarakas/pos-backend/internal/api/views"
	"github.com/xuri/excelize/v2"
)

const WorkersSheet = "Workers"

var workerHeader = []any{
	"Username", "Email", "Status", "Sales", "Expenses", "Balance", "Current Shift", "Last Shift",
}

// WriteWorkers writes one header row and one row per worker to w as xlsx.
func WriteWorkers(w io.Writer, rows []views.WorkerRowView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WorkersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(WorkersSheet, "A1", &workerHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(WorkersSheet, 1, 1, style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Username, r.Email, r.Status, r.Sales, r.Expenses, r.Balance, r.CurrentShift, r.LastShift}
		if err := f.SetSheetRow(WorkersSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(WorkersSheet, "A", "H", 16); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
