package exporter

import (
	"fmt"

	"github.com/orayew2002/dummy-employees/domain"
	excelize "github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the employee table.
const SheetName = "Employees"

// WriteWorkbook creates an Excel file with employee data and saves it to path.
func WriteWorkbook(employees []domain.Employee, path string) error {
	f, err := newWorkbook(employees)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

func newWorkbook(employees []domain.Employee) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	sm := newStyleManager(f)

	if err := writeHeaders(f, sm); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(f, sm, employees); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := layoutColumns(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("layout columns: %w", err)
	}

	return f, nil
}

func writeHeaders(f *excelize.File, sm *styleManager) error {
	style, err := sm.header()
	if err != nil {
		return err
	}

	for col, header := range Headers() {
		if err := setCell(f, 0, col, header, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, sm *styleManager, employees []domain.Employee) error {
	style, err := sm.cell()
	if err != nil {
		return err
	}

	for i, emp := range employees {
		row := i + 1 // row 0 is headers
		for col, val := range Row(emp) {
			if err := setCell(f, row, col, val, style); err != nil {
				return fmt.Errorf("employee %d, col %d: %w", emp.ID, col, err)
			}
		}
	}

	return nil
}

// setCell writes a string value and style at 0-based row and col.
func setCell(f *excelize.File, row, col int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := f.SetCellStr(SheetName, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, cell, cell, style)
}

func layoutColumns(f *excelize.File) error {
	for i, c := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, c.width); err != nil {
			return err
		}
	}

	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
