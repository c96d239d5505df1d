// Package export renders rosters as XLSX workbooks for download.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"nba-roster-service/internal/domain"
)

const sheet = "Players"

var header = []string{"Name", "Team", "Number", "Position", "Age", "Height", "Weight", "College", "Salary"}

// WriteXLSX writes the players as a single-sheet workbook. Unset numeric
// values and missing college/salary come out as blank cells, mirroring the
// JSON null handling.
func WriteXLSX(w io.Writer, players []domain.Player) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, p := range players {
		values := []any{p.Name, p.Team, p.Number, p.Position, cellInt(p.Age), p.Height, cellFloat(p.Weight), cellCollege(p.College), cellSalary(p.Salary)}
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellInt(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}

func cellFloat(v float64) any {
	if v <= 0 {
		return nil
	}
	return v
}

func cellCollege(v *string) any {
	if v == nil || *v == "" {
		return nil
	}
	return *v
}

func cellSalary(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
