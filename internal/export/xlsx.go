// Package export writes session records to spreadsheet files for the teams
// that consume the capture sessions.
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/meza-digital/dniscan/internal/pipeline"
)

// SheetName is the worksheet holding the exported records.
const SheetName = "Datos"

// headers are the Spanish column titles the downstream teams expect; order
// is part of the contract.
var headers = []string{
	"Nombre completo",
	"Número de DNI",
	"Sexo",
	"Rango de edad",
	"Fecha Nacimiento",
	"Comunidad",
	"Celular",
}

// WriteXLSX writes the table to an .xlsx workbook at path, one header row
// plus one row per record. An empty table still produces a workbook with
// just the header row.
func WriteXLSX(path string, table *pipeline.Table) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing workbook", "error", err)
		}
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return err
	}
	rows := table.Rows()
	for i, r := range rows {
		cells := []string{r.FullName, r.DNI, r.Sex, r.AgeRange, r.DOB, r.Community, r.Phone}
		if err := writeRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	slog.Info("exported records", "path", path, "rows", len(rows))
	return nil
}

func writeRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
