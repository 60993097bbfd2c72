package workbench

import (
	"encoding/csv"
	"fmt"
	"github.com/lsulibraries/ldlpost/models"
	"github.com/xuri/excelize/v2"
	"os"
	"path/filepath"
	"strings"
)

// SheetName is the name of the worksheet WriteXLSX writes.
const SheetName = "Workbench"

// Write writes table to outputPath as XLSX if the path ends in .xlsx,
// or as CSV otherwise.
func Write(table *models.MetadataTable, outputPath string) error {
	if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
		return WriteXLSX(table, outputPath)
	}
	return WriteCSV(table, outputPath)
}

// WriteCSV writes the table's header and records, in order, to a CSV
// file at outputPath. Missing values are written as empty strings.
func WriteCSV(table *models.MetadataTable, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("Cannot create output file '%s': %v", outputPath, err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	for _, record := range table.Records {
		if err := writer.Write(table.Row(record)); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("Error writing '%s': %v", outputPath, err)
	}
	return file.Close()
}

// WriteXLSX writes the table to a single worksheet named SheetName in
// a new workbook at outputPath. Every cell is written as a string.
func WriteXLSX(table *models.MetadataTable, outputPath string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()
	if err := workbook.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := setRow(workbook, 1, table.Header); err != nil {
		return err
	}
	for i, record := range table.Records {
		if err := setRow(workbook, i+2, table.Row(record)); err != nil {
			return err
		}
	}
	if err := workbook.SaveAs(outputPath); err != nil {
		return fmt.Errorf("Cannot save workbook '%s': %v", outputPath, err)
	}
	return nil
}

func setRow(workbook *excelize.File, rowNumber int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	return workbook.SetSheetRow(SheetName, cell, &values)
}
