package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"autobot_site_go/models"

	"github.com/xuri/excelize/v2"
)

// LeadSheetName is the worksheet holding lead rows in exports and imports
const LeadSheetName = "Leads"

// leadColumns are the export headers. Imports read Name, Email, Company and
// Message by position.
var leadColumns = []string{"Name", "Email", "Company", "Message", "Source", "Created At", "ID"}

// ImportResult contains the summary of a lead import
type ImportResult struct {
	TotalProcessed int
	SuccessCount   int
	FailedCount    int
	Errors         []string
}

// ExportLeadsXLSX writes leads to a single-sheet workbook
func ExportLeadsXLSX(leads []models.Lead) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LeadSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range leadColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(LeadSheetName, cell, header)
	}

	for i, lead := range leads {
		row := i + 2
		values := []interface{}{
			lead.Name,
			lead.Email,
			lead.CompanyName(),
			lead.MessageText(),
			lead.Source,
			lead.CreatedAt.UTC().Format(time.RFC3339),
			lead.ID,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(LeadSheetName, cell, v)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(leadColumns), 1)
	f.SetCellStyle(LeadSheetName, "A1", lastHeader, headerStyle)
	f.SetColWidth(LeadSheetName, "A", "C", 28)
	f.SetColWidth(LeadSheetName, "D", "D", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

// ImportLeadsXLSX reads the Leads sheet and inserts each valid row through
// store. Invalid rows are reported and skipped.
func ImportLeadsXLSX(ctx context.Context, store LeadInserter, file io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(LeadSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", LeadSheetName, err)
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}
		result.TotalProcessed++

		input := LeadInput{
			Name:    cellAt(row, 0),
			Email:   cellAt(row, 1),
			Company: cellAt(row, 2),
			Message: cellAt(row, 3),
		}.Normalize()

		if err := input.Validate(); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		if err := store.InsertLead(ctx, input.ToLead(LeadMeta{Source: models.LeadSourceImport})); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
