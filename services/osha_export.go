package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/blogem/opsledger/models"
)

// Workbook sheet names
const (
	Form300Sheet  = "Form 300"
	Form300ASheet = "Form 300A"
)

var form300Headers = []string{
	"Case No.", "Employee Name", "Job Title", "Date of Injury", "Where Event Occurred",
	"Description", "Classification", "Days Away", "Days Restricted", "Injury Type",
}

// WriteOSHAWorkbook renders a year's log and its summary as XLSX.
// Entries must already be redacted.
func WriteOSHAWorkbook(w io.Writer, year int, entries []models.OSHAEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Form300Sheet); err != nil {
		return fmt.Errorf("failed to name log sheet: %w", err)
	}
	if _, err := f.NewSheet(Form300ASheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeForm300(f, entries, headerStyle); err != nil {
		return err
	}
	if err := writeForm300A(f, models.BuildOSHASummary(year, entries), headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeForm300(f *excelize.File, entries []models.OSHAEntry, headerStyle int) error {
	if err := setRow(f, Form300Sheet, 1, toCells(form300Headers)); err != nil {
		return err
	}
	if err := f.SetRowStyle(Form300Sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style log header: %w", err)
	}

	for i, e := range entries {
		row := []interface{}{
			e.CaseNumber,
			e.DisplayName(),
			e.JobTitle,
			models.FormatDate(e.IncidentDate),
			e.Location,
			e.Description,
			humanize(e.Classification),
			e.DaysAway,
			e.DaysRestricted,
			humanize(e.InjuryType),
		}
		if err := setRow(f, Form300Sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(Form300Sheet, "A", "J", 18); err != nil {
		return fmt.Errorf("failed to size log columns: %w", err)
	}
	return f.SetColWidth(Form300Sheet, "F", "F", 48)
}

func writeForm300A(f *excelize.File, summary models.OSHASummary, headerStyle int) error {
	rows := [][]interface{}{
		{"Summary of Work-Related Injuries and Illnesses", summary.Year},
		{"Total cases", summary.TotalCases},
		{},
		{"Number of cases", ""},
	}
	for _, c := range models.OSHAClassifications {
		rows = append(rows, []interface{}{humanize(c), summary.ByClassification[c]})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Number of days", ""},
		[]interface{}{"Days away from work", summary.TotalDaysAway},
		[]interface{}{"Days of job transfer or restriction", summary.TotalDaysRestricted},
		[]interface{}{},
		[]interface{}{"Injury and illness types", ""},
	)
	for _, t := range models.OSHAInjuryTypes {
		rows = append(rows, []interface{}{humanize(t), summary.ByInjuryType[t]})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := setRow(f, Form300ASheet, i+1, row); err != nil {
			return err
		}
		if row[1] == "" || i == 0 {
			if err := f.SetRowStyle(Form300ASheet, i+1, i+1, headerStyle); err != nil {
				return fmt.Errorf("failed to style summary row: %w", err)
			}
		}
	}
	return f.SetColWidth(Form300ASheet, "A", "A", 44)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// humanize turns "days_away" into "Days away"
func humanize(value string) string {
	s := strings.ReplaceAll(value, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
