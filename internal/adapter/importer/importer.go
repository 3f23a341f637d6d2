// Package importer reads employee rows from CSV or XLSX exports of the HR directory.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"wfh-leave-backend/internal/domain/employee"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumn     = errors.New("missing column")
	ErrEmptyFile         = errors.New("file has no header row")
)

// Columns lists the header names every file must carry, in any order.
var Columns = []string{
	"Staff_ID", "Staff_FName", "Staff_LName", "Dept", "Position",
	"Country", "Email", "Reporting_Manager", "Role",
}

// Parse picks the reader from the file extension.
func Parse(name string, r io.Reader) ([]employee.Employee, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

func ReadCSV(r io.Reader) ([]employee.Employee, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return decode(records)
}

// ReadXLSX reads the first sheet of the workbook.
func ReadXLSX(r io.Reader) ([]employee.Employee, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	return decode(rows)
}

func decode(records [][]string) ([]employee.Employee, error) {
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	idx := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimPrefix(h, "\ufeff")
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	pos := make(map[string]int, len(Columns))
	for _, c := range Columns {
		i, ok := idx[strings.ToLower(c)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
		pos[c] = i
	}

	out := make([]employee.Employee, 0, len(records)-1)
	for n, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		line := n + 2
		cell := func(col string) string {
			if i := pos[col]; i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}

		staffID, err := parseInt(cell("Staff_ID"))
		if err != nil {
			return nil, fmt.Errorf("row %d: Staff_ID: %w", line, err)
		}
		role, err := parseInt(cell("Role"))
		if err != nil {
			return nil, fmt.Errorf("row %d: Role: %w", line, err)
		}
		var manager *int64
		if raw := cell("Reporting_Manager"); raw != "" {
			m, err := parseInt(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: Reporting_Manager: %w", line, err)
			}
			manager = &m
		}

		out = append(out, employee.Employee{
			StaffID:          staffID,
			StaffFName:       cell("Staff_FName"),
			StaffLName:       cell("Staff_LName"),
			Dept:             cell("Dept"),
			Position:         cell("Position"),
			Country:          cell("Country"),
			Email:            cell("Email"),
			ReportingManager: manager,
			Role:             int(role),
		})
	}
	return out, nil
}

// parseInt also accepts integral floats ("140001.0"), which spreadsheet exports
// produce for numeric columns that contain blanks.
func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int64(f), nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
