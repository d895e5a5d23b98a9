// Package export converts a registration list into downloadable CSV or XLSX
// bytes. The formatter does no filtering or sorting: callers hand it records
// already ordered newest-first and it writes them verbatim. Zero records
// yields a header-only CSV or a header-only sheet.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/dalemusser/solarfair/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

// Headers is the fixed column set, in export order. Both formats use it.
var Headers = []string{
	"Organisation Name",
	"Email",
	"Phone",
	"First Name",
	"Last Name",
	"Gender",
	"Categorisation",
	"Registered on Solar Marketplace",
	"Interests",
	"Permission for Future Events",
	"Created At",
}

// SheetName is the single sheet in the XLSX workbook.
const SheetName = "Registrations"

// createdAtLayout renders timestamps the way the admin UI shows them
// (en-US locale style, e.g. "1/2/2006, 3:04:05 PM").
const createdAtLayout = "1/2/2006, 3:04:05 PM"

// Row flattens one registration into export cells, translating booleans to
// Yes/No and leaving missing optional text as empty strings.
func Row(reg models.Registration) []string {
	return []string{
		reg.OrganisationName,
		reg.Email,
		reg.Phone,
		reg.FirstName,
		reg.LastName,
		reg.Gender,
		reg.Categorisation,
		yesNo(reg.RegisteredOnMarketplace),
		reg.Interests,
		yesNo(reg.PermissionForFutureEvents),
		reg.CreatedAt.Format(createdAtLayout),
	}
}

// WriteCSV writes the records as CSV with every cell quoted and CRLF line
// endings. Callers that want Excel to detect UTF-8 should write a BOM first.
func WriteCSV(w io.Writer, regs []models.Registration) error {
	if err := writeCSVLine(w, Headers); err != nil {
		return err
	}
	for _, reg := range regs {
		if err := writeCSVLine(w, Row(reg)); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVLine(w io.Writer, cells []string) error {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quoteCell(sanitizeCell(c))
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\r\n")
	return err
}

// quoteCell always quotes, doubling embedded quotes, so cells containing
// commas or newlines survive.
func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// sanitizeCell prevents CSV formula injection.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// WriteXLSX writes the records as a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, regs []models.Registration) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	if err := setRow(f, 1, Headers); err != nil {
		return err
	}
	for i, reg := range regs {
		if err := setRow(f, i+2, Row(reg)); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, rowNum int, cells []string) error {
	addr, err := excelize.JoinCellName("A", rowNum)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	if err := f.SetSheetRow(SheetName, addr, &vals); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
