// Package excelize exports processed listings as XLSX workbooks.
package excelize

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/carads"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the name of the worksheet holding the listings.
const DefaultSheet = "Listings"

// column is one exported field.
type column struct {
	header string
	width  float64
	value  func(l *carads.Listing) any
}

var columns = []column{
	{"URL", 60, func(l *carads.Listing) any { return l.URL }},
	{"Location", 14, func(l *carads.Listing) any { return l.Location }},
	{"Post ID", 14, func(l *carads.Listing) any { return l.PostID }},
	{"Make", 16, func(l *carads.Listing) any { return deref(l.Make) }},
	{"Model", 18, func(l *carads.Listing) any { return deref(l.Model) }},
	{"Year", 8, func(l *carads.Listing) any { return deref(l.Year) }},
	{"Price", 12, func(l *carads.Listing) any { return deref(l.Price) }},
	{"Odometer", 12, odometer},
	{"Title Status", 14, func(l *carads.Listing) any { return deref(l.TitleStatus) }},
	{"Paint", 12, func(l *carads.Listing) any { return deref(l.Paint) }},
	{"Drive", 8, func(l *carads.Listing) any { return deref(l.Drive) }},
	{"Cylinders", 14, func(l *carads.Listing) any { return deref(l.Cylinders) }},
	{"Condition", 12, func(l *carads.Listing) any { return deref(l.Condition) }},
	{"Fuel", 10, func(l *carads.Listing) any { return deref(l.Fuel) }},
	{"Type", 12, func(l *carads.Listing) any { return deref(l.BodyType) }},
	{"Transmission", 14, func(l *carads.Listing) any { return deref(l.Transmission) }},
	{"VIN", 20, func(l *carads.Listing) any { return deref(l.VIN) }},
	{"Name", 28, func(l *carads.Listing) any { return deref(l.Name) }},
	{"Title", 40, func(l *carads.Listing) any { return deref(l.TitleText) }},
	{"Posted At", 20, func(l *carads.Listing) any { return deref(l.PostedAt) }},
	{"Images", 8, func(l *carads.Listing) any { return deref(l.ImageCount) }},
	{"Latitude", 12, func(l *carads.Listing) any { return deref(l.Latitude) }},
	{"Longitude", 12, func(l *carads.Listing) any { return deref(l.Longitude) }},
	{"Needs Further Parsing", 12, func(l *carads.Listing) any { return l.NeedsFurtherParsing }},
	{"Processed At", 22, func(l *carads.Listing) any { return l.ProcessedAt.UTC().Format(time.RFC3339) }},
}

// Exporter writes listings to a single-sheet workbook, one row per listing
// below a header row. Missing values are left blank.
type Exporter struct {
	Sheet string
}

// NewExporter creates an Exporter writing to DefaultSheet.
func NewExporter() *Exporter {
	return &Exporter{Sheet: DefaultSheet}
}

// WriteListings writes the workbook to w.
func (e *Exporter) WriteListings(w io.Writer, listings []*carads.Listing) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := e.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, c := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.header); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, c.width); err != nil {
			return err
		}
	}

	for r, l := range listings {
		for i, c := range columns {
			v := c.value(l)
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func odometer(l *carads.Listing) any {
	switch {
	case l.Odometer == nil:
		return nil
	case l.Odometer.Numeric():
		return *l.Odometer.Miles
	default:
		return l.Odometer.Text
	}
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
