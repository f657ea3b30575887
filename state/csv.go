package state

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"grapher/stats"
)

// ExportCSV writes the dataset as x,y,label rows with a header.
func ExportCSV(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "label"}); err != nil {
		return err
	}
	for _, p := range ds.Points {
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			ds.Label,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads x,y[,label] rows into a dataset with a fresh identifier.
// A header row is skipped, fields are trimmed and rows whose numeric fields
// do not parse are dropped rather than failing the import.
func ImportCSV(r io.Reader, label string) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []stats.Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read csv: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, stats.Point{X: x, Y: y})
	}
	return NewDataset(label, points), nil
}
