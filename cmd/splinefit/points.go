package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	spline "github.com/tphakala/go-cubic-spline"
)

// readPointsCSV parses a CSV file with one x,y pair per record.
func readPointsCSV(path string) ([]spline.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return parsePoints(f)
}

// parsePoints reads x,y records from r until EOF.
func parsePoints(r io.Reader) ([]spline.Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = pointFields
	reader.TrimLeadingSpace = true

	var points []spline.Point
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read point record: %w", err)
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", record[0], err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", record[1], err)
		}
		points = append(points, spline.Point{X: x, Y: y})
	}
	return points, nil
}

// writePoints emits points as CSV to the given path, or stdout when empty.
func writePoints(path string, points []spline.Point) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	writer := csv.NewWriter(w)
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.X, 'g', outputPrecision, 64),
			strconv.FormatFloat(p.Y, 'g', outputPrecision, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write point record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
