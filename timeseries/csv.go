package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	HasHeader bool // Whether the file has a header row (default: true)
	Delimiter rune // Field delimiter (default: ',')
	SkipRows  int  // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a time series from a two-column CSV file: time (or index) in
// the first column, values in the second. The series Name is the file name
// without its extension; header titles become the X and Y labels.
func LoadCSV(path string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	base := filepath.Base(path)
	series.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Extra columns beyond the first two are ignored but counted in the returned
// series' SourceColumns, so callers can warn about unexpected shapes. Rows
// whose value cell is empty, NA, NaN, null, or non-numeric are skipped. A
// source with fewer than two columns, or with no valid data rows, is an error.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("skip row: %w", err)
		}
	}

	series := &Series{}

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		if len(header) < 2 {
			return nil, errors.New("csv must have at least two columns")
		}
		series.SourceColumns = len(header)
		series.XLabel = cleanCell(header[0])
		series.YLabel = cleanCell(header[1])
	}

	var x, values []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row++

		if len(record) < 2 {
			continue
		}
		if series.SourceColumns < len(record) {
			series.SourceColumns = len(record)
		}

		valStr := cleanCell(record[1])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // skip malformed values
		}

		xv, err := strconv.ParseFloat(cleanCell(record[0]), 64)
		if err != nil {
			xv = float64(len(values)) // fall back to the sample index
		}

		x = append(x, xv)
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in csv")
	}

	series.X = x
	series.Values = values
	return series, nil
}

// SaveCSV writes a series back out as a two-column CSV file.
func SaveCSV(series *Series, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	xLabel, yLabel := series.XLabel, series.YLabel
	if xLabel == "" {
		xLabel = "x"
	}
	if yLabel == "" {
		yLabel = "y"
	}
	if err := w.Write([]string{xLabel, yLabel}); err != nil {
		return err
	}

	for i, v := range series.Values {
		xv := float64(i)
		if i < len(series.X) {
			xv = series.X[i]
		}
		record := []string{
			strconv.FormatFloat(xv, 'f', -1, 64),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}
