package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV encodes the dataset as CSV with an "x,y" header row.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}

	for i := range d.X {
		rec := []string{
			strconv.FormatFloat(d.X[i], 'g', -1, 64),
			strconv.FormatFloat(d.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV decodes a dataset written by WriteCSV.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv header: %w", err)
	}
	if header[0] != "x" || header[1] != "y" {
		return nil, fmt.Errorf("dataset: unexpected csv header %v", header)
	}

	var x, y []float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read csv record: %w", err)
		}

		xv, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: parse x %q: %w", rec[0], err)
		}
		yv, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: parse y %q: %w", rec[1], err)
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	return &Dataset{X: x, Y: y}, nil
}
