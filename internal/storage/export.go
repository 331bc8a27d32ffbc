package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/gravsim/internal/driver"
)

// WriteFramesCSV writes a "time,c0,c1,..." header followed by one row per
// frame. Writing no frames produces an empty file.
func WriteFramesCSV(w io.Writer, frames []driver.Frame) error {
	cw := csv.NewWriter(w)

	if len(frames) == 0 {
		cw.Flush()
		return cw.Error()
	}

	header := []string{"time"}
	for i := range frames[0].Data {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := make([]string, 0, len(f.Data)+1)
		row = append(row, strconv.FormatFloat(f.Time, 'f', 6, 64))
		for _, v := range f.Data {
			row = append(row, strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRowsCSV writes previously loaded frames back out as CSV.
func WriteRowsCSV(w io.Writer, frames [][]float64, times []float64) error {
	cw := csv.NewWriter(w)

	if len(frames) > 0 {
		header := []string{"time"}
		for i := range frames[0] {
			header = append(header, fmt.Sprintf("c%d", i))
		}
		if err := cw.Write(header); err != nil {
			return err
		}
	}

	for i := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range frames[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
