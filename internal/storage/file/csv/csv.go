package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
)

// Header is the fixed column layout of the output file.
var Header = []string{"TP", "FN", "FP", "TN", "Accuracy", "Sensitivity", "Specificity", "F1", "Precision"}

// Unset is the serialized form of an absent optional target.
const Unset = "-1"

// Sink streams records into a csv file.
// The file is truncated on creation, there is no append mode and a failed
// write mid-stream leaves an incomplete file behind.
type Sink struct {
	file   *os.File
	writer *csv.Writer
}

// NewSink creates the file at the given path and writes the header row.
func NewSink(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create file '%s': %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not write header to '%s': %w", path, err)
	}

	return &Sink{
		file:   f,
		writer: w,
	}, nil
}

func (s *Sink) Write(record model.Record) error {
	row := []string{
		strconv.Itoa(record.Matrix.TP),
		strconv.Itoa(record.Matrix.FN),
		strconv.Itoa(record.Matrix.FP),
		strconv.Itoa(record.Matrix.TN),
		formatValue(record.Accuracy),
		formatTarget(record.Targets.Sensitivity),
		formatTarget(record.Targets.Specificity),
		formatTarget(record.Targets.F1),
		formatTarget(record.Targets.Precision),
	}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("could not write record '%+v': %w", record, err)
	}
	return nil
}

func (s *Sink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		_ = s.file.Close()
		return fmt.Errorf("could not flush '%s': %w", s.file.Name(), err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("could not close '%s': %w", s.file.Name(), err)
	}
	return nil
}

func formatTarget(t model.Target) string {
	if v, ok := t.Value(); ok {
		return formatValue(v)
	}
	return Unset
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
