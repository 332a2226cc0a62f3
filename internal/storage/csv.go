package storage

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nrvrek/smarteyes-scraper/internal/models"
)

// CSVWriter serializes the measurement table to a delimited file with a
// header row and no row index column. Any existing file at the path is
// overwritten.
type CSVWriter struct {
	path   string
	logger *slog.Logger
}

func NewCSVWriter(path string, logger *slog.Logger) *CSVWriter {
	return &CSVWriter{
		path:   path,
		logger: logger.With("component", "csv_writer"),
	}
}

// Write creates the output directory if missing and writes one row per
// record. Absent measurements become empty cells. The file is written to a
// temp path first and renamed into place.
func (w *CSVWriter) Write(rows []*models.Measurements) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmpPath := w.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", tmpPath, err)
	}

	cw := csv.NewWriter(f)

	header := append([]string{"url"}, models.Fields()...)
	if err := cw.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.URL)
		for _, field := range models.Fields() {
			if mm, ok := row.Get(field); ok {
				record = append(record, strconv.Itoa(mm))
			} else {
				record = append(record, "")
			}
		}

		if err := cw.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row for %s: %w", row.URL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	w.logger.Info("wrote output table", "path", w.path, "rows", len(rows))
	return nil
}
