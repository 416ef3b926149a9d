package csvwriter

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/artie-labs/materializer/lib/vector"
)

// GzipWriter writes tab separated rows into a gzip compressed file.
type GzipWriter struct {
	file   *os.File
	gzip   *gzip.Writer
	writer *csv.Writer
}

func NewGzipWriter(fp string) (*GzipWriter, error) {
	file, err := os.Create(fp)
	if err != nil {
		return nil, err
	}

	gzipWriter := gzip.NewWriter(file)
	csvWriter := csv.NewWriter(gzipWriter)
	csvWriter.Comma = '\t'
	return &GzipWriter{
		file:   file,
		gzip:   gzipWriter,
		writer: csvWriter,
	}, nil
}

func (g *GzipWriter) FileName() string {
	return filepath.Base(g.file.Name())
}

func (g *GzipWriter) Write(row []string) error {
	return g.writer.Write(row)
}

func (g *GzipWriter) Flush() error {
	g.writer.Flush()
	return g.writer.Error()
}

func (g *GzipWriter) Close() error {
	if err := g.Flush(); err != nil {
		// If the writer failed to flush, let's try to close the gzip writer and file.
		_ = g.gzip.Close()
		_ = g.file.Close()
		return err
	}

	if err := g.gzip.Close(); err != nil {
		// If gzip fails, we should at least try to close the file
		_ = g.file.Close()
		return err
	}

	return g.file.Close()
}

// WriteVectors writes a header row made of [names] followed by one row per element.
// Every vector must have the same length.
func (g *GzipWriter) WriteVectors(names []string, vectors []*vector.Vector) error {
	if len(names) != len(vectors) {
		return fmt.Errorf("got %d names for %d vectors", len(names), len(vectors))
	}

	var rows int
	for i, vec := range vectors {
		if i == 0 {
			rows = vec.Len()
		} else if vec.Len() != rows {
			return fmt.Errorf("vector %q has %d rows, expected %d", names[i], vec.Len(), rows)
		}
	}

	if err := g.Write(names); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(vectors))
	for i := 0; i < rows; i++ {
		for j, vec := range vectors {
			row[j] = vec.Format(i)
		}

		if err := g.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	return g.Flush()
}
