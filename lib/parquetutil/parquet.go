package parquetutil

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

const defaultRowGroupSize = 64 * 1024

type ReadArgs struct {
	// Columns restricts the read to these top-level columns, all columns are read when empty.
	Columns []string
	// Parallel decodes columns concurrently.
	Parallel bool
}

// ReadTable loads a parquet file into an Arrow table, each row group becomes one chunk.
// INT64 columns that were written from DURATION columns come back as DURATION.
func ReadTable(ctx context.Context, filePath string, mem memory.Allocator, args ReadArgs) (arrow.Table, error) {
	osFile, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer osFile.Close()

	return readTable(ctx, osFile, mem, args)
}

func readTable(ctx context.Context, reader parquet.ReaderAtSeeker, mem memory.Allocator, args ReadArgs) (arrow.Table, error) {
	fileReader, err := file.NewParquetReader(reader, file.WithReadProps(parquet.NewReaderProperties(mem)))
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer fileReader.Close()

	arrowReader, err := pqarrow.NewFileReader(fileReader, pqarrow.ArrowReadProperties{Parallel: args.Parallel}, mem)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	origin, err := originSchema(fileReader, mem)
	if err != nil {
		return nil, err
	}

	if len(args.Columns) == 0 {
		table, err := arrowReader.ReadTable(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		return decodeDurations(table, origin), nil
	}

	indices, err := columnIndices(arrowReader, args.Columns)
	if err != nil {
		return nil, err
	}

	rowGroups := make([]int, fileReader.NumRowGroups())
	for i := range rowGroups {
		rowGroups[i] = i
	}

	table, err := arrowReader.ReadRowGroups(ctx, indices, rowGroups)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	return decodeDurations(table, origin), nil
}

func columnIndices(arrowReader *pqarrow.FileReader, columns []string) ([]int, error) {
	schema, err := arrowReader.Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to read arrow schema: %w", err)
	}

	manifest := arrowReader.Manifest
	var indices []int
	for _, column := range columns {
		fieldIndices := schema.FieldIndices(column)
		if len(fieldIndices) == 0 {
			return nil, fmt.Errorf("column %q does not exist", column)
		}

		for _, fieldIndex := range fieldIndices {
			indices = append(indices, leafIndices(manifest.Fields[fieldIndex])...)
		}
	}

	return indices, nil
}

func leafIndices(field pqarrow.SchemaField) []int {
	if field.IsLeaf() {
		return []int{field.ColIndex}
	}

	var indices []int
	for _, child := range field.Children {
		indices = append(indices, leafIndices(child)...)
	}

	return indices
}

// WriteTable writes [table] as a gzip compressed parquet file. The Arrow schema is stored alongside.
// DURATION columns are written as INT64 and restored by [ReadTable].
func WriteTable(table arrow.Table, writer io.Writer, mem memory.Allocator) error {
	table = encodeDurations(table)
	defer table.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Gzip),
		parquet.WithAllocator(mem),
	)

	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema(), pqarrow.WithAllocator(mem))
	if err := pqarrow.WriteTable(table, writer, defaultRowGroupSize, props, arrowProps); err != nil {
		return fmt.Errorf("failed to write parquet table: %w", err)
	}

	return nil
}
