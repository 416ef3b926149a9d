package parquetutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
)

const (
	// durationUnitKey is set on INT64 fields that hold DURATION values.
	durationUnitKey = "materializer:duration_unit"
	arrowSchemaKey  = "ARROW:schema"
)

var timeUnits = []arrow.TimeUnit{arrow.Second, arrow.Millisecond, arrow.Microsecond, arrow.Nanosecond}

// retypeChunks reinterprets every chunk as [dataType], both types must share the same physical layout.
func retypeChunks(chunked *arrow.Chunked, dataType arrow.DataType) *arrow.Chunked {
	chunks := make([]arrow.Array, len(chunked.Chunks()))
	for i, chunk := range chunked.Chunks() {
		data := array.NewData(dataType, chunk.Len(), chunk.Data().Buffers(), nil, chunk.NullN(), chunk.Data().Offset())
		chunks[i] = array.MakeFromData(data)
		data.Release()
	}

	defer func() {
		for _, chunk := range chunks {
			chunk.Release()
		}
	}()

	return arrow.NewChunked(dataType, chunks)
}

// replaceColumns builds a new table where the columns returned by [fn] replace the original ones.
// [fn] returns nil for columns that are kept as is. It returns false when nothing was replaced.
func replaceColumns(table arrow.Table, fn func(field arrow.Field, column *arrow.Chunked) (arrow.Field, *arrow.Chunked)) (arrow.Table, bool) {
	schema := table.Schema()
	fields := make([]arrow.Field, schema.NumFields())
	columns := make([]arrow.Column, schema.NumFields())
	var replaced []*arrow.Column
	defer func() {
		for _, column := range replaced {
			column.Release()
		}
	}()

	for i, field := range schema.Fields() {
		newField, newData := fn(field, table.Column(i).Data())
		if newData == nil {
			fields[i] = field
			columns[i] = *table.Column(i)
			continue
		}

		column := arrow.NewColumn(newField, newData)
		newData.Release()
		replaced = append(replaced, column)
		fields[i] = newField
		columns[i] = *column
	}

	if len(replaced) == 0 {
		return table, false
	}

	metadata := schema.Metadata()
	return array.NewTable(arrow.NewSchema(fields, &metadata), columns, table.NumRows()), true
}

// encodeDurations swaps DURATION columns for their INT64 storage since parquet has no duration type.
// The unit is kept in the field metadata. The returned table must be released.
func encodeDurations(table arrow.Table) arrow.Table {
	encoded, ok := replaceColumns(table, func(field arrow.Field, column *arrow.Chunked) (arrow.Field, *arrow.Chunked) {
		durationType, isDuration := field.Type.(*arrow.DurationType)
		if !isDuration {
			return field, nil
		}

		keys := append(slices.Clone(field.Metadata.Keys()), durationUnitKey)
		values := append(slices.Clone(field.Metadata.Values()), durationType.Unit.String())
		field.Type = arrow.PrimitiveTypes.Int64
		field.Metadata = arrow.NewMetadata(keys, values)
		return field, retypeChunks(column, arrow.PrimitiveTypes.Int64)
	})

	if !ok {
		table.Retain()
	}

	return encoded
}

func unitFromMetadata(metadata arrow.Metadata) (arrow.TimeUnit, bool) {
	index := metadata.FindKey(durationUnitKey)
	if index < 0 {
		return 0, false
	}

	for _, unit := range timeUnits {
		if unit.String() == metadata.Values()[index] {
			return unit, true
		}
	}

	return 0, false
}

// durationUnit returns the unit of an INT64 field that was a DURATION before it was written to parquet.
func durationUnit(field arrow.Field, origin *arrow.Schema) (arrow.TimeUnit, bool) {
	if field.Type.ID() != arrow.INT64 {
		return 0, false
	}

	if unit, ok := unitFromMetadata(field.Metadata); ok {
		return unit, true
	}

	if origin == nil {
		return 0, false
	}

	originField, ok := origin.FieldsByName(field.Name)
	if !ok || len(originField) != 1 {
		return 0, false
	}

	if durationType, isDuration := originField[0].Type.(*arrow.DurationType); isDuration {
		return durationType.Unit, true
	}

	return unitFromMetadata(originField[0].Metadata)
}

// decodeDurations turns INT64 columns back into DURATION columns, using either the field metadata
// written by [WriteTable] or the Arrow schema other writers store in the file.
// It takes ownership of [table].
func decodeDurations(table arrow.Table, origin *arrow.Schema) arrow.Table {
	decoded, ok := replaceColumns(table, func(field arrow.Field, column *arrow.Chunked) (arrow.Field, *arrow.Chunked) {
		unit, isDuration := durationUnit(field, origin)
		if !isDuration {
			return field, nil
		}

		durationType := &arrow.DurationType{Unit: unit}
		field.Type = durationType
		return field, retypeChunks(column, durationType)
	})

	if ok {
		table.Release()
	}

	return decoded
}

// originSchema returns the Arrow schema stored in the parquet metadata, nil if there is none.
func originSchema(fileReader *file.Reader, mem memory.Allocator) (*arrow.Schema, error) {
	serialized := fileReader.MetaData().KeyValueMetadata().FindValue(arrowSchemaKey)
	if serialized == nil {
		return nil, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(*serialized)
	if err != nil {
		if decoded, err = base64.RawStdEncoding.DecodeString(*serialized); err != nil {
			return nil, fmt.Errorf("failed to decode stored arrow schema: %w", err)
		}
	}

	reader, err := ipc.NewReader(bytes.NewReader(decoded), ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("failed to read stored arrow schema: %w", err)
	}
	defer reader.Release()

	return reader.Schema(), nil
}
