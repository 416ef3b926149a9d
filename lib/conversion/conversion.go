package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"golang.org/x/sync/errgroup"

	"github.com/artie-labs/materializer/lib/materialize"
	"github.com/artie-labs/materializer/lib/telemetry/metrics"
	"github.com/artie-labs/materializer/lib/vector"
)

type Options struct {
	// Parallelism caps how many chunks are materialized at once, anything below 1 means sequential.
	Parallelism int
}

type ColumnSpec struct {
	Name  string
	PType materialize.PTypeView
}

type Result struct {
	Name       string
	Vector     *vector.Vector
	LossyCount int
}

// chunkConverters lays the chunks out back to back in [vec], every converter owns a disjoint slice.
func chunkConverters(column *arrow.Chunked, ptype materialize.PTypeView, vec *vector.Vector) []*materialize.Converter {
	converters := make([]*materialize.Converter, 0, len(column.Chunks()))
	var offset int
	for _, chunk := range column.Chunks() {
		converters = append(converters, materialize.NewConverter(chunk, ptype, vec, offset))
		offset += chunk.Len()
	}

	return converters
}

// MaterializeColumn allocates a vector for the whole column and fills it chunk by chunk.
func MaterializeColumn(ctx context.Context, column *arrow.Chunked, ptype materialize.PTypeView, opts Options) (*vector.Vector, int, error) {
	vec, err := vector.New(ptype.Kind, column.Len())
	if err != nil {
		return nil, 0, materialize.NewUnsupportedTypeError("cannot materialize %s into %s: %v", column.DataType(), ptype, err)
	}

	converters := chunkConverters(column, ptype, vec)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(opts.Parallelism, 1))
	for i, converter := range converters {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			if err := materialize.Materialize(converter); err != nil {
				return fmt.Errorf("failed to materialize chunk %d: %w", i, err)
			}

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return nil, 0, err
	}

	var lossyCount int
	for _, converter := range converters {
		lossyCount += converter.LossyCount
	}

	return vec, lossyCount, nil
}

func findColumn(table arrow.Table, name string) (*arrow.Chunked, error) {
	indices := table.Schema().FieldIndices(name)
	switch len(indices) {
	case 0:
		return nil, fmt.Errorf("column %q does not exist", name)
	case 1:
		return table.Column(indices[0]).Data(), nil
	default:
		return nil, fmt.Errorf("column %q is ambiguous, found %d matches", name, len(indices))
	}
}

// MaterializeTable materializes every column in [specs], in order.
func MaterializeTable(ctx context.Context, table arrow.Table, specs []ColumnSpec, opts Options) ([]Result, error) {
	metricsClient := metrics.FromContext(ctx)
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		tags := map[string]string{
			"column": spec.Name,
			"ptype":  spec.PType.String(),
		}

		column, err := findColumn(table, spec.Name)
		if err != nil {
			metricsClient.Incr(metrics.ColumnError, tags)
			return nil, err
		}

		tags["source"] = materialize.NewSchemaView(column.DataType()).String()
		start := time.Now()
		vec, lossyCount, err := MaterializeColumn(ctx, column, spec.PType, opts)
		if err != nil {
			metricsClient.Incr(metrics.ColumnError, tags)
			return nil, fmt.Errorf("failed to materialize column %q: %w", spec.Name, err)
		}

		metricsClient.Timing(metrics.ColumnDuration, time.Since(start), tags)
		metricsClient.Count(metrics.ColumnRows, int64(vec.Len()), tags)
		if lossyCount > 0 {
			metricsClient.Count(metrics.ColumnLossy, int64(lossyCount), tags)
			slog.Warn("Values could not be represented and were written as nulls",
				slog.String("column", spec.Name),
				slog.String("ptype", spec.PType.String()),
				slog.Int("count", lossyCount),
			)
		}

		slog.Debug("Materialized column",
			slog.String("column", spec.Name),
			slog.String("source", tags["source"]),
			slog.String("ptype", spec.PType.String()),
			slog.Int("rows", vec.Len()),
			slog.Int("chunks", len(column.Chunks())),
		)

		results = append(results, Result{Name: spec.Name, Vector: vec, LossyCount: lossyCount})
	}

	return results, nil
}
