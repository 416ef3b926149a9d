package job

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/uuid"

	"github.com/artie-labs/materializer/lib/awslib"
	"github.com/artie-labs/materializer/lib/config"
	"github.com/artie-labs/materializer/lib/conversion"
	"github.com/artie-labs/materializer/lib/csvwriter"
	"github.com/artie-labs/materializer/lib/parquetutil"
	"github.com/artie-labs/materializer/lib/storage"
	"github.com/artie-labs/materializer/lib/telemetry/metrics"
	"github.com/artie-labs/materializer/lib/vector"
)

// Job reads the configured parquet file, materializes its columns and writes them out as a gzipped TSV.
type Job struct {
	id          uuid.UUID
	cfg         config.Config
	mem         memory.Allocator
	inputStore  storage.Store
	outputStore storage.Store
}

func newS3Store(ctx context.Context, awsSettings *config.AWS) (storage.Store, error) {
	awsCfg, err := awslib.NewConfig(ctx, awsSettings)
	if err != nil {
		return nil, err
	}

	return awslib.NewS3Client(awsCfg), nil
}

func NewJob(ctx context.Context, cfg config.Config) (*Job, error) {
	job := &Job{
		id:  uuid.New(),
		cfg: cfg,
		mem: memory.NewGoAllocator(),
	}

	if cfg.Input.IsS3() {
		store, err := newS3Store(ctx, cfg.Input.AWS)
		if err != nil {
			return nil, fmt.Errorf("failed to create input s3 client: %w", err)
		}
		job.inputStore = store
	}

	if cfg.Output.IsS3() {
		store, err := newS3Store(ctx, cfg.Output.AWS)
		if err != nil {
			return nil, fmt.Errorf("failed to create output s3 client: %w", err)
		}
		job.outputStore = store
	}

	return job, nil
}

func (j *Job) ID() uuid.UUID {
	return j.id
}

func (j *Job) specs() ([]conversion.ColumnSpec, error) {
	specs := make([]conversion.ColumnSpec, 0, len(j.cfg.Columns))
	for _, column := range j.cfg.Columns {
		ptype, err := column.PType()
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column.Name, err)
		}

		specs = append(specs, conversion.ColumnSpec{Name: column.Name, PType: ptype})
	}

	return specs, nil
}

func (j *Job) tempDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", fmt.Sprintf("materializer-%s-", j.id))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.Warn("Failed to remove temp dir", slog.String("dir", dir), slog.Any("err", err))
		}
	}, nil
}

// localInput returns a local path for the input, downloading it first if it lives in S3.
// The returned func removes anything that was downloaded.
func (j *Job) localInput(ctx context.Context) (string, func(), error) {
	if !j.cfg.Input.IsS3() {
		return j.cfg.Input.Path, func() {}, nil
	}

	if j.inputStore == nil {
		return "", nil, fmt.Errorf("no s3 client configured for %q", j.cfg.Input.Path)
	}

	dir, cleanup, err := j.tempDir()
	if err != nil {
		return "", nil, err
	}

	filePath, err := j.inputStore.DownloadToDir(ctx, j.cfg.Input.Path, dir)
	if err != nil {
		cleanup()
		return "", nil, err
	}

	return filePath, cleanup, nil
}

// localOutput returns the local path the output is written to. When the output lives in S3 that is a
// temp file, and the returned func uploads it before removing it.
func (j *Job) localOutput() (string, func(ctx context.Context) error, func(), error) {
	if !j.cfg.Output.IsS3() {
		return j.cfg.Output.Path, func(context.Context) error { return nil }, func() {}, nil
	}

	if j.outputStore == nil {
		return "", nil, nil, fmt.Errorf("no s3 client configured for %q", j.cfg.Output.Path)
	}

	dir, cleanup, err := j.tempDir()
	if err != nil {
		return "", nil, nil, err
	}

	filePath := filepath.Join(dir, path.Base(j.cfg.Output.Path))
	publish := func(ctx context.Context) error {
		return j.outputStore.UploadFile(ctx, filePath, j.cfg.Output.Path)
	}

	return filePath, publish, cleanup, nil
}

func (j *Job) Run(ctx context.Context) error {
	start := time.Now()
	tags := map[string]string{"what": "success"}
	err := j.run(ctx)
	if err != nil {
		tags["what"] = "failed"
		metrics.FromContext(ctx).Incr(metrics.JobError, tags)
	}

	metrics.FromContext(ctx).Timing(metrics.JobDuration, time.Since(start), tags)
	return err
}

func (j *Job) run(ctx context.Context) error {
	logger := slog.With(slog.String("jobID", j.id.String()))
	specs, err := j.specs()
	if err != nil {
		return err
	}

	inputPath, cleanup, err := j.localInput(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch input: %w", err)
	}
	defer cleanup()

	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}

	table, err := parquetutil.ReadTable(ctx, inputPath, j.mem, parquetutil.ReadArgs{Columns: names, Parallel: true})
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", j.cfg.Input.Path, err)
	}
	defer table.Release()

	logger.Info("Loaded input", slog.String("input", j.cfg.Input.Path), slog.Int64("rows", table.NumRows()))
	results, err := conversion.MaterializeTable(ctx, table, specs, conversion.Options{Parallelism: j.cfg.Parallelism})
	if err != nil {
		return err
	}

	vectors := make([]*vector.Vector, len(results))
	for i, result := range results {
		vectors[i] = result.Vector
	}

	outputPath, publish, cleanupOutput, err := j.localOutput()
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer cleanupOutput()

	writer, err := csvwriter.NewGzipWriter(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err = writer.WriteVectors(names, vectors); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	if err = publish(ctx); err != nil {
		return fmt.Errorf("failed to upload output: %w", err)
	}

	logger.Info("Wrote output",
		slog.String("output", j.cfg.Output.Path),
		slog.String("file", writer.FileName()),
		slog.Int("columns", len(vectors)),
	)
	return nil
}
