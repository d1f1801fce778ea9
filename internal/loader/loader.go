// Package loader reads survey datasets from disk into in-memory tables.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/go-gota/gota/dataframe"
	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
)

// ErrUnsupportedFormat is returned for inputs whose format cannot be determined.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrEmptyCSV is returned for a CSV stream without a header row.
var ErrEmptyCSV = errors.New("CSV has no header row")

// NaNValues are the CSV cells read as missing.
var NaNValues = []string{"", "NA", "N/A", "NaN", "nan", "<nil>", "null"}

// Dataset is a loaded table together with where it came from.
type Dataset struct {
	Source string
	Table  *dataset.Frame
}

// FileLoader loads datasets from the local filesystem.
type FileLoader struct{}

var _ contract.DatasetLoader = FileLoader{}

// NewFileLoader creates a loader for local files.
func NewFileLoader() FileLoader {
	return FileLoader{}
}

// Load implements contract.DatasetLoader.
func (FileLoader) Load(ctx context.Context, path string, format schema.InputFormat) (dataset.Table, error) {
	frame, err := Load(ctx, path, format)
	if err != nil {
		return nil, err
	}
	return frame, nil
}

// DetectFormat resolves the input format of path. An explicit format wins
// over the file extension.
func DetectFormat(path string, format schema.InputFormat) (schema.InputFormat, error) {
	if format != schema.AutoInput {
		if _, ok := schema.ValidInputFormats[format]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
		return format, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return schema.CSVInput, nil
	case ".parquet", ".pq":
		return schema.ParquetInput, nil
	case ".arrow", ".feather", ".ipc":
		return schema.ArrowInput, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format of %s", ErrUnsupportedFormat, path)
	}
}

// Load reads one dataset from path.
func Load(ctx context.Context, path string, format schema.InputFormat) (*dataset.Frame, error) {
	resolved, err := DetectFormat(path, format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var frame *dataset.Frame
	switch resolved {
	case schema.CSVInput:
		frame, err = ReadCSV(f)
	case schema.ParquetInput:
		frame, err = ReadParquet(ctx, f)
	case schema.ArrowInput:
		frame, err = ReadArrow(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return frame, nil
}

// LoadAll reads every path in order and stops at the first failure.
func LoadAll(ctx context.Context, paths []string, format schema.InputFormat) ([]Dataset, error) {
	out := make([]Dataset, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame, err := Load(ctx, p, format)
		if err != nil {
			return nil, err
		}
		out = append(out, Dataset{Source: p, Table: frame})
	}
	return out, nil
}

// ReadCSV parses a CSV stream with a header row. Column types are inferred.
// A header without data rows yields a zero-row frame of float columns.
func ReadCSV(r io.Reader) (*dataset.Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	switch len(records) {
	case 0:
		return nil, ErrEmptyCSV
	case 1:
		return headerOnlyFrame(records[0])
	}
	df := dataframe.LoadRecords(records, dataframe.NaNValues(NaNValues))
	return dataset.FromDataFrame(df)
}

func headerOnlyFrame(header []string) (*dataset.Frame, error) {
	columns := make([]*dataset.Series, len(header))
	for i, name := range header {
		columns[i] = dataset.Floats(name)
	}
	return dataset.NewFrame(columns...)
}

// ReadParquet reads a whole parquet file through Arrow.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker) (*dataset.Frame, error) {
	pf, err := file.NewParquetReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer func() { _ = pf.Close() }()

	mem := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}
	table, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer table.Release()
	return dataset.FromTable(table)
}

// ReadArrow reads an Arrow IPC file.
func ReadArrow(r ipc.ReadAtSeeker) (*dataset.Frame, error) {
	mem := memory.NewGoAllocator()
	reader, err := ipc.NewFileReader(r, ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow IPC reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	records := make([]arrow.Record, 0, reader.NumRecords())
	defer func() {
		for _, rec := range records {
			rec.Release()
		}
	}()
	for i := range reader.NumRecords() {
		rec, err := reader.RecordAt(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read record batch %d: %w", i, err)
		}
		records = append(records, rec)
	}
	table := array.NewTableFromRecords(reader.Schema(), records)
	defer table.Release()
	return dataset.FromTable(table)
}
