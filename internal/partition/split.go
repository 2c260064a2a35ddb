package partition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chancharikmitra/vqascore/internal/workitem"
)

// ErrInvalidCount is returned when the partition count is not positive.
var ErrInvalidCount = errors.New("partition count must be positive")

// Logger receives progress and skip notices from split and merge.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// ChunkSize returns ceil(total / count).
func ChunkSize(total, count int) int {
	if count <= 0 || total <= 0 {
		return 0
	}
	return (total + count - 1) / count
}

// Bounds returns the half-open range [start, end) of partition index for total items.
// Partitions past the end of the input are empty.
func Bounds(total, count, index int) (int, int) {
	size := ChunkSize(total, count)
	start := min(index*size, total)
	end := min((index+1)*size, total)
	return start, end
}

// ChunkFileName returns the file name used for partition index.
func ChunkFileName(index int) string {
	return fmt.Sprintf("chunk_%d.json", index)
}

// Split reads the JSON array at inputPath and writes one chunk file per non-empty
// partition into outputDir. It returns the written paths in partition order.
func Split(inputPath string, count int, outputDir string, logger Logger) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	items, err := workitem.LoadArray(inputPath)
	if err != nil {
		return nil, err
	}
	return SplitItems(items, count, outputDir, logger)
}

// SplitItems partitions items into count contiguous chunks and writes the non-empty
// ones to outputDir, creating the directory when needed.
func SplitItems(items []workitem.Item, count int, outputDir string, logger Logger) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	logger = orDiscard(logger)
	total := len(items)
	logger.Infof("Total items: %d", total)
	logger.Infof("Chunk size: %d", ChunkSize(total, count))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	written := make([]string, 0, count)
	for index := 0; index < count; index++ {
		start, end := Bounds(total, count, index)
		if start >= end {
			logger.Infof("GPU %d: 0 items (skipped)", index)
			continue
		}
		name := ChunkFileName(index)
		path := filepath.Join(outputDir, name)
		if err := workitem.WriteJSON(path, items[start:end]); err != nil {
			return written, err
		}
		written = append(written, path)
		logger.Infof("GPU %d: %d items -> %s", index, end-start, name)
	}
	return written, nil
}

type discardLogger struct{}

func (discardLogger) Infof(string, ...any) {}
func (discardLogger) Warnf(string, ...any) {}

func orDiscard(logger Logger) Logger {
	if logger == nil {
		return discardLogger{}
	}
	return logger
}
