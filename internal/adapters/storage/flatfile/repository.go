// Package flatfile stores quotes in a plain text file, one record per
// block, blocks separated by a line holding a single "%".
package flatfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen/go-fortune/internal/domain"
	"github.com/jsamuelsen/go-fortune/internal/platform/logging"
	"github.com/jsamuelsen/go-fortune/internal/ports"
)

const (
	component = "flatfile.Repository"

	// unterminatedSeparator is a separator at end of file without its final newline.
	unterminatedSeparator = "\n%"
)

var errNotText = errors.New("content is not valid UTF-8")

var _ ports.QuoteRepository = (*Repository)(nil)

// Repository implements ports.QuoteRepository over a flat file.
// There is no locking: concurrent appends may interleave.
type Repository struct {
	locator *Locator
	logger  *slog.Logger
}

// RepositoryConfig configures a Repository.
type RepositoryConfig struct {
	Locator *Locator
	Logger  *slog.Logger
}

// NewRepository creates a flat file repository.
func NewRepository(cfg RepositoryConfig) *Repository {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Repository{
		locator: cfg.Locator,
		logger:  logger,
	}
}

// Load reads the whole database and splits it into records.
func (r *Repository) Load(ctx context.Context) ([]string, error) {
	path, err := r.locator.Locate()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewReadError(path, err)
	}

	if !utf8.Valid(data) {
		return nil, domain.NewReadError(path, errNotText)
	}

	records := Split(string(data))

	logging.ForComponent(ctx, r.logger, component).DebugContext(ctx, "loaded quote database",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// Append adds text as the last record, terminated by the separator.
// When the file ends in an unterminated record, the separator is written
// first so the existing last record keeps its exact content.
func (r *Repository) Append(ctx context.Context, text string) error {
	path, err := r.locator.Locate()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return domain.NewWriteError(path, err)
	}

	prefix, err := appendPrefix(f)
	if err != nil {
		_ = f.Close()
		return domain.NewWriteError(path, err)
	}

	if _, err := io.WriteString(f, prefix+text+domain.Separator); err != nil {
		_ = f.Close()
		return domain.NewWriteError(path, err)
	}

	if err := f.Close(); err != nil {
		return domain.NewWriteError(path, err)
	}

	logging.ForComponent(ctx, r.logger, component).DebugContext(ctx, "appended quote",
		slog.String("path", path),
		slog.Int("length", len(text)),
	)

	return nil
}

// Split parses database content into records. An empty database has no
// records; a trailing separator does not produce an empty final record.
func Split(content string) []string {
	if content == "" {
		return []string{}
	}

	// A final "\n%" with no newline after it still closes the last record,
	// so "A\n%" loads as "A" rather than "A\n%". Hand-edited files often
	// lose the newline at end of file.
	if strings.HasSuffix(content, unterminatedSeparator) {
		content += "\n"
	}

	records := strings.Split(content, domain.Separator)
	if records[len(records)-1] == "" {
		records = records[:len(records)-1]
	}

	return records
}

// appendPrefix inspects the end of f and returns what must precede a new
// record so that it starts a fresh block.
func appendPrefix(f *os.File) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}

	size := info.Size()
	if size == 0 {
		return "", nil
	}

	n := min(size, int64(len(domain.Separator)))
	tail := make([]byte, n)

	if _, err := f.ReadAt(tail, size-n); err != nil {
		return "", fmt.Errorf("reading tail: %w", err)
	}

	return prefixFor(string(tail)), nil
}

func prefixFor(tail string) string {
	switch {
	case tail == "", strings.HasSuffix(tail, domain.Separator):
		return ""
	case strings.HasSuffix(tail, unterminatedSeparator):
		return "\n"
	default:
		return domain.Separator
	}
}
