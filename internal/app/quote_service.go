// Package app contains application services that orchestrate use cases.
//
// The quote pipeline is load → filter → pick → format. Loading and
// appending go through ports.QuoteRepository; filtering and picking are
// done by Selector; formatting by Render.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/go-fortune/internal/domain"
	"github.com/jsamuelsen/go-fortune/internal/platform/logging"
	"github.com/jsamuelsen/go-fortune/internal/ports"
)

const (
	tracerName = "github.com/jsamuelsen/go-fortune/internal/app"
	component  = "app.QuoteService"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	repo     ports.QuoteRepository
	selector *Selector
	executor *Executor
	metrics  ports.MetricsRecorder
	tracer   trace.Tracer
	logger   *slog.Logger
}

// QuoteServiceConfig contains the dependencies of the quote service.
// Repository is required; the rest default when nil.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Random     ports.RandomSource
	Metrics    ports.MetricsRecorder
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteServiceConfig.Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &QuoteService{
		repo:     cfg.Repository,
		selector: NewSelector(cfg.Random),
		executor: NewExecutor(logger),
		metrics:  metrics,
		tracer:   otel.Tracer(tracerName),
		logger:   logger,
	}
}

// RandomQuote loads the database and returns one record matching filter,
// rendered with color.
func (s *QuoteService) RandomQuote(
	ctx context.Context,
	filter domain.SizeFilter,
	color domain.ColorChoice,
) (*domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "fortune.select", trace.WithAttributes(
		attribute.String("fortune.size", filter.String()),
		attribute.String("fortune.color", color.String()),
	))
	defer span.End()

	ctx = s.withTraceID(ctx, span)

	logger := logging.ForComponent(ctx, s.logger, component)
	logger.DebugContext(ctx, "loading quote database")

	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	s.metrics.DatabaseRecords(len(records))
	span.SetAttributes(attribute.Int("fortune.records", len(records)))

	text, err := s.selector.Select(records, filter)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	quote := &domain.Quote{
		Text:     text,
		Rendered: Render(text, color),
		Size:     domain.Classify(text),
		Color:    color,
	}

	s.metrics.QuoteServed(filter)

	logger.InfoContext(ctx, "selected quote",
		slog.Int("records", len(records)),
		slog.String("filter", filter.String()),
		slog.String("size", quote.Size.String()),
		slog.Int("length", len(text)),
	)

	return quote, nil
}

// AddQuote trims raw and appends it as a new record, then reads the
// database back to confirm the record landed last. It returns the text
// that was stored. Blank input fails with domain.ErrNothingToWrite and
// leaves the database untouched.
func (s *QuoteService) AddQuote(ctx context.Context, raw string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "fortune.append")
	defer span.End()

	ctx = s.withTraceID(ctx, span)

	op := Operation[string, string]{
		Name: "append_quote",
		Validate: func(_ context.Context, text string) error {
			if text == "" {
				return domain.ErrNothingToWrite
			}

			if strings.Contains(text, domain.Separator) {
				return domain.NewValidationErrorWithValue("quote", "contains the record separator", text)
			}

			return nil
		},
		Perform: func(ctx context.Context, text string) error {
			return s.repo.Append(ctx, text)
		},
		Verify: func(ctx context.Context, text string) (string, error) {
			records, err := s.repo.Load(ctx)
			if err != nil {
				return "", err
			}

			if len(records) == 0 || records[len(records)-1] != text {
				return "", fmt.Errorf("appended quote is not the last of %d records", len(records))
			}

			s.metrics.DatabaseRecords(len(records))

			return text, nil
		},
	}

	stored, err := Execute(ctx, s.executor, op, strings.TrimSpace(raw))
	if err != nil {
		return "", s.fail(ctx, span, err)
	}

	s.metrics.QuoteAppended()
	span.SetAttributes(attribute.Int("fortune.length", len(stored)))

	return stored, nil
}

// fail records err on the span and in metrics and returns it unchanged.
func (s *QuoteService) fail(ctx context.Context, span trace.Span, err error) error {
	kind := ErrorKind(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
	s.metrics.Failure(kind)

	logging.ForComponent(ctx, s.logger, component).DebugContext(ctx, "use case failed",
		slog.String("kind", kind),
		slog.Any("error", err),
	)

	return err
}

// withTraceID tags the context logger with the span's trace id when the
// span is recording to a real provider.
func (s *QuoteService) withTraceID(ctx context.Context, span trace.Span) context.Context {
	sc := span.SpanContext()
	if !sc.HasTraceID() {
		return ctx
	}

	return logging.WithAttrs(ctx, s.logger, slog.String("trace_id", sc.TraceID().String()))
}

// ErrorKind classifies err into a short label for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case domain.IsLocate(err):
		return "locate"
	case domain.IsRead(err):
		return "read"
	case domain.IsEmptySelection(err):
		return "empty_selection"
	case domain.IsWrite(err):
		return "write"
	case domain.IsValidation(err):
		return "validation"
	}

	if step, ok := GetExecutionStep(err); ok && step == StepVerify {
		return "verify"
	}

	if errors.Is(err, context.Canceled) {
		return "canceled"
	}

	return "internal"
}

type nopMetrics struct{}

func (nopMetrics) QuoteServed(domain.SizeFilter) {}
func (nopMetrics) QuoteAppended()                {}
func (nopMetrics) DatabaseRecords(int)           {}
func (nopMetrics) Failure(string)                {}
