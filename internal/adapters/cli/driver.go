// Package cli is the command-line adapter: it turns program arguments into
// quote use cases and their results into text and exit codes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/go-fortune/internal/domain"
	"github.com/jsamuelsen/go-fortune/internal/platform/logging"
	"github.com/jsamuelsen/go-fortune/internal/platform/telemetry"
)

// Exit codes. Help and write always exit with ExitFailure, even on success.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeRejected = "rejected"
)

// Usage is printed for the help command.
const Usage = `
Available commands:
-help                             This screen right here.
-size  <short,medium,long>        Show short,medium or long quotes only.
-color <red, blue, green, etc>    Add some color. Use after -size command.
-write <quote>                    Write a Quote to the file.
`

const (
	writePrompt    = "Write a quote: "
	writeDone      = "Written quote!"
	writeNothing   = "No data to write."
	unknownCommand = "No such command."
)

// QuoteService is the application surface the driver needs.
type QuoteService interface {
	RandomQuote(ctx context.Context, filter domain.SizeFilter, color domain.ColorChoice) (*domain.Quote, error)
	AddQuote(ctx context.Context, raw string) (string, error)
}

// Streams are the process streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Driver dispatches one invocation.
type Driver struct {
	service QuoteService
	metrics *telemetry.CommandMetrics
	logger  *slog.Logger
}

// DriverConfig configures a Driver. Service is required.
type DriverConfig struct {
	Service QuoteService
	Metrics *telemetry.CommandMetrics
	Logger  *slog.Logger
}

// NewDriver creates a driver.
func NewDriver(cfg DriverConfig) *Driver {
	if cfg.Service == nil {
		panic("cli: DriverConfig.Service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Driver{
		service: cfg.Service,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

// Run parses args, runs the selected command and returns the exit code.
// The quote database is only read for the select command.
func (d *Driver) Run(ctx context.Context, args []string, streams Streams) int {
	start := time.Now()
	inv := Parse(args)

	// Seed ctx so the service and repository log through the same logger.
	ctx = logging.WithAttrs(ctx, d.logger, slog.String("command", inv.Command.String()))
	logger := logging.ForComponent(ctx, d.logger, "cli.Driver")

	logger.DebugContext(ctx, "parsed arguments",
		slog.Int("args", len(args)),
		slog.String("size", inv.Size.String()),
		slog.String("color", inv.Color.String()),
	)

	for _, notice := range inv.Notices {
		fmt.Fprintln(streams.Out, notice)
	}

	if inv.Ignored != "" {
		logger.WarnContext(ctx, "ignoring unrecognized secondary command",
			slog.String("argument", inv.Ignored),
		)
	}

	var (
		code    int
		outcome string
	)

	switch inv.Command {
	case CommandHelp:
		fmt.Fprint(streams.Out, Usage+"\n")
		code, outcome = ExitFailure, outcomeOK
	case CommandWrite:
		code, outcome = d.write(ctx, streams)
	case CommandUnknown:
		fmt.Fprintln(streams.Out, unknownCommand)
		code, outcome = ExitFailure, outcomeRejected
	default:
		code, outcome = d.selectQuote(ctx, inv, streams)
	}

	d.metrics.Record(ctx, inv.Command.String(), outcome, time.Since(start))

	return code
}

func (d *Driver) selectQuote(ctx context.Context, inv Invocation, streams Streams) (int, string) {
	quote, err := d.service.RandomQuote(ctx, inv.Size, inv.Color)
	if err != nil {
		report(streams.Err, err)
		return ExitFailure, outcomeError
	}

	fmt.Fprintln(streams.Out, quote.Rendered)

	return ExitOK, outcomeOK
}

func (d *Driver) write(ctx context.Context, streams Streams) (int, string) {
	fmt.Fprintln(streams.Out, writePrompt)

	line, err := readLine(streams.In)
	if err != nil {
		fmt.Fprintf(streams.Err, "Error reading input: %v\n", err)
		return ExitFailure, outcomeError
	}

	_, err = d.service.AddQuote(ctx, line)

	switch {
	case err == nil:
		fmt.Fprintln(streams.Out, writeDone)
		return ExitFailure, outcomeOK
	case errors.Is(err, domain.ErrNothingToWrite):
		fmt.Fprintln(streams.Out, writeNothing)
		return ExitFailure, outcomeRejected
	default:
		report(streams.Err, err)
		return ExitFailure, outcomeError
	}
}

// readLine reads one line without its terminator. Input ending without a
// newline is returned as is; empty input yields "".
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// report writes the diagnostic for err to w.
func report(w io.Writer, err error) {
	var (
		locErr   *domain.LocateError
		readErr  *domain.ReadError
		writeErr *domain.WriteError
	)

	switch {
	case errors.As(err, &locErr):
		fmt.Fprintf(w, "Error finding file: %v\n", locErr)
	case errors.As(err, &readErr):
		fmt.Fprintf(w, "Error reading file: %v\n", readErr)
	case errors.As(err, &writeErr):
		fmt.Fprintf(w, "Could not write to file: %v\n", writeErr)
	case domain.IsEmptySelection(err):
		fmt.Fprintf(w, "No quote to show: %v\n", err)
	case domain.IsValidation(err):
		fmt.Fprintf(w, "Invalid quote: %v\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
