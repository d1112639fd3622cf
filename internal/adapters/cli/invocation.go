package cli

import (
	"strings"

	"github.com/jsamuelsen/go-fortune/internal/domain"
)

// Command is the action selected by the primary argument.
type Command int

const (
	// CommandSelect prints a random quote. It is the default with no arguments.
	CommandSelect Command = iota

	// CommandHelp prints usage.
	CommandHelp

	// CommandWrite prompts for a quote and appends it.
	CommandWrite

	// CommandUnknown is any unrecognized primary argument.
	CommandUnknown
)

// String returns the command name used in logs and metrics.
func (c Command) String() string {
	switch c {
	case CommandSelect:
		return "select"
	case CommandHelp:
		return "help"
	case CommandWrite:
		return "write"
	case CommandUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

const sizeHint = "Use short, medium or long."

// Invocation is the parsed form of the program arguments.
type Invocation struct {
	Command Command
	Size    domain.SizeFilter
	Color   domain.ColorChoice

	// Notices are printed to stdout before the command runs.
	Notices []string

	// Ignored holds a third argument that is not a color command.
	Ignored string
}

// Parse reads positional arguments, program name excluded.
//
//	args[0]  primary command: help, size or write
//	args[1]  size name when the primary is size
//	args[2]  secondary command: color
//	args[3]  color name
//
// Command tokens are matched case-insensitively in bare, single-dash and
// short form (help, -help, -h). Help, write and unknown primaries end parsing.
func Parse(args []string) Invocation {
	inv := Invocation{Command: CommandSelect}

	if len(args) == 0 {
		return inv
	}

	switch strings.ToLower(args[0]) {
	case "help", "-help", "-h":
		inv.Command = CommandHelp
		return inv
	case "write", "-write":
		inv.Command = CommandWrite
		return inv
	case "size", "-size", "-o":
		if len(args) > 1 {
			size, ok := domain.ParseSizeFilter(args[1])
			if !ok {
				inv.Notices = append(inv.Notices, sizeHint)
			}

			inv.Size = size
		}
	default:
		inv.Command = CommandUnknown
		return inv
	}

	if len(args) > 2 {
		switch strings.ToLower(args[2]) {
		case "color", "-color", "-c":
			if len(args) > 3 {
				// Unknown names fall back to ColorNone.
				inv.Color, _ = domain.ParseColorChoice(args[3])
			}
		default:
			inv.Ignored = args[2]
		}
	}

	return inv
}
