package domain

import "strings"

// Length thresholds in bytes. A record of exactly ShortMaxLen bytes is short,
// one of exactly LongMinLen bytes is long; everything strictly between is medium.
const (
	ShortMaxLen = 150
	LongMinLen  = 400
)

// SizeFilter is a length category applied to records before selection.
type SizeFilter int

const (
	// SizeAny applies no filtering.
	SizeAny SizeFilter = iota

	// SizeShort keeps records of at most ShortMaxLen bytes.
	SizeShort

	// SizeMedium keeps records longer than ShortMaxLen and shorter than LongMinLen.
	SizeMedium

	// SizeLong keeps records of at least LongMinLen bytes.
	SizeLong
)

// String returns the lowercase name used on the command line.
func (f SizeFilter) String() string {
	switch f {
	case SizeShort:
		return "short"
	case SizeMedium:
		return "medium"
	case SizeLong:
		return "long"
	case SizeAny:
		return "any"
	default:
		return "unknown"
	}
}

// Matches reports whether text belongs to the category.
func (f SizeFilter) Matches(text string) bool {
	n := len(text)

	switch f {
	case SizeShort:
		return n <= ShortMaxLen
	case SizeMedium:
		return n > ShortMaxLen && n < LongMinLen
	case SizeLong:
		return n >= LongMinLen
	default:
		return true
	}
}

// Classify returns the concrete category (never SizeAny) a record falls into.
func Classify(text string) SizeFilter {
	switch {
	case SizeShort.Matches(text):
		return SizeShort
	case SizeMedium.Matches(text):
		return SizeMedium
	default:
		return SizeLong
	}
}

// ParseSizeFilter maps a case-insensitive category name to a filter.
// The second result is false for unrecognized names, in which case
// SizeAny is returned and the caller decides how to report it.
func ParseSizeFilter(name string) (SizeFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "short":
		return SizeShort, true
	case "medium":
		return SizeMedium, true
	case "long":
		return SizeLong, true
	default:
		return SizeAny, false
	}
}

// FilterRecords returns the records matching f in their original order.
// The result never aliases records.
func FilterRecords(records []string, f SizeFilter) []string {
	subset := make([]string, 0, len(records))

	for _, r := range records {
		if f.Matches(r) {
			subset = append(subset, r)
		}
	}

	return subset
}
