// =============================================================================
// Shipping Refund Calculator - Currency Parser Module
// =============================================================================
//
// This module turns arbitrary currency-formatted text ("$1,234.50", "10 USD",
// " 5.00 ") into exact decimal values. All money arithmetic in the engine
// goes through shopspring/decimal; binary floating point is never used for
// currency fields, so sums and totals comparisons are exact.
//
// Two parsing entry points exist, used per the leniency policy:
//   - Parse:    strict. A non-empty value that does not parse is a caller
//               error and is reported as a *FormatError.
//   - TryParse: lenient. Unparseable values are reported as absent; the
//               statistics and totals computations use this so one bad cell
//               never aborts a whole computation.
//
// =============================================================================

package currency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ERRORS
// =============================================================================

// FormatError reports a value that could not be parsed as currency where a
// strict parse was required. It names the offending text so the failure can
// be reported against the right field.
type FormatError struct {
	// Input is the original text as supplied by the caller.
	Input string

	// Cleaned is the text after currency-symbol stripping, the string that
	// actually failed to parse.
	Cleaned string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid currency value %q (cleaned: %q)", e.Input, e.Cleaned)
}

// =============================================================================
// CLEANING
// =============================================================================

// Clean strips every character that is not a digit, '.', or '-'. Currency
// symbols, thousands separators, whitespace, and stray text all disappear,
// leaving only the characters a decimal parse can consume. An absent value
// is represented by "" and cleans to "".
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// =============================================================================
// PARSING
// =============================================================================

// Parse is the strict currency parse. An empty or whitespace-only input
// parses as zero. A non-empty input that fails to parse after cleaning
// returns a *FormatError; that includes text the cleaning reduces to
// nothing, like "abc", which strict callers must see as an error even
// though the lenient parse treats it as absent.
func Parse(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	cleaned := Clean(s)
	if strings.TrimSpace(cleaned) == "" {
		return decimal.Zero, &FormatError{Input: s, Cleaned: cleaned}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &FormatError{Input: s, Cleaned: cleaned}
	}
	return d, nil
}

// TryParse is the lenient currency parse. It returns the parsed value and
// true, or (0, false) when the cleaned value is empty or unparseable. Absent
// and unparseable are deliberately indistinguishable here; callers that care
// about the difference use the raw text.
func TryParse(s string) (decimal.Decimal, bool) {
	cleaned := Clean(s)
	if strings.TrimSpace(cleaned) == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero is the lenient parse collapsed to a plain value: absent and
// unparseable both yield zero. This is the summing behavior of the refund
// and totals computations.
func ParseOrZero(s string) decimal.Decimal {
	d, _ := TryParse(s)
	return d
}

// =============================================================================
// STATISTICS-POPULATION PARSING
// =============================================================================

// statPattern is the decimal-number shape a value must match, after stripping
// '$', ',' and spaces, to join a statistics population.
var statPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ParseStat is the statistics parse: it strips '$', ',' and spaces, then
// requires the remainder to match a plain decimal-number pattern. A value
// that is present but does not match is excluded from the population
// (absent, not zero), so partial garbage in one column never skews an
// average or median.
func ParseStat(s string) (decimal.Decimal, bool) {
	stripped := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if stripped == "" || !statPattern.MatchString(stripped) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Format renders a decimal with exactly two fraction digits, the display
// format used for every derived money field.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
