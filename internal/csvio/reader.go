// =============================================================================
// Shipping Refund Calculator - CSV Reader
// =============================================================================
//
// This module reads a delimited order-export file into ordered header-name ->
// cell-text rows. The first row is the header; every other row is one record
// addressed by header name. Decoding concerns stay here at the collaborator
// boundary: the engine only ever sees already-decoded text values.
//
// =============================================================================

package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
)

// Rows holds the parsed import file.
type Rows struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Records contains the data rows as header -> value maps, in file order.
	Records []map[string]string

	// SourceFile is the path the rows were read from.
	SourceFile string
}

// ReadRows reads a CSV file into header-addressed rows.
func ReadRows(path string, settings config.CSVSettings) (*Rows, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := make([]string, len(allRows[0]))
	for i, h := range allRows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]map[string]string, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = raw[i]
			} else {
				row[header] = ""
			}
		}
		records = append(records, row)
	}

	return &Rows{
		Headers:    headers,
		Records:    records,
		SourceFile: path,
	}, nil
}

// configureReader applies the delimiter settings. Common delimiter aliases
// are accepted alongside literal characters.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			r, _ := utf8.DecodeRuneInString(settings.Delimiter)
			reader.Comma = r
		} else {
			reader.Comma = ','
		}
	}

	// Tolerate ragged rows and loosely quoted fields; row content problems
	// are the ingestor's call, not a parse failure.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}
