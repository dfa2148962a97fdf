// =============================================================================
// Shipping Refund Calculator - Session Module
// =============================================================================
//
// This module owns the single active record collection and orchestrates the
// engine operations over it. There are no ambient globals: the session is an
// explicit object handed to whichever front end (CLI command, grid window)
// needs it, and every operation reads or replaces state through it.
//
// The session is single-user and synchronous. Operations mutate state only
// after they have fully succeeded, so a cancelled or failed import leaves
// the prior collection exactly as it was.
//
// =============================================================================

package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/classify"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/ingest"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/refund"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/stats"
)

// =============================================================================
// LOGGING
// =============================================================================

// Logger is the minimal logging interface the session needs. Front ends can
// inject their own implementation.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// defaultLogger prints info and above to stdout.
type defaultLogger struct{}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}

// VerboseLogger prints everything, including debug output.
type VerboseLogger struct{}

func (l *VerboseLogger) Debug(msg string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *VerboseLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *VerboseLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *VerboseLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Stats summarizes one pipeline run.
type Stats struct {
	// RowsRead is the number of raw rows handed to ingestion.
	RowsRead int

	// RowsDropped is the number of rows ingestion discarded.
	RowsDropped int

	// Groups is the number of recipient groups.
	Groups int

	// RefundedGroups is the number of groups with a positive refund.
	RefundedGroups int

	// ProcessingTime is the elapsed time of the run.
	ProcessingTime time.Duration
}

// =============================================================================
// SESSION
// =============================================================================

// Session holds the active record collection and its configuration.
type Session struct {
	// ID identifies this session in logs and generated file names.
	ID uuid.UUID

	cfg     *config.Config
	logger  Logger
	records []record.Record
}

// New creates an empty session for the given configuration. A nil logger
// selects the default stdout logger.
func New(cfg *config.Config, logger Logger) *Session {
	if logger == nil {
		logger = &defaultLogger{}
	}
	return &Session{
		ID:     uuid.New(),
		cfg:    cfg,
		logger: logger,
	}
}

// Records returns the active record collection.
func (s *Session) Records() []record.Record {
	return s.records
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Import ingests raw rows into the session. The active collection is
// replaced only on success; on any ingestion error the prior state is
// untouched.
func (s *Session) Import(rows []map[string]string) (Stats, error) {
	start := time.Now()

	records, err := ingest.New(s.cfg.Columns).Ingest(rows)
	if err != nil {
		return Stats{}, fmt.Errorf("import failed: %w", err)
	}

	s.records = records
	s.logger.Debug("Ingested %d of %d rows", len(records), len(rows))

	return Stats{
		RowsRead:       len(rows),
		RowsDropped:    len(rows) - len(records),
		ProcessingTime: time.Since(start),
	}, nil
}

// Process runs the full refund pipeline over raw rows: ingest, compute
// per-group refunds, append the totals row.
func (s *Session) Process(rows []map[string]string) (Stats, error) {
	start := time.Now()

	result, err := s.Import(rows)
	if err != nil {
		return Stats{}, err
	}

	s.ComputeRefunds()
	s.AppendTotals()

	groups := refund.GroupRecords(s.records)
	result.Groups = len(groups)
	result.RefundedGroups = s.countRefundedGroups(groups)
	result.ProcessingTime = time.Since(start)

	s.logger.Info("Processed %d records in %d groups (%d refunded)",
		len(s.records), result.Groups, result.RefundedGroups)

	return result, nil
}

// ComputeRefunds recomputes the per-group shipping totals and refunds.
func (s *Session) ComputeRefunds() {
	s.records = refund.ComputeRefunds(s.records)
	s.logger.Debug("Recomputed refunds for %d records", len(s.records))
}

// AppendTotals recomputes the grand-totals row.
func (s *Session) AppendTotals() {
	s.records = refund.AppendTotals(s.records)
	s.logger.Debug("Appended totals row")
}

// Summary computes the order-level statistics for the active collection.
func (s *Session) Summary() stats.Summary {
	return stats.ComputeSummary(s.records)
}

// Customers computes the recipient-level statistics for the active
// collection.
func (s *Session) Customers() stats.Customers {
	return stats.ComputeCustomers(s.records, s.cfg.Stats.TopCustomers)
}

// Classifier returns a cell classifier over the active collection. The
// classifier is valid until the collection is next mutated.
func (s *Session) Classifier() *classify.Classifier {
	return classify.New(s.records)
}

// countRefundedGroups counts groups whose group-first record carries a
// positive refund.
func (s *Session) countRefundedGroups(groups []refund.Group) int {
	count := 0
	for _, g := range groups {
		rec := s.records[g.Indexes[0]]
		if d, ok := currency.TryParse(rec.RefundAmount); ok && d.IsPositive() {
			count++
		}
	}
	return count
}
