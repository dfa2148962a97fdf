// =============================================================================
// Shipping Refund Calculator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Shipping Refund Calculator CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   refunds process <file.csv>  - Import orders, compute refunds and totals,
//                                 export the processed purchases
//   refunds stats <file.csv>    - Import orders and export summary and
//                                 customer statistics
//   refunds version             - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : engine packages (currency, ingest, refund, stats,
//                  classify, session) and the collaborator layer (csvio)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/shipping-refund-calculator/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
