package diagnostics

import (
	"encoding/csv"
	"os"
)

var csvHeader = []string{
	"element_id", "category", "classification", "strategy_used",
	"confidence", "extraction_outcome", "failure_reason",
}

// ExportToCSV writes one row per element record to path, columns in
// the fixed order element_id, category, classification, strategy_used,
// confidence, extraction_outcome, failure_reason.
func (d *StrategyDiagnostics) ExportToCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range d.elementRecords {
		row := []string{
			rec.ElementID,
			rec.Category,
			rec.Classification,
			rec.StrategyUsed,
			rec.Confidence,
			rec.ExtractionOutcome,
			rec.FailureReason,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
