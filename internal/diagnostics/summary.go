package diagnostics

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// StrategyRate is one AREAL strategy's success/failure tally.
type StrategyRate struct {
	SuccessCount  int
	FailureCount  int
	TotalAttempts int
	SuccessRate   float64 // percentage, 0-100
}

// CategoryBreakdown is one category's slice of the overall counters.
type CategoryBreakdown struct {
	TotalElements    int
	Classification   map[string]int
	ArealStrategies  map[string]int
	ExtractionOutcomes map[string]int
}

// Summary is the computed, percentage-bearing view over a
// StrategyDiagnostics' raw counters.
type Summary struct {
	TotalElements int

	ClassificationCounts map[string]int
	ClassificationRates  map[string]float64

	ConfidenceCounts map[string]int
	ConfidenceRates  map[string]float64

	ArealStrategyCounts map[string]int
	ArealStrategyRates  map[string]StrategyRate

	ExtractionOutcomeCounts map[string]int
	ExtractionOutcomeRates  map[string]float64

	CategoryBreakdown map[string]CategoryBreakdown
}

func ratesOf(counts map[string]int, total int) map[string]float64 {
	rates := make(map[string]float64, len(counts))
	if total <= 0 {
		return rates
	}
	for k, c := range counts {
		rates[k] = float64(c) * 100.0 / float64(total)
	}
	return rates
}

func cloneCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// GetSummary computes percentages per axis from the raw counters,
// guarding every division against a zero total.
func (d *StrategyDiagnostics) GetSummary() Summary {
	total := len(d.elementRecords)

	strategyBase := map[string]bool{}
	for strategyKey := range d.arealStrategyCounts {
		switch {
		case strings.HasSuffix(strategyKey, "_success"):
			strategyBase[strings.TrimSuffix(strategyKey, "_success")] = true
		case strings.HasSuffix(strategyKey, "_failure"):
			strategyBase[strings.TrimSuffix(strategyKey, "_failure")] = true
		}
	}
	strategyRates := make(map[string]StrategyRate, len(strategyBase))
	for base := range strategyBase {
		successes := d.arealStrategyCounts[base+"_success"]
		failures := d.arealStrategyCounts[base+"_failure"]
		attempts := successes + failures
		if attempts == 0 {
			continue
		}
		strategyRates[base] = StrategyRate{
			SuccessCount:  successes,
			FailureCount:  failures,
			TotalAttempts: attempts,
			SuccessRate:   float64(successes) * 100.0 / float64(attempts),
		}
	}

	totalExtractions := 0
	for _, c := range d.extractionOutcomeCounts {
		totalExtractions += c
	}

	totalWithConfidence := 0
	for _, c := range d.confidenceCounts {
		totalWithConfidence += c
	}

	breakdown := make(map[string]CategoryBreakdown, len(d.categoryClassification))
	for category, classCounts := range d.categoryClassification {
		categoryTotal := 0
		for _, c := range classCounts {
			categoryTotal += c
		}
		breakdown[category] = CategoryBreakdown{
			TotalElements:      categoryTotal,
			Classification:     cloneCounts(classCounts),
			ArealStrategies:    cloneCounts(d.categoryArealStrategy[category]),
			ExtractionOutcomes: cloneCounts(d.categoryExtractionOutcome[category]),
		}
	}

	return Summary{
		TotalElements:           total,
		ClassificationCounts:    cloneCounts(d.classificationCounts),
		ClassificationRates:     ratesOf(d.classificationCounts, total),
		ConfidenceCounts:        cloneCounts(d.confidenceCounts),
		ConfidenceRates:         ratesOf(d.confidenceCounts, totalWithConfidence),
		ArealStrategyCounts:     cloneCounts(d.arealStrategyCounts),
		ArealStrategyRates:      strategyRates,
		ExtractionOutcomeCounts: cloneCounts(d.extractionOutcomeCounts),
		ExtractionOutcomeRates:  ratesOf(d.extractionOutcomeCounts, totalExtractions),
		CategoryBreakdown:       breakdown,
	}
}

// PrintSummary renders a human-readable table to w.
func (d *StrategyDiagnostics) PrintSummary(w io.Writer) {
	s := d.GetSummary()

	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "STRATEGY DIAGNOSTICS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	fmt.Fprintln(w, "\nOVERALL STATISTICS:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "Total Elements Processed: %d\n", s.TotalElements)

	fmt.Fprintln(w, "\nCLASSIFICATION BREAKDOWN:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, cls := range []string{"TINY", "LINEAR", "AREAL"} {
		fmt.Fprintf(w, "  %-10s %6d (%5.1f%%)\n", cls+":", s.ClassificationCounts[cls], s.ClassificationRates[cls])
	}

	if len(s.ConfidenceCounts) > 0 {
		fmt.Fprintln(w, "\nCONFIDENCE LEVEL DISTRIBUTION:")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, conf := range []string{"HIGH", "MEDIUM", "LOW"} {
			if count := s.ConfidenceCounts[conf]; count > 0 {
				fmt.Fprintf(w, "  %-10s %6d (%5.1f%%)\n", conf+":", count, s.ConfidenceRates[conf])
			}
		}
	}

	if len(s.ArealStrategyRates) > 0 {
		fmt.Fprintln(w, "\nAREAL STRATEGY BREAKDOWN:")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		names := make([]string, 0, len(s.ArealStrategyRates))
		for name := range s.ArealStrategyRates {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			r := s.ArealStrategyRates[name]
			fmt.Fprintf(w, "  %-30s Success: %4d/%-4d (%5.1f%%)\n", name+":", r.SuccessCount, r.TotalAttempts, r.SuccessRate)
		}
	}

	fmt.Fprintln(w, "\nGEOMETRY EXTRACTION OUTCOMES:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, outcome := range []string{"success", "no_geometry", "insufficient_points", "failed_all_strategies", "exception"} {
		if count := s.ExtractionOutcomeCounts[outcome]; count > 0 {
			fmt.Fprintf(w, "  %-25s %6d (%5.1f%%)\n", outcome+":", count, s.ExtractionOutcomeRates[outcome])
		}
	}

	if len(s.CategoryBreakdown) > 0 {
		fmt.Fprintln(w, "\nPER-CATEGORY BREAKDOWN:")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		categories := make([]string, 0, len(s.CategoryBreakdown))
		for c := range s.CategoryBreakdown {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, category := range categories {
			cb := s.CategoryBreakdown[category]
			fmt.Fprintf(w, "\n  Category: %s\n", category)
			fmt.Fprintf(w, "    Total Elements: %d\n", cb.TotalElements)
			if len(cb.Classification) > 0 {
				fmt.Fprintln(w, "    Classifications:")
				printSortedCounts(w, cb.Classification, "      %-10s %4d\n")
			}
			if len(cb.ArealStrategies) > 0 {
				fmt.Fprintln(w, "    AREAL Strategies:")
				printSortedCounts(w, cb.ArealStrategies, "      %-30s %4d\n")
			}
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
}

func printSortedCounts(w io.Writer, counts map[string]int, format string) {
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, format, name+":", counts[name])
	}
}
