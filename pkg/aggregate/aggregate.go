// Package aggregate folds extracted events into summary statistics.
package aggregate

import (
	"errors"
	"sort"

	"github.com/dtnitsch/rentledger/models"
	"github.com/shopspring/decimal"
)

// ErrNoEvents reports a transcript that parsed cleanly but contained no
// recognizable transaction messages.
var ErrNoEvents = errors.New("no relevant events found; confirm the transcript is the correct export")

// Aggregate computes the analysis summary for one pipeline run. Events
// come back newest first, with the original extraction order preserved
// between equal timestamps. Revenue figures come from rental events only.
func Aggregate(events []models.FinancialEvent) (*models.AnalysisResult, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	total := decimal.Zero
	byVehicle := make(map[string]decimal.Decimal)
	serverSet := make(map[string]struct{})
	vehicleSet := make(map[string]struct{})

	for _, ev := range events {
		if ev.Kind != models.KindRental {
			continue
		}
		total = total.Add(ev.Price)
		byVehicle[ev.ItemName] = byVehicle[ev.ItemName].Add(ev.Price)
		if ev.Server != "" {
			serverSet[ev.Server] = struct{}{}
		}
		if ev.ItemName != "" {
			vehicleSet[ev.ItemName] = struct{}{}
		}
	}

	sorted := make([]models.FinancialEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	return &models.AnalysisResult{
		TotalRevenue:     total,
		TotalEvents:      len(sorted),
		RevenueByVehicle: byVehicle,
		Events:           sorted,
		Servers:          sortedKeys(serverSet),
		Vehicles:         sortedKeys(vehicleSet),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
