package models

import "github.com/shopspring/decimal"

// AnalysisResult is the summary produced by one successful pipeline run.
// Revenue figures come from rental events only; storage events count
// toward TotalEvents and appear in Events but carry no revenue.
type AnalysisResult struct {
	TotalRevenue decimal.Decimal `json:"total_revenue" yaml:"total_revenue"`
	TotalEvents  int             `json:"total_events" yaml:"total_events"`

	// RevenueByVehicle groups rental revenue by vehicle name.
	RevenueByVehicle map[string]decimal.Decimal `json:"revenue_by_vehicle" yaml:"revenue_by_vehicle"`

	// Events holds every extracted event, newest first.
	Events []FinancialEvent `json:"events" yaml:"events"`

	// Servers and Vehicles are the distinct non-empty values seen across
	// rental events, sorted for deterministic output.
	Servers  []string `json:"servers" yaml:"servers"`
	Vehicles []string `json:"vehicles" yaml:"vehicles"`
}
