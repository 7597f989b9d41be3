// Package models defines the data structures shared across the pipeline.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMessage is a single bot message lifted out of a transcript container,
// before any pattern matching.
type RawMessage struct {
	Text      string
	Timestamp time.Time
}

// EventKind discriminates the two transaction shapes the bot reports.
type EventKind string

const (
	KindRental  EventKind = "rental"
	KindStorage EventKind = "storage"
)

// FinancialEvent is one structured transaction extracted from a bot
// message. Exactly one kind applies per event; the fields of the other
// kind stay at their zero values.
type FinancialEvent struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Kind      EventKind `json:"kind" yaml:"kind"`
	ItemName  string    `json:"item_name" yaml:"item_name"`

	// Rental fields.
	Server     string          `json:"server,omitempty" yaml:"server,omitempty"`
	Price      decimal.Decimal `json:"price" yaml:"price"`
	RenterName string          `json:"renter_name,omitempty" yaml:"renter_name,omitempty"`

	// Storage field.
	Quantity int `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}
