package extract

import (
	"testing"
	"time"

	"github.com/dtnitsch/rentledger/models"
	"github.com/shopspring/decimal"
)

var testTS = time.Date(2024, 3, 1, 14, 5, 0, 0, time.UTC)

func TestExtract_Rental(t *testing.T) {
	msg := models.RawMessage{
		Text:      "Server: S1\nCharacter: X\nVehicle: Sedan\nPrice: $500\nDuration: 1h\nRenter: Bob",
		Timestamp: testTS,
	}

	ev, ok, err := Extract(msg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !ok {
		t.Fatal("Extract() ok = false, want true")
	}

	if ev.Kind != models.KindRental {
		t.Errorf("Kind = %q, want %q", ev.Kind, models.KindRental)
	}
	if ev.Server != "S1" {
		t.Errorf("Server = %q, want %q", ev.Server, "S1")
	}
	if ev.ItemName != "Sedan" {
		t.Errorf("ItemName = %q, want %q", ev.ItemName, "Sedan")
	}
	if ev.RenterName != "Bob" {
		t.Errorf("RenterName = %q, want %q", ev.RenterName, "Bob")
	}
	if want := decimal.NewFromInt(500); !ev.Price.Equal(want) {
		t.Errorf("Price = %s, want %s", ev.Price, want)
	}
	if !ev.Timestamp.Equal(testTS) {
		t.Errorf("Timestamp = %v, want %v", ev.Timestamp, testTS)
	}
}

func TestExtract_RentalRussianLabels(t *testing.T) {
	msg := models.RawMessage{
		Text:      "Сервер: Downtown\nПерсонаж: Иван\nТранспорт: Sultan RS\nЦена: $1 200,50\nДлительность: 2ч\nАрендатор: Петя",
		Timestamp: testTS,
	}

	ev, ok, err := Extract(msg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !ok {
		t.Fatal("Extract() ok = false, want true")
	}

	if ev.Server != "Downtown" {
		t.Errorf("Server = %q, want %q", ev.Server, "Downtown")
	}
	if ev.ItemName != "Sultan RS" {
		t.Errorf("ItemName = %q, want %q", ev.ItemName, "Sultan RS")
	}
	if ev.RenterName != "Петя" {
		t.Errorf("RenterName = %q, want %q", ev.RenterName, "Петя")
	}
	if want := decimal.RequireFromString("1200.50"); !ev.Price.Equal(want) {
		t.Errorf("Price = %s, want %s", ev.Price, want)
	}
}

func TestExtract_Storage(t *testing.T) {
	msg := models.RawMessage{Text: "Item: Crate\nQuantity: 10", Timestamp: testTS}

	ev, ok, err := Extract(msg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !ok {
		t.Fatal("Extract() ok = false, want true")
	}

	if ev.Kind != models.KindStorage {
		t.Errorf("Kind = %q, want %q", ev.Kind, models.KindStorage)
	}
	if ev.ItemName != "Crate" {
		t.Errorf("ItemName = %q, want %q", ev.ItemName, "Crate")
	}
	if ev.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10", ev.Quantity)
	}
}

func TestExtract_RentalTriedBeforeStorage(t *testing.T) {
	// A message matching the rental shape must not fall through to the
	// storage rule even if it also mentions item-like lines.
	msg := models.RawMessage{
		Text:      "Server: S1\nCharacter: X\nVehicle: Kart\nPrice: $75\nDuration: 1h\nRenter: Ann\nItem: Kart\nQuantity: 1",
		Timestamp: testTS,
	}

	ev, ok, err := Extract(msg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !ok || ev.Kind != models.KindRental {
		t.Errorf("Extract() kind = %q ok = %v, want rental match first", ev.Kind, ok)
	}
}

func TestExtract_NoMatch(t *testing.T) {
	msg := models.RawMessage{Text: "Your vehicle was returned to the garage.", Timestamp: testTS}

	_, ok, err := Extract(msg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if ok {
		t.Error("Extract() ok = true, want false for unmatched chatter")
	}
}

func TestExtract_BadPrice(t *testing.T) {
	msg := models.RawMessage{
		Text:      "Server: S1\nCharacter: X\nVehicle: Sedan\nPrice: $oops\nDuration: 1h\nRenter: Bob",
		Timestamp: testTS,
	}

	_, _, err := Extract(msg)
	if err == nil {
		t.Fatal("Extract() error = nil, want error for unparseable price")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "75", want: "75"},
		{in: "500", want: "500"},
		{in: "1 200,50", want: "1200.50"},
		{in: "1,200", want: "1200"},
		{in: "2 500", want: "2500"},
		{in: "12,5", want: "12.5"},
		{in: "oops", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) error = %v", tt.in, err)
			}
			if want := decimal.RequireFromString(tt.want); !got.Equal(want) {
				t.Errorf("ParsePrice(%q) = %s, want %s", tt.in, got, want)
			}
		})
	}
}
