// Package extract pattern-matches free-text bot messages into financial
// events. The bot writes two transaction shapes, vehicle rentals and
// storage movements, in either English or Russian labels.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dtnitsch/rentledger/models"
	"github.com/shopspring/decimal"
)

// A rule pairs a message pattern with the constructor that builds an event
// from its submatches. Rules are tried in order and the first match wins,
// so rental rules must stay ahead of storage rules.
type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(m []string, msg models.RawMessage) (models.FinancialEvent, error)
}

var rules = []rule{
	{
		name:    "rental",
		pattern: regexp.MustCompile(`(?s)Server: (.*?)\s*Character: .*?\s*Vehicle: (.*?)\s*Price: \$(.*?)\s*Duration: .*?\s*Renter: (.*)`),
		build:   buildRental,
	},
	{
		name:    "rental-ru",
		pattern: regexp.MustCompile(`(?s)Сервер: (.*?)\s*Персонаж: .*?\s*Транспорт: (.*?)\s*Цена: \$(.*?)\s*Длительность: .*?\s*Арендатор: (.*)`),
		build:   buildRental,
	},
	{
		name:    "storage",
		pattern: regexp.MustCompile(`(?s)Item: (.*?)\nQuantity: (\d+)`),
		build:   buildStorage,
	},
	{
		name:    "storage-ru",
		pattern: regexp.MustCompile(`(?s)Предмет: (.*?)\nКоличество: (\d+)`),
		build:   buildStorage,
	},
}

// Extract matches msg against the transaction patterns. ok is false when
// no pattern applies; irrelevant bot chatter is dropped, not an error. A
// matched message whose numeric field cannot be parsed is an error.
func Extract(msg models.RawMessage) (ev models.FinancialEvent, ok bool, err error) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(msg.Text)
		if m == nil {
			continue
		}
		ev, err = r.build(m, msg)
		if err != nil {
			return models.FinancialEvent{}, false,
				fmt.Errorf("%s message at %s: %w", r.name, msg.Timestamp.Format(time.RFC3339), err)
		}
		return ev, true, nil
	}
	return models.FinancialEvent{}, false, nil
}

func buildRental(m []string, msg models.RawMessage) (models.FinancialEvent, error) {
	price, err := ParsePrice(m[3])
	if err != nil {
		return models.FinancialEvent{}, err
	}
	return models.FinancialEvent{
		Timestamp:  msg.Timestamp,
		Kind:       models.KindRental,
		Server:     strings.TrimSpace(m[1]),
		ItemName:   strings.TrimSpace(m[2]),
		Price:      price,
		RenterName: strings.TrimSpace(m[4]),
	}, nil
}

func buildStorage(m []string, msg models.RawMessage) (models.FinancialEvent, error) {
	qty, err := strconv.Atoi(m[2])
	if err != nil {
		return models.FinancialEvent{}, fmt.Errorf("bad quantity %q: %v", m[2], err)
	}
	return models.FinancialEvent{
		Timestamp: msg.Timestamp,
		Kind:      models.KindStorage,
		ItemName:  strings.TrimSpace(m[1]),
		Quantity:  qty,
	}, nil
}

// ParsePrice reads the bot's price spelling: whitespace separates
// thousands groups and a trailing comma group is the decimal part, so
// "1 200,50" parses as 1200.50 and "1,200" as 1200.
func ParsePrice(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if i := strings.LastIndex(cleaned, ","); i >= 0 && len(cleaned)-i-1 > 0 && len(cleaned)-i-1 <= 2 {
		cleaned = strings.ReplaceAll(cleaned[:i], ",", "") + "." + cleaned[i+1:]
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad price %q: %v", s, err)
	}
	return d, nil
}
