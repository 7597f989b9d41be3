package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/dtnitsch/rentledger/models"
)

// DefaultSender is the bot account whose messages carry the transactions.
const DefaultSender = "Majestic"

// JSONAdapter reads the messaging platform's JSON export. Only messages
// sent by the bot account are kept; everything else in the chat is noise.
type JSONAdapter struct {
	// Sender is the bot account name to keep; DefaultSender when empty.
	Sender string
}

type jsonExport struct {
	Messages []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	From string          `json:"from"`
	Date string          `json:"date"`
	Text json.RawMessage `json:"text"`
}

func (a *JSONAdapter) Format() Format { return FormatJSON }

func (a *JSONAdapter) Adapt(rawContent string) ([]models.RawMessage, error) {
	var export jsonExport
	if err := json.Unmarshal([]byte(rawContent), &export); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrFormat, err)
	}
	if export.Messages == nil {
		return nil, fmt.Errorf("%w: missing top-level \"messages\" array", ErrFormat)
	}

	sender := a.Sender
	if sender == "" {
		sender = DefaultSender
	}

	var msgs []models.RawMessage
	for _, m := range export.Messages {
		if m.From != sender {
			continue
		}
		text := flattenText(m.Text)
		if text == "" {
			continue
		}
		ts, err := dateparse.ParseAny(m.Date)
		if err != nil {
			continue
		}
		msgs = append(msgs, models.RawMessage{Text: text, Timestamp: ts})
	}
	return msgs, nil
}

// flattenText concatenates the export's text field, which is either a
// bare string or a list of runs (strings or {text: ...} objects).
func flattenText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var runs []json.RawMessage
	if err := json.Unmarshal(raw, &runs); err != nil {
		return ""
	}
	var b strings.Builder
	for _, run := range runs {
		var part string
		if err := json.Unmarshal(run, &part); err == nil {
			b.WriteString(part)
			continue
		}
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(run, &obj); err == nil {
			b.WriteString(obj.Text)
		}
	}
	return b.String()
}
