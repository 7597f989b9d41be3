package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/rentledger/models"
)

// htmlDateLayout matches the DD.MM.YYYY HH:MM:SS titles the browser
// export puts on its date elements.
const htmlDateLayout = "02.01.2006 15:04:05"

var (
	dateTitleRe = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}\s\d{2}:\d{2}:\d{2}`)
	brTagRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// HTMLAdapter reads the browser-exported HTML archive. Messages live in
// div.message.default containers; the timestamp sits in the title
// attribute of a nested div.date.details element and the body in a nested
// div.text element.
type HTMLAdapter struct{}

func (a *HTMLAdapter) Format() Format { return FormatHTML }

func (a *HTMLAdapter) Adapt(rawContent string) ([]models.RawMessage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawContent))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse HTML document: %v", ErrFormat, err)
	}

	var msgs []models.RawMessage
	doc.Find("div.message.default").Each(func(i int, s *goquery.Selection) {
		title, ok := s.Find("div.date.details").Attr("title")
		if !ok {
			return
		}
		dateStr := dateTitleRe.FindString(title)
		if dateStr == "" {
			return
		}
		ts, err := time.Parse(htmlDateLayout, dateStr)
		if err != nil {
			return
		}
		text := messageText(s.Find("div.text"))
		if text == "" {
			return
		}
		msgs = append(msgs, models.RawMessage{Text: text, Timestamp: ts})
	})
	return msgs, nil
}

// messageText returns the message body with inline <br> markup turned into
// literal newlines and HTML entities decoded.
func messageText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	inner, err := sel.Html()
	if err != nil {
		return ""
	}
	inner = brTagRe.ReplaceAllString(inner, "\n")
	frag, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
	if err != nil {
		return strings.TrimSpace(inner)
	}
	return strings.TrimSpace(frag.Text())
}
