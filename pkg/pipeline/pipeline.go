// Package pipeline orchestrates load, adapt, extract and aggregate into a
// single run with one retained outcome.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/dtnitsch/rentledger/models"
	"github.com/dtnitsch/rentledger/pkg/aggregate"
	"github.com/dtnitsch/rentledger/pkg/extract"
	"github.com/dtnitsch/rentledger/pkg/transcript"
)

// ErrLoad reports a failed read of the raw transcript content.
var ErrLoad = errors.New("could not load transcript")

// Outcome is the last-run slot the controller retains: either a result or
// an error message, never both.
type Outcome struct {
	Result *models.AnalysisResult
	Err    string
}

// Controller runs the transcript pipeline and keeps the outcome of the
// most recent run. A new run replaces the previous outcome wholesale; a
// failed run leaves no partial result behind.
type Controller struct {
	last Outcome
}

func NewController() *Controller { return &Controller{} }

// Run executes adapt, extract and aggregate over rawContent using the
// given adapter. Re-running identical input yields an equal result.
func (c *Controller) Run(rawContent string, adapter transcript.Adapter) (*models.AnalysisResult, error) {
	msgs, err := adapter.Adapt(rawContent)
	if err != nil {
		return c.fail(err)
	}

	events := make([]models.FinancialEvent, 0, len(msgs))
	for _, msg := range msgs {
		ev, ok, err := extract.Extract(msg)
		if err != nil {
			return c.fail(fmt.Errorf("%w: %v", transcript.ErrFormat, err))
		}
		if !ok {
			continue
		}
		events = append(events, ev)
	}

	result, err := aggregate.Aggregate(events)
	if err != nil {
		return c.fail(err)
	}

	c.last = Outcome{Result: result}
	return result, nil
}

// RunFile loads path and runs the pipeline. When format is empty the
// container format is detected from the content; the format actually used
// is returned alongside the result.
func (c *Controller) RunFile(path string, format transcript.Format, sender string) (*models.AnalysisResult, transcript.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		_, rerr := c.fail(fmt.Errorf("%w: %v", ErrLoad, err))
		return nil, "", rerr
	}

	raw := string(data)
	if format == "" {
		format = transcript.Detect(raw)
	}
	adapter, err := transcript.New(format, sender)
	if err != nil {
		_, rerr := c.fail(err)
		return nil, format, rerr
	}

	result, err := c.Run(raw, adapter)
	return result, format, err
}

// Last returns the retained outcome of the most recent run.
func (c *Controller) Last() Outcome { return c.last }

// Reset clears the retained outcome.
func (c *Controller) Reset() { c.last = Outcome{} }

func (c *Controller) fail(err error) (*models.AnalysisResult, error) {
	c.last = Outcome{Err: err.Error()}
	return nil, err
}
