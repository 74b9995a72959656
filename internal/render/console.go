// Package render formats monitor output for the console.
package render

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/blockpulse/blockpulse-monitor/internal/monitor"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// FormatTimestamp renders an observation time with microsecond precision.
func FormatTimestamp(ts time.Time) string {
	return ts.Format(timestampLayout)
}

// Console writes one status line per accepted block. With refresh enabled
// the line starts with a carriage return and carries no newline, so each
// update redraws in place on a terminal.
type Console struct {
	out     io.Writer
	refresh bool
}

func NewConsole(out io.Writer, refresh bool) (*Console, error) {
	if out == nil {
		return nil, errors.New("console writer is required")
	}

	return &Console{out: out, refresh: refresh}, nil
}

// Render writes the status line for one snapshot. A zero mini-block rate
// shows the interval as +Inf rather than hiding the line.
func (c *Console) Render(s monitor.Snapshot) error {
	line := fmt.Sprintf("\r[%s] Mini-block interval: %.1f ms, TPS: %.1f, Gas: %.2f Mgas/s",
		FormatTimestamp(s.ObservedAt),
		1000/s.MiniBlocksPerSecond,
		s.TransactionsPerSecond,
		s.GasPerSecond/1e6,
	)
	if !c.refresh {
		line += "\n"
	}

	_, err := io.WriteString(c.out, line)
	return err
}
