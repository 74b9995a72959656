// Package measure implements the bounded sliding window the monitor derives
// its throughput rates from.
package measure

import (
	"errors"
	"fmt"
	"time"

	"github.com/blockpulse/blockpulse-monitor/internal/clock"
	"github.com/blockpulse/blockpulse-monitor/internal/model"
)

// ErrNoMiniBlockCount reports a block whose extra-data buffer is empty, so no
// mini-block count can be decoded from it.
var ErrNoMiniBlockCount = errors.New("extra-data is empty, no mini-block count")

// Window keeps a bounded buffer of the most recent observations, ordered by
// strictly increasing block number, and derives per-second rates over them.
//
// The rate denominator runs from the arrival time of the most recently
// evicted observation (window creation time before any eviction) to the
// newest observation's arrival. In steady state that spans one inter-arrival
// gap more than the retained observations alone; while the buffer is still
// filling it spans from creation time and under-states the rates.
//
// A Window is not safe for concurrent use: a single goroutine records and
// queries.
type Window struct {
	clk          clock.Clock
	capacity     int
	windowStart  time.Time
	observations []Observation
}

// New builds a Window holding at most capacity observations. Capacity must
// be greater than one: a single-slot window has no inter-arrival gap to
// measure over.
func New(capacity int, clk clock.Clock) (*Window, error) {
	if capacity <= 1 {
		return nil, fmt.Errorf("window capacity must be greater than 1, got %d", capacity)
	}
	if clk == nil {
		return nil, errors.New("clock is required")
	}

	return &Window{
		clk:         clk,
		capacity:    capacity,
		windowStart: clk.Now(),
		// One spare slot keeps the append-then-evict step allocation free.
		observations: make([]Observation, 0, capacity+1),
	}, nil
}

// Record folds one block into the window. It returns false and leaves the
// window untouched when the block's number is not strictly greater than the
// newest kept observation's (a stale or duplicate delivery). A block whose
// extra-data cannot be decoded is an error and also changes nothing.
func (w *Window) Record(b model.Block) (bool, error) {
	obs, err := newObservation(b, w.clk.Now())
	if err != nil {
		return false, err
	}

	if n := len(w.observations); n > 0 && obs.sequence <= w.observations[n-1].sequence {
		return false, nil
	}

	w.observations = append(w.observations, obs)
	if len(w.observations) > w.capacity {
		evicted := w.observations[0]
		copy(w.observations, w.observations[1:])
		w.observations = w.observations[:len(w.observations)-1]
		w.windowStart = evicted.arrivedAt
	}

	return true, nil
}

// TransactionsPerSecond returns the transaction rate over the current window.
func (w *Window) TransactionsPerSecond() float64 {
	var txs uint64
	for _, o := range w.observations {
		txs += uint64(o.txCount)
	}
	return float64(txs) / w.elapsed().Seconds()
}

// GasPerSecond returns the gas consumption rate over the current window.
func (w *Window) GasPerSecond() float64 {
	var gas uint64
	for _, o := range w.observations {
		gas += o.gasUsed
	}
	return float64(gas) / w.elapsed().Seconds()
}

// MiniBlocksPerSecond returns the mini-block fragment rate over the current
// window.
func (w *Window) MiniBlocksPerSecond() float64 {
	var fragments uint64
	for _, o := range w.observations {
		fragments += uint64(o.miniBlockCount)
	}
	return float64(fragments) / w.elapsed().Seconds()
}

// Len returns the number of buffered observations.
func (w *Window) Len() int {
	return len(w.observations)
}

// Capacity returns the fixed maximum number of buffered observations.
func (w *Window) Capacity() int {
	return w.capacity
}

// elapsed is the shared rate denominator. Rates must not be queried before
// the first successful Record; doing so is a caller bug.
func (w *Window) elapsed() time.Duration {
	if len(w.observations) == 0 {
		panic("measure: rate queried on an empty window")
	}
	return w.observations[len(w.observations)-1].arrivedAt.Sub(w.windowStart)
}
