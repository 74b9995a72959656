// Package monitor runs the live measurement session: receive a head, resolve
// it, record it into the window, publish the rates.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blockpulse/blockpulse-monitor/internal/clock"
	"github.com/blockpulse/blockpulse-monitor/internal/measure"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// headBuffer bounds how many announcements can queue while a fetch is in
// flight.
const headBuffer = 32

// Config carries the session identity and cadence settings.
type Config struct {
	Endpoint      string
	ChainID       string
	StatsInterval time.Duration
}

// Service is the single producer and single consumer around the measurement
// window: only Run records into it and queries it. The summary loop and the
// status surface read the atomic totals and the published snapshot instead.
type Service struct {
	logger   *zap.Logger
	cfg      Config
	source   BlockSource
	window   *measure.Window
	renderer Renderer
	metrics  Metrics
	clk      clock.Clock
	sleep    func(context.Context, time.Duration) error

	headsReceived  atomic.Uint64
	blocksRecorded atomic.Uint64
	blocksStale    atomic.Uint64

	mu   sync.RWMutex
	last *Snapshot
}

// New validates the wiring and builds a Service.
func New(
	cfg Config,
	source BlockSource,
	window *measure.Window,
	renderer Renderer,
	metrics Metrics,
	clk clock.Clock,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if window == nil {
		return nil, errors.New("measurement window is required")
	}
	if renderer == nil {
		return nil, errors.New("renderer is required")
	}
	if metrics == nil {
		return nil, errors.New("monitor metrics is required")
	}
	if clk == nil {
		return nil, errors.New("clock is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Service{
		logger: logger.With(
			zap.String("endpoint", cfg.Endpoint),
			zap.String("chain_id", cfg.ChainID),
		),
		cfg:      cfg,
		source:   source,
		window:   window,
		renderer: renderer,
		metrics:  metrics,
		clk:      clk,
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.SleepWithContext(ctx, clk, d)
		},
	}, nil
}

// Run consumes the head feed until the context ends or a fatal error occurs.
// Stale and duplicate blocks are dropped without output; every other failure
// terminates the session.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.StatsInterval > 0 {
		go s.summaryLoop(ctx)
	}

	heads := make(chan *types.Header, headBuffer)
	sub, err := s.source.SubscribeNewHeads(ctx, heads)
	if err != nil {
		return fmt.Errorf("subscribe new heads: %w", err)
	}
	defer sub.Unsubscribe()

	s.logger.Info("following new heads", zap.Int("window_capacity", s.window.Capacity()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("head subscription: %w", err)
		case head := <-heads:
			if err := s.handleHead(ctx, head); err != nil {
				return err
			}
		}
	}
}

func (s *Service) handleHead(ctx context.Context, head *types.Header) error {
	s.headsReceived.Inc()
	s.metrics.ObserveHead()

	block, err := s.source.BlockByHash(ctx, head.Hash())
	if err != nil {
		return fmt.Errorf("resolve block %s: %w", head.Hash(), err)
	}

	accepted, err := s.window.Record(block)
	if err != nil {
		return fmt.Errorf("record block %d: %w", block.Number, err)
	}
	s.metrics.ObserveBlock(accepted)
	if !accepted {
		s.blocksStale.Inc()
		s.logger.Debug("stale block dropped",
			zap.Uint64("number", block.Number),
			zap.String("hash", block.Hash.Hex()),
		)
		return nil
	}
	s.blocksRecorded.Inc()

	snap := Snapshot{
		ObservedAt:            s.clk.Now(),
		BlockNumber:           block.Number,
		BlockHash:             block.Hash.Hex(),
		WindowObservations:    s.window.Len(),
		TransactionsPerSecond: s.window.TransactionsPerSecond(),
		GasPerSecond:          s.window.GasPerSecond(),
		MiniBlocksPerSecond:   s.window.MiniBlocksPerSecond(),
	}
	s.publish(snap)
	s.metrics.SetRates(snap.TransactionsPerSecond, snap.GasPerSecond, snap.MiniBlocksPerSecond, snap.WindowObservations)

	if err := s.renderer.Render(snap); err != nil {
		return fmt.Errorf("render update: %w", err)
	}
	return nil
}

func (s *Service) publish(snap Snapshot) {
	s.mu.Lock()
	s.last = &snap
	s.mu.Unlock()
}

// Snapshot returns the last published measurement, if any.
func (s *Service) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return Snapshot{}, false
	}
	return *s.last, true
}

// Status reports the session identity, totals and last measurement.
func (s *Service) Status() Status {
	st := Status{
		ChainID:        s.cfg.ChainID,
		Endpoint:       s.cfg.Endpoint,
		WindowCapacity: s.window.Capacity(),
		HeadsReceived:  s.headsReceived.Load(),
		BlocksRecorded: s.blocksRecorded.Load(),
		BlocksStale:    s.blocksStale.Load(),
	}
	if snap, ok := s.Snapshot(); ok {
		st.Last = &snap
	}
	return st
}

// summaryLoop logs session totals at the configured cadence until the
// context ends.
func (s *Service) summaryLoop(ctx context.Context) {
	for {
		if err := s.sleep(ctx, s.cfg.StatsInterval); err != nil {
			return
		}

		fields := []zap.Field{
			zap.Uint64("heads_received", s.headsReceived.Load()),
			zap.Uint64("blocks_recorded", s.blocksRecorded.Load()),
			zap.Uint64("blocks_stale", s.blocksStale.Load()),
		}
		if snap, ok := s.Snapshot(); ok {
			fields = append(fields,
				zap.Int("window_observations", snap.WindowObservations),
				zap.Uint64("last_block", snap.BlockNumber),
			)
		}
		s.logger.Info("session totals", fields...)
	}
}
