package monitor

import "time"

// Snapshot is the measurement published after each accepted block, consumed
// by the renderer and the status endpoint.
type Snapshot struct {
	ObservedAt            time.Time `json:"observed_at"`
	BlockNumber           uint64    `json:"block_number"`
	BlockHash             string    `json:"block_hash"`
	WindowObservations    int       `json:"window_observations"`
	TransactionsPerSecond float64   `json:"transactions_per_second"`
	GasPerSecond          float64   `json:"gas_per_second"`
	MiniBlocksPerSecond   float64   `json:"mini_blocks_per_second"`
}

// Status is the session view served by the status endpoint.
type Status struct {
	ChainID        string    `json:"chain_id"`
	Endpoint       string    `json:"endpoint"`
	WindowCapacity int       `json:"window_capacity"`
	HeadsReceived  uint64    `json:"heads_received"`
	BlocksRecorded uint64    `json:"blocks_recorded"`
	BlocksStale    uint64    `json:"blocks_stale"`
	Last           *Snapshot `json:"last,omitempty"`
}
