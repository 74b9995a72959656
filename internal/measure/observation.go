package measure

import (
	"fmt"
	"time"

	"github.com/blockpulse/blockpulse-monitor/internal/model"
)

// Observation is one sampled block together with its local arrival time.
// Rates are derived from arrival times, not the chain's own block
// timestamps: the window measures observed delivery performance.
type Observation struct {
	arrivedAt      time.Time
	sequence       uint64
	gasUsed        uint64
	txCount        uint32
	miniBlockCount uint8
}

// newObservation decodes a block into an Observation stamped with now. The
// mini-block count is the leading byte of the block's extra-data buffer; a
// block without extra-data cannot be observed.
func newObservation(b model.Block, now time.Time) (Observation, error) {
	if len(b.ExtraData) == 0 {
		return Observation{}, fmt.Errorf("block %d: %w", b.Number, ErrNoMiniBlockCount)
	}

	return Observation{
		arrivedAt:      now,
		sequence:       b.Number,
		gasUsed:        b.GasUsed,
		txCount:        b.TxCount,
		miniBlockCount: b.ExtraData[0],
	}, nil
}
