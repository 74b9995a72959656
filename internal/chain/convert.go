package chain

import (
	"fmt"

	"github.com/blockpulse/blockpulse-monitor/internal/model"
	"github.com/blockpulse/blockpulse-monitor/pkg/safe"
)

// toBlock maps a raw RPC block into the model record. The extra-data buffer
// is copied so the Block owns its bytes.
func toBlock(src *rpcBlock) (model.Block, error) {
	txCount, err := safe.Uint32(len(src.Transactions))
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d tx count overflow: %w", src.Number, err)
	}

	return model.Block{
		Number:    uint64(src.Number),
		Hash:      src.Hash,
		GasUsed:   uint64(src.GasUsed),
		TxCount:   txCount,
		ExtraData: append([]byte(nil), src.ExtraData...),
	}, nil
}
