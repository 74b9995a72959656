package model

import "github.com/ethereum/go-ethereum/common"

// Block is the light form of a chain block the monitor works with: identity
// plus the aggregate figures the window math needs, without transaction
// bodies. ExtraData is owned by the Block; its first byte carries the
// mini-block count.
type Block struct {
	Number    uint64
	Hash      common.Hash
	GasUsed   uint64
	TxCount   uint32
	ExtraData []byte
}
