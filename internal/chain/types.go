package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// rpcBlock is the hashes-only shape of an eth_getBlockByHash response with
// full transactions turned off. The monitor needs header figures and the
// transaction count, never the bodies.
type rpcBlock struct {
	Number       hexutil.Uint64 `json:"number"`
	Hash         common.Hash    `json:"hash"`
	GasUsed      hexutil.Uint64 `json:"gasUsed"`
	ExtraData    hexutil.Bytes  `json:"extraData"`
	Transactions []common.Hash  `json:"transactions"`
}
