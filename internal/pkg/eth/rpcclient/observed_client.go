package rpcclient

import (
	"context"
	"math/big"
	"time"

	"github.com/blockpulse/blockpulse-monitor/internal/model"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	Client interface {
		ChainID(ctx context.Context) (*big.Int, error)
		SubscribeNewHeads(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
		BlockByHash(ctx context.Context, hash common.Hash) (model.Block, error)
		Close()
	}
)

type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("chain_id", err, started)
	}()
	return r.client.ChainID(ctx)
}

func (r *ObservedClient) SubscribeNewHeads(ctx context.Context, ch chan<- *types.Header) (sub ethereum.Subscription, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("subscribe_new_heads", err, started)
	}()
	return r.client.SubscribeNewHeads(ctx, ch)
}

func (r *ObservedClient) BlockByHash(ctx context.Context, hash common.Hash) (b model.Block, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_by_hash", err, started)
	}()
	return r.client.BlockByHash(ctx, hash)
}

func (r *ObservedClient) Close() {
	r.client.Close()
}
