// Package chain provides node access over go-ethereum's RPC stack.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/blockpulse/blockpulse-monitor/internal/model"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"
)

// Client talks to a single node endpoint. Block fetches go through a rate
// limiter so a burst of head announcements cannot flood the node.
type Client struct {
	rpc     *rpc.Client
	eth     *ethclient.Client
	limiter ratelimit.Limiter
}

// Dial connects to the endpoint. The endpoint must speak the subscription
// protocol (WebSocket or IPC) for SubscribeNewHeads to work.
func Dial(ctx context.Context, endpoint string, fetchesPerSecond int) (*Client, error) {
	if fetchesPerSecond <= 0 {
		return nil, fmt.Errorf("fetches per second must be positive, got %d", fetchesPerSecond)
	}

	rpcClient, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	return &Client{
		rpc:     rpcClient,
		eth:     ethclient.NewClient(rpcClient),
		limiter: ratelimit.New(fetchesPerSecond),
	}, nil
}

// ChainID fetches the chain identifier of the connected node.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.eth.ChainID(ctx)
}

// SubscribeNewHeads streams header announcements into ch.
func (c *Client) SubscribeNewHeads(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	return c.eth.SubscribeNewHead(ctx, ch)
}

// BlockByHash resolves an announced head to its light block record. The node
// is asked for transaction hashes only.
func (c *Client) BlockByHash(ctx context.Context, hash common.Hash) (model.Block, error) {
	c.limiter.Take()

	var raw *rpcBlock
	if err := c.rpc.CallContext(ctx, &raw, "eth_getBlockByHash", hash, false); err != nil {
		return model.Block{}, fmt.Errorf("eth_getBlockByHash %s: %w", hash, err)
	}
	if raw == nil {
		return model.Block{}, ethereum.NotFound
	}

	return toBlock(raw)
}

// Close tears down the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}
