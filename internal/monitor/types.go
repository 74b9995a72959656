package monitor

import (
	"context"

	"github.com/blockpulse/blockpulse-monitor/internal/model"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource delivers head announcements and resolves them to light
	// block records.
	BlockSource interface {
		SubscribeNewHeads(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
		BlockByHash(ctx context.Context, hash common.Hash) (model.Block, error)
	}

	// Renderer writes one update per accepted block.
	Renderer interface {
		Render(s Snapshot) error
	}

	// Metrics tracks the measurement loop.
	Metrics interface {
		ObserveHead()
		ObserveBlock(accepted bool)
		SetRates(transactionsPerSecond, gasPerSecond, miniBlocksPerSecond float64, windowLen int)
	}
)
