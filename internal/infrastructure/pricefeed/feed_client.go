package pricefeed

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var dialFeedClient = ethclient.Dial

// Function selectors of the aggregator read methods.
var (
	latestRoundDataSelector = common.Hex2Bytes("feaf968c") // latestRoundData()
	decimalsSelector        = common.Hex2Bytes("313ce567") // decimals()
)

// RoundData is one published price observation: the raw integer answer, the
// base-10 exponent it is scaled by (negative for decimals), and the unix
// time it was published.
type RoundData struct {
	Answer      *big.Int
	Expo        int32
	PublishedAt int64
}

// FeedClient reads latestRoundData-style price aggregators over an EVM RPC
type FeedClient struct {
	client *ethclient.Client
	rpcURL string
	// testCallView allows deterministic unit tests without network sockets.
	testCallView func(ctx context.Context, to string, data []byte) ([]byte, error)
}

// NewFeedClient creates a new feed client
func NewFeedClient(rpcURL string) (*FeedClient, error) {
	client, err := dialFeedClient(rpcURL)
	if err != nil {
		return nil, err
	}
	return &FeedClient{client: client, rpcURL: rpcURL}, nil
}

// NewFeedClientWithCallView creates a feed client that uses an injected
// CallView implementation. This is intended for unit tests where RPC
// sockets are unavailable.
func NewFeedClientWithCallView(callViewFn func(ctx context.Context, to string, data []byte) ([]byte, error)) *FeedClient {
	return &FeedClient{testCallView: callViewFn}
}

// CallView executes a read-only contract call
func (c *FeedClient) CallView(ctx context.Context, to string, data []byte) ([]byte, error) {
	if c.testCallView != nil {
		return c.testCallView(ctx, to, data)
	}
	addr := common.HexToAddress(to)
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	return c.client.CallContract(ctx, msg, nil)
}

// LatestRound reads the feed's most recent round and the decimals that
// scale its answer.
func (c *FeedClient) LatestRound(ctx context.Context, feedAddress string) (*RoundData, error) {
	raw, err := c.CallView(ctx, feedAddress, latestRoundDataSelector)
	if err != nil {
		return nil, fmt.Errorf("latestRoundData call failed: %w", err)
	}
	// (roundId, answer, startedAt, updatedAt, answeredInRound), 32 bytes each
	if len(raw) < 160 {
		return nil, fmt.Errorf("short latestRoundData response: %d bytes", len(raw))
	}

	answer := new(big.Int).SetBytes(raw[32:64])
	// answer is int256; fold the two's complement sign back in
	if raw[32]&0x80 != 0 {
		answer.Sub(answer, new(big.Int).Lsh(big.NewInt(1), 256))
	}
	updatedAt := new(big.Int).SetBytes(raw[96:128])

	rawDecimals, err := c.CallView(ctx, feedAddress, decimalsSelector)
	if err != nil {
		return nil, fmt.Errorf("decimals call failed: %w", err)
	}
	if len(rawDecimals) < 32 {
		return nil, fmt.Errorf("short decimals response: %d bytes", len(rawDecimals))
	}
	decimals := rawDecimals[31]

	return &RoundData{
		Answer:      answer,
		Expo:        -int32(decimals),
		PublishedAt: updatedAt.Int64(),
	}, nil
}

// Close closes the client connection
func (c *FeedClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
