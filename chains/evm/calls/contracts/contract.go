// Copyright 2021 ChainSafe Systems
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Contract is a base for read-only contract wrappers. It packs call data,
// executes the call against the latest block and unpacks the result.
type Contract struct {
	contractAddress common.Address
	abi             abi.ABI
	client          ContractCaller
}

func NewContract(contractAddress common.Address, abi abi.ABI, client ContractCaller) Contract {
	return Contract{
		contractAddress: contractAddress,
		abi:             abi,
		client:          client,
	}
}

func (c *Contract) ContractAddress() *common.Address {
	return &c.contractAddress
}

func (c *Contract) CallContract(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	msg := ethereum.CallMsg{To: &c.contractAddress, Data: input}
	out, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		log.Debug().Msgf("No return value on call to %s method %s", c.contractAddress, method)
	}

	return c.abi.Unpack(method, out)
}
