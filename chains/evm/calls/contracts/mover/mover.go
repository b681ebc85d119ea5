// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mover

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ChainSafe/wallet-mover/chains/evm/calls/contracts"
)

// Fragment of the mover contract ABI covering the read-only calls the
// workflow needs.
const MoverABI = `[
	{
		"inputs": [],
		"name": "owner",
		"outputs": [{"internalType": "address", "name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

type MoverContract struct {
	contracts.Contract
}

func NewMoverContract(client contracts.ContractCaller, contractAddress common.Address) *MoverContract {
	a, _ := abi.JSON(strings.NewReader(MoverABI))
	return &MoverContract{
		Contract: contracts.NewContract(contractAddress, a, client),
	}
}

// Owner issues a single read-only owner() call and returns the admin
// address of the mover contract.
func (c *MoverContract) Owner(ctx context.Context) (common.Address, error) {
	res, err := c.CallContract(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}

	owner, ok := res[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected owner() return value %v", res[0])
	}
	return owner, nil
}
