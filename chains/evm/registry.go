// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ChainSafe/wallet-mover/chains/evm/calls/contracts/mover"
)

type OwnerCaller interface {
	Owner(ctx context.Context) (common.Address, error)
}

// ContractRegistry maps chain ids to their mover contract wrappers. It
// doubles as the supported-chain check and as the owner resolution source
// for the workflow admin gate.
type ContractRegistry struct {
	contracts map[string]OwnerCaller
}

func NewContractRegistry() *ContractRegistry {
	return &ContractRegistry{
		contracts: make(map[string]OwnerCaller),
	}
}

func (r *ContractRegistry) RegisterContract(chainID string, contract *mover.MoverContract) {
	r.contracts[chainID] = contract
}

func (r *ContractRegistry) Supported(chainID string) bool {
	_, ok := r.contracts[chainID]
	return ok
}

// ReadOwner resolves the mover contract owner on a chain with a single
// read-only call.
func (r *ContractRegistry) ReadOwner(ctx context.Context, chainID string) (common.Address, error) {
	contract, ok := r.contracts[chainID]
	if !ok {
		return common.Address{}, fmt.Errorf("no mover contract registered for chain %s", chainID)
	}
	return contract.Owner(ctx)
}
