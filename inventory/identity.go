// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package inventory

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// AssetIdentity uniquely identifies an on-chain asset. NFTs are keyed by
// contract address and token id, fungible tokens by contract address alone
// with an empty token id. Identity comparison is structural.
type AssetIdentity struct {
	ContractAddress common.Address
	TokenID         string
}

func NewNFTIdentity(contractAddress common.Address, tokenID string) AssetIdentity {
	return AssetIdentity{
		ContractAddress: contractAddress,
		TokenID:         tokenID,
	}
}

func NewTokenIdentity(contractAddress common.Address) AssetIdentity {
	return AssetIdentity{
		ContractAddress: contractAddress,
	}
}

func (i AssetIdentity) Equal(other AssetIdentity) bool {
	return i == other
}

func (i AssetIdentity) String() string {
	if i.TokenID == "" {
		return i.ContractAddress.Hex()
	}
	return fmt.Sprintf("%s:%s", i.ContractAddress.Hex(), i.TokenID)
}
