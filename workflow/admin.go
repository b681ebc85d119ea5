// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package workflow

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

type OwnerReader interface {
	ReadOwner(ctx context.Context, chainID string) (common.Address, error)
}

// AdminGate resolves whether an account is the mover contract admin on a
// chain. A failed resolution is logged and treated as non-admin, it is
// never retried.
type AdminGate struct {
	owners OwnerReader
}

func NewAdminGate(owners OwnerReader) *AdminGate {
	return &AdminGate{
		owners: owners,
	}
}

func (g *AdminGate) Resolve(ctx context.Context, account common.Address, chainID string) bool {
	owner, err := g.owners.ReadOwner(ctx, chainID)
	if err != nil {
		log.Warn().Err(err).Str("chainID", chainID).Msg("Unable to resolve mover contract owner")
		return false
	}
	return owner == account
}
