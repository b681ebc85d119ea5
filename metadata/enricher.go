// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ChainSafe/wallet-mover/inventory"
)

// Enricher decorates an inventory page source and verifies the metadata of
// every fetched asset before it reaches the selection layer.
type Enricher struct {
	source   inventory.PageFetcher
	resolver *Resolver
}

func NewEnricher(source inventory.PageFetcher, resolver *Resolver) *Enricher {
	return &Enricher{source: source, resolver: resolver}
}

func (e *Enricher) FetchPage(ctx context.Context, account common.Address, chainID string, cursor string) (*inventory.AssetPage, error) {
	page, err := e.source.FetchPage(ctx, account, chainID, cursor)
	if err != nil {
		return nil, err
	}

	for i, asset := range page.Items {
		page.Items[i] = e.resolver.Verify(asset)
	}
	return page, nil
}
