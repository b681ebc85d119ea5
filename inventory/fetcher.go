// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package inventory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const (
	// PageSize is the fixed number of assets requested per page.
	PageSize = 100
	// MaxPages bounds the fetch to 5 cursor-chained pages (500 assets).
	MaxPages = 5
	// MaxAssets is the hard cap on assets returned from a single fetch.
	MaxAssets = PageSize * MaxPages
)

type PageFetcher interface {
	FetchPage(ctx context.Context, account common.Address, chainID string, cursor string) (*AssetPage, error)
}

// PaginatedAssetFetcher retrieves a bounded, deduplicated NFT inventory for
// an account. Pages are cursor-chained and requested strictly sequentially.
type PaginatedAssetFetcher struct {
	source  PageFetcher
	loading atomic.Bool
}

func NewPaginatedAssetFetcher(source PageFetcher) *PaginatedAssetFetcher {
	return &PaginatedAssetFetcher{source: source}
}

// Loading reports whether a fetch is currently in flight.
func (f *PaginatedAssetFetcher) Loading() bool {
	return f.loading.Load()
}

// FetchAll fetches up to MaxPages pages and returns the concatenated items in
// page order together with the full inventory size reported by the source.
// total greater than len(items) means the inventory was truncated at the cap.
// Any page failure aborts the whole fetch with no partial result.
func (f *PaginatedAssetFetcher) FetchAll(ctx context.Context, account common.Address, chainID string) ([]Asset, int, error) {
	f.loading.Store(true)
	defer f.loading.Store(false)

	page, err := f.source.FetchPage(ctx, account, chainID, "")
	if err != nil {
		return nil, 0, fmt.Errorf("unable to fetch inventory page 0: %w", err)
	}
	total := page.Total
	items := append([]Asset{}, page.Items...)

	for fetched := 1; fetched < MaxPages && page.NextCursor != ""; fetched++ {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		page, err = f.source.FetchPage(ctx, account, chainID, page.NextCursor)
		if err != nil {
			return nil, 0, fmt.Errorf("unable to fetch inventory page %d: %w", fetched, err)
		}
		items = append(items, page.Items...)
	}

	if len(items) > MaxAssets {
		items = items[:MaxAssets]
	}
	items = dedupAssets(items)

	log.Debug().
		Str("account", account.Hex()).
		Str("chainID", chainID).
		Int("fetched", len(items)).
		Int("total", total).
		Msg("Fetched NFT inventory")
	return items, total, nil
}

// dedupAssets drops later occurrences of an identity while preserving page
// order. The upstream source guarantees distinct entries per page, this only
// protects against duplicates across page boundaries.
func dedupAssets(items []Asset) []Asset {
	seen := make(map[AssetIdentity]struct{}, len(items))
	deduped := make([]Asset, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Identity]; ok {
			continue
		}
		seen[item.Identity] = struct{}{}
		deduped = append(deduped, item)
	}
	return deduped
}
