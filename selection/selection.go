// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package selection

import (
	"github.com/ChainSafe/wallet-mover/inventory"
)

// Set is an order-preserving, duplicate-free collection of picked assets.
// Uniqueness is keyed by structural asset identity and enforced at every
// mutation site. Mutations return a new Set so a reactive rendering layer
// can rely on replacement rather than in-place change.
type Set struct {
	items []inventory.Asset
}

func New(items ...inventory.Asset) Set {
	s := Set{}
	for _, item := range items {
		if !s.Contains(item) {
			s.items = append(s.items, item)
		}
	}
	return s
}

// Toggle removes the asset when its identity is already present and appends
// it otherwise. A re-selected asset lands at the end of the set, not at its
// original position.
func (s Set) Toggle(asset inventory.Asset) Set {
	items := make([]inventory.Asset, 0, len(s.items)+1)
	removed := false
	for _, item := range s.items {
		if item.Identity.Equal(asset.Identity) {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		items = append(items, asset)
	}
	return Set{items: items}
}

// SelectAll toggles between all of universe selected and nothing selected.
// Any partial selection snaps to the full universe first.
func (s Set) SelectAll(universe []inventory.Asset) Set {
	if len(s.items) < len(universe) {
		return New(universe...)
	}
	return Set{}
}

// AllSelected reports whether the whole universe is currently selected. It
// drives the select-all button label duality.
func (s Set) AllSelected(universe []inventory.Asset) bool {
	return len(s.items) >= len(universe)
}

func (s Set) Contains(asset inventory.Asset) bool {
	for _, item := range s.items {
		if item.Identity.Equal(asset.Identity) {
			return true
		}
	}
	return false
}

func (s Set) Len() int {
	return len(s.items)
}

// Items returns a copy of the selection in insertion order.
func (s Set) Items() []inventory.Asset {
	return append([]inventory.Asset{}, s.items...)
}
