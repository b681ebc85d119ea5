// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package inventory

// Asset is a single fetched inventory item. Image and Name are derived from
// metadata after the fetch and may stay empty when no metadata is available.
type Asset struct {
	Identity     AssetIdentity `json:"identity"`
	Amount       string        `json:"amount,omitempty"`
	ContractType string        `json:"contractType"`
	RawMetadata  string        `json:"metadata,omitempty"`
	Image        string        `json:"image,omitempty"`
	Name         string        `json:"name,omitempty"`
}

// AssetPage is one page of the upstream inventory source. NextCursor is empty
// on the last page. Total is the full inventory size, which can exceed the
// number of items the fetcher is willing to return.
type AssetPage struct {
	Items      []Asset
	NextCursor string
	Total      int
}
