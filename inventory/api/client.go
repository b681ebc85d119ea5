// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ChainSafe/wallet-mover/inventory"
)

// Client fetches NFT inventory pages from an indexer HTTP API. It
// implements the page source contract of the paginated fetcher.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL string, apiKey string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

type rawAsset struct {
	TokenAddress string `json:"token_address"`
	TokenID      string `json:"token_id"`
	Amount       string `json:"amount"`
	ContractType string `json:"contract_type"`
	Name         string `json:"name"`
	Metadata     string `json:"metadata"`
}

type rawPage struct {
	Result []rawAsset `json:"result"`
	Cursor string     `json:"cursor"`
	Total  int        `json:"total"`
}

func (c *Client) FetchPage(ctx context.Context, account common.Address, chainID string, cursor string) (*inventory.AssetPage, error) {
	query := url.Values{}
	query.Set("chain", chainID)
	query.Set("limit", strconv.Itoa(inventory.PageSize))
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/%s/nft?%s", c.baseURL, account.Hex(), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	page := rawPage{}
	err = json.Unmarshal(body, &page)
	if err != nil {
		return nil, err
	}

	items := make([]inventory.Asset, 0, len(page.Result))
	for _, raw := range page.Result {
		items = append(items, inventory.Asset{
			Identity:     inventory.NewNFTIdentity(common.HexToAddress(raw.TokenAddress), raw.TokenID),
			Amount:       raw.Amount,
			ContractType: raw.ContractType,
			Name:         raw.Name,
			RawMetadata:  raw.Metadata,
		})
	}
	return &inventory.AssetPage{
		Items:      items,
		NextCursor: page.Cursor,
		Total:      page.Total,
	}, nil
}
