// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/wallet-mover/inventory"
)

const DefaultGateway = "https://ipfs.io/ipfs/"

// Resolver turns content-addressed metadata links into fetchable gateway
// URIs and enriches assets from their raw metadata on a best-effort basis.
type Resolver struct {
	gateway string
}

func NewResolver(gateway string) *Resolver {
	if gateway == "" {
		gateway = DefaultGateway
	}
	if !strings.HasSuffix(gateway, "/") {
		gateway = gateway + "/"
	}
	return &Resolver{gateway: gateway}
}

// ResolveLink rewrites ipfs schemes and bare paths onto the configured
// gateway. Plain http(s) links pass through untouched.
func (r *Resolver) ResolveLink(uri string) string {
	switch {
	case uri == "":
		return ""
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return uri
	case strings.HasPrefix(uri, "ipfs://ipfs/"):
		return r.gateway + strings.TrimPrefix(uri, "ipfs://ipfs/")
	case strings.HasPrefix(uri, "ipfs://"):
		return r.gateway + strings.TrimPrefix(uri, "ipfs://")
	case strings.HasPrefix(uri, "/ipfs/"):
		return r.gateway + strings.TrimPrefix(uri, "/ipfs/")
	default:
		return r.gateway + uri
	}
}

type rawMetadata struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Verify fills in the display name and resolved image of an asset from its
// raw metadata. Missing or malformed metadata leaves the asset unchanged,
// it never fails. Verification is idempotent.
func (r *Resolver) Verify(asset inventory.Asset) inventory.Asset {
	if asset.Image != "" {
		return asset
	}
	if asset.RawMetadata == "" {
		log.Debug().Str("asset", asset.Identity.String()).Msg("No metadata found on this NFT")
		return asset
	}

	var meta rawMetadata
	if err := json.Unmarshal([]byte(asset.RawMetadata), &meta); err != nil {
		log.Debug().Err(err).Str("asset", asset.Identity.String()).Msg("Unable to parse NFT metadata")
		return asset
	}

	asset.Image = r.ResolveLink(meta.Image)
	if asset.Name == "" {
		asset.Name = meta.Name
	}
	return asset
}
