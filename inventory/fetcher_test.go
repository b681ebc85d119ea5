// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/wallet-mover/inventory"
	mock_inventory "github.com/ChainSafe/wallet-mover/inventory/mock"
)

type FetcherTestSuite struct {
	suite.Suite
	fetcher    *inventory.PaginatedAssetFetcher
	mockSource *mock_inventory.MockPageFetcher
	account    common.Address
	chainID    string
}

func TestRunFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

func (s *FetcherTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockSource = mock_inventory.NewMockPageFetcher(ctrl)
	s.fetcher = inventory.NewPaginatedAssetFetcher(s.mockSource)
	s.account = common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca")
	s.chainID = "0x1"
}

func makeAssets(start, count int) []inventory.Asset {
	assets := make([]inventory.Asset, count)
	for i := 0; i < count; i++ {
		assets[i] = inventory.Asset{
			Identity: inventory.NewNFTIdentity(
				common.HexToAddress("0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66"),
				fmt.Sprint(start+i),
			),
			ContractType: "ERC721",
		}
	}
	return assets
}

func (s *FetcherTestSuite) Test_SinglePageInventory_OneRequest() {
	s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "").Return(&inventory.AssetPage{
		Items: makeAssets(0, 42),
		Total: 42,
	}, nil)

	items, total, err := s.fetcher.FetchAll(context.Background(), s.account, s.chainID)

	s.Nil(err)
	s.Equal(42, total)
	s.Len(items, 42)
}

func (s *FetcherTestSuite) Test_MidSizeInventory_SequentialPages() {
	gomock.InOrder(
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "").Return(&inventory.AssetPage{
			Items:      makeAssets(0, 100),
			NextCursor: "c1",
			Total:      250,
		}, nil),
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "c1").Return(&inventory.AssetPage{
			Items:      makeAssets(100, 100),
			NextCursor: "c2",
			Total:      250,
		}, nil),
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "c2").Return(&inventory.AssetPage{
			Items: makeAssets(200, 50),
			Total: 250,
		}, nil),
	)

	items, total, err := s.fetcher.FetchAll(context.Background(), s.account, s.chainID)

	s.Nil(err)
	s.Equal(250, total)
	s.Len(items, 250)
	s.Equal("0", items[0].Identity.TokenID)
	s.Equal("249", items[249].Identity.TokenID)
}

func (s *FetcherTestSuite) Test_OversizedInventory_CappedAtFivePages() {
	cursor := ""
	for page := 0; page < inventory.MaxPages; page++ {
		nextCursor := fmt.Sprintf("c%d", page+1)
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, cursor).Return(&inventory.AssetPage{
			Items:      makeAssets(page*inventory.PageSize, inventory.PageSize),
			NextCursor: nextCursor,
			Total:      620,
		}, nil)
		cursor = nextCursor
	}

	items, total, err := s.fetcher.FetchAll(context.Background(), s.account, s.chainID)

	s.Nil(err)
	s.Equal(620, total)
	s.Len(items, inventory.MaxAssets)
	s.Greater(total, len(items))
}

func (s *FetcherTestSuite) Test_PageFetchFails_NoPartialResult() {
	gomock.InOrder(
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "").Return(&inventory.AssetPage{
			Items:      makeAssets(0, 100),
			NextCursor: "c1",
			Total:      150,
		}, nil),
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "c1").Return(nil, fmt.Errorf("error")),
	)

	items, total, err := s.fetcher.FetchAll(context.Background(), s.account, s.chainID)

	s.NotNil(err)
	s.Nil(items)
	s.Equal(0, total)
	s.False(s.fetcher.Loading())
}

func (s *FetcherTestSuite) Test_DuplicatesAcrossPages_Deduplicated() {
	gomock.InOrder(
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "").Return(&inventory.AssetPage{
			Items:      makeAssets(0, 100),
			NextCursor: "c1",
			Total:      150,
		}, nil),
		// second page repeats the last 50 identities of the first page
		s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "c1").Return(&inventory.AssetPage{
			Items: makeAssets(50, 100),
			Total: 150,
		}, nil),
	)

	items, _, err := s.fetcher.FetchAll(context.Background(), s.account, s.chainID)

	s.Nil(err)
	s.Len(items, 150)
	s.Equal("0", items[0].Identity.TokenID)
	s.Equal("149", items[149].Identity.TokenID)
}

func (s *FetcherTestSuite) Test_ContextCancelled_FetchAborted() {
	ctx, cancel := context.WithCancel(context.Background())
	s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "").DoAndReturn(
		func(context.Context, common.Address, string, string) (*inventory.AssetPage, error) {
			cancel()
			return &inventory.AssetPage{
				Items:      makeAssets(0, 100),
				NextCursor: "c1",
				Total:      200,
			}, nil
		})

	items, _, err := s.fetcher.FetchAll(ctx, s.account, s.chainID)

	s.ErrorIs(err, context.Canceled)
	s.Nil(items)
}

func (s *FetcherTestSuite) Test_EmptyInventory() {
	s.mockSource.EXPECT().FetchPage(gomock.Any(), s.account, s.chainID, "").Return(&inventory.AssetPage{
		Items: []inventory.Asset{},
		Total: 0,
	}, nil)

	items, total, err := s.fetcher.FetchAll(context.Background(), s.account, s.chainID)

	s.Nil(err)
	s.Equal(0, total)
	s.Len(items, 0)
}
