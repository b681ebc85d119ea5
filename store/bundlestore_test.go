// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/wallet-mover/inventory"
	"github.com/ChainSafe/wallet-mover/store"
	mock_store "github.com/ChainSafe/wallet-mover/store/mock"
)

type BundleStoreTestSuite struct {
	suite.Suite
	bundleStore          *store.BundleStore
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter
	account              common.Address
	key                  string
}

func TestRunBundleStoreTestSuite(t *testing.T) {
	suite.Run(t, new(BundleStoreTestSuite))
}

func (s *BundleStoreTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.bundleStore = store.NewBundleStore(s.keyValueReaderWriter)
	s.account = common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca")
	s.key = "account:" + s.account.Hex() + ":bundle"
}

func (s *BundleStoreTestSuite) record() store.BackupRecord {
	return store.BackupRecord{
		Account: s.account,
		ChainID: "0x5",
		NFTs: []inventory.Asset{
			{
				Identity:     inventory.NewNFTIdentity(common.HexToAddress("0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66"), "7"),
				ContractType: "ERC721",
			},
		},
		IsBackup: true,
	}
}

func (s *BundleStoreTestSuite) Test_StoreBundle_FailedStore() {
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(s.key), gomock.Any()).Return(errors.New("error"))

	err := s.bundleStore.StoreBundle(s.record())

	s.NotNil(err)
}

func (s *BundleStoreTestSuite) Test_StoreBundle_SuccessfulStore() {
	value, _ := json.Marshal(s.record())
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(s.key), value).Return(nil)

	err := s.bundleStore.StoreBundle(s.record())

	s.Nil(err)
}

func (s *BundleStoreTestSuite) Test_FindBackupBundle_FailedFetch() {
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(s.key)).Return(nil, errors.New("error"))

	_, err := s.bundleStore.FindBackupBundle(s.account)

	s.NotNil(err)
}

func (s *BundleStoreTestSuite) Test_FindBackupBundle_RecordNotFound() {
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(s.key)).Return(nil, leveldb.ErrNotFound)

	record, err := s.bundleStore.FindBackupBundle(s.account)

	s.Nil(err)
	s.False(record.IsBackup)
}

func (s *BundleStoreTestSuite) Test_FindBackupBundle_SuccessfulFetch() {
	value, _ := json.Marshal(s.record())
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(s.key)).Return(value, nil)

	record, err := s.bundleStore.FindBackupBundle(s.account)

	s.Nil(err)
	s.Equal(s.record(), record)
}

func (s *BundleStoreTestSuite) Test_FindBackupBundle_CorruptedRecord() {
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(s.key)).Return([]byte("corrupted"), nil)

	_, err := s.bundleStore.FindBackupBundle(s.account)

	s.NotNil(err)
}

func (s *BundleStoreTestSuite) Test_ClearBundle_MissingRecordIgnored() {
	s.keyValueReaderWriter.EXPECT().DeleteByKey([]byte(s.key)).Return(leveldb.ErrNotFound)

	err := s.bundleStore.ClearBundle(s.account)

	s.Nil(err)
}

func (s *BundleStoreTestSuite) Test_ClearBundle_FailedDelete() {
	s.keyValueReaderWriter.EXPECT().DeleteByKey([]byte(s.key)).Return(errors.New("error"))

	err := s.bundleStore.ClearBundle(s.account)

	s.NotNil(err)
}
