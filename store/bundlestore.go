// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/wallet-mover/inventory"
)

var KEY = "account:%s:bundle"

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
	DeleteByKey(key []byte) error
}

// BackupRecord is the persisted shape of a staged-but-unsent transfer
// bundle. IsBackup distinguishes a resumable bundle from no backup at all.
type BackupRecord struct {
	Account  common.Address    `json:"account"`
	ChainID  string            `json:"chainId"`
	Tokens   []inventory.Asset `json:"tokens"`
	NFTs     []inventory.Asset `json:"nfts"`
	IsBackup bool              `json:"isBackup"`
}

// BundleStore persists staged transfer bundles per account so an
// interrupted session can be resumed.
type BundleStore struct {
	db KeyValueReaderWriter
}

func NewBundleStore(db KeyValueReaderWriter) *BundleStore {
	return &BundleStore{
		db: db,
	}
}

// StoreBundle stores the staged bundle of a record under its account.
func (bs *BundleStore) StoreBundle(record BackupRecord) error {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, record.Account.Hex())
	key.WriteString(keyS)

	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = bs.db.SetByKey(key.Bytes(), value)
	if err != nil {
		return err
	}

	return nil
}

// FindBackupBundle returns the stored record for an account. A missing
// record is not an error, it yields a record with IsBackup set to false.
func (bs *BundleStore) FindBackupBundle(account common.Address) (BackupRecord, error) {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, account.Hex())
	key.WriteString(keyS)

	v, err := bs.db.GetByKey(key.Bytes())
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return BackupRecord{IsBackup: false}, nil
		}
		return BackupRecord{}, err
	}

	record := BackupRecord{}
	err = json.Unmarshal(v, &record)
	if err != nil {
		return BackupRecord{}, err
	}

	return record, nil
}

// ClearBundle invalidates the stored record for an account. Clearing an
// account without a record is a no-op.
func (bs *BundleStore) ClearBundle(account common.Address) error {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, account.Hex())
	key.WriteString(keyS)

	err := bs.db.DeleteByKey(key.Bytes())
	if err != nil && !errors.Is(err, leveldb.ErrNotFound) {
		return err
	}

	return nil
}
