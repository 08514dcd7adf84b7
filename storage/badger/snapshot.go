// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/storage"
)

// SnapshotStore implements storage.CatalogSnapshotStore on BadgerDB.
type SnapshotStore struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.CatalogSnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a snapshot store on the given backend.
// The store does not own the backend; the caller closes it.
func NewSnapshotStore(backend *Backend) (*SnapshotStore, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &SnapshotStore{
		backend: backend,
		logger:  slog.Default().With("component", "snapshot-store"),
	}, nil
}

// SaveSnapshot replaces the stored snapshot wholesale: previous record
// entries are removed, the new records are written in catalog order,
// and the metadata is stamped with the current time. The whole
// replacement commits as one transaction.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, records []core.CatalogRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	meta := &storage.SnapshotMeta{
		TakenAt: time.Now().UTC(),
		Count:   len(records),
	}

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		if err := deletePrefix(tx, []byte(snapshotRecordColon)); err != nil {
			return err
		}
		for i := range records {
			data := storage.MarshalCatalogRecord(&records[i])
			if err := tx.Set(makeSnapshotRecordKey(i), data); err != nil {
				return err
			}
		}
		if err := tx.Set([]byte(snapshotMetaKey), storage.MarshalSnapshotMeta(meta)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return fmt.Errorf("saving catalog snapshot: %w", err)
	}

	s.logger.Debug("saved catalog snapshot", "records", len(records))
	return nil
}

// LoadSnapshot returns the stored records in their original order plus
// the time the snapshot was taken. Returns storage.ErrNoSnapshot when
// nothing has been saved.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) ([]core.CatalogRecord, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, time.Time{}, err
	}

	var meta *storage.SnapshotMeta
	var records []core.CatalogRecord

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(snapshotMetaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNoSnapshot
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			meta, err = storage.UnmarshalSnapshotMeta(val)
			return err
		}); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
		}

		records = make([]core.CatalogRecord, 0, meta.Count)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotRecordColon)
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalCatalogRecord(val)
				if err != nil {
					return err
				}
				records = append(records, *record)
				return nil
			})
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, time.Time{}, err
	}

	return records, meta.TakenAt, nil
}

// Close implements storage.CatalogSnapshotStore. The shared backend is
// closed by its owner, not here.
func (s *SnapshotStore) Close() error {
	return nil
}

// deletePrefix removes every key under the prefix within the transaction.
func deletePrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
