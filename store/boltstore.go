// Package store persists a campaign's state surface in bbolt so a process
// restart can resume the campaign where it left off.
package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/wilsoncusack/crowdfund/campaign"
)

var (
	bucketCampaign = []byte("campaign")
	keySnapshot    = []byte("snapshot")
)

// BoltStore wraps a bbolt database holding campaign snapshots.
type BoltStore struct {
	db *bbolt.DB
}

// Open opens or creates the bbolt database at dbPath. The parent directory
// is created if it does not exist.
func Open(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(bucketCampaign)
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// SaveSnapshot persists a campaign snapshot, replacing any previous one.
func (s *BoltStore) SaveSnapshot(snap *campaign.Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	data, err := encodeGob(snap)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if putErr := tx.Bucket(bucketCampaign).Put(keySnapshot, data); putErr != nil {
			return fmt.Errorf("store: put snapshot: %w", putErr)
		}
		return nil
	})
}

// LoadSnapshot retrieves the persisted campaign snapshot.
func (s *BoltStore) LoadSnapshot() (*campaign.Snapshot, error) {
	var snap campaign.Snapshot
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCampaign).Get(keySnapshot)
		if data == nil {
			return ErrNoSnapshot
		}
		return decodeGob(data, &snap)
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
