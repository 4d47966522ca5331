package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var slotBucket = []byte("slots")

// BoltSlot persists values in a single bbolt file.
type BoltSlot struct {
	db *bolt.DB
}

// OpenBoltSlot opens (or creates) the bbolt file at path.
func OpenBoltSlot(path string) (*BoltSlot, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(slotBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt bucket: %w", err)
	}
	return &BoltSlot{db: db}, nil
}

func (b *BoltSlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(slotBucket).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction
			data = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

func (b *BoltSlot) Write(_ context.Context, key string, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(slotBucket).Put([]byte(key), data)
	})
}

func (b *BoltSlot) Close(context.Context) error {
	return b.db.Close()
}
