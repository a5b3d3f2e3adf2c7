package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"
	bolt "go.etcd.io/bbolt"
)

var draftsBucket = []byte("drafts")

// BoltStore persists drafts in a bbolt file so they survive restarts.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open draft db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(draftsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create drafts bucket: %w", err)
	}
	glog.V(1).Infof("draft: opened %s", path)
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Save(viewerID, conversationID, text string) error {
	if strings.TrimSpace(text) == "" {
		return s.Clear(viewerID, conversationID)
	}
	k, err := key(viewerID, conversationID)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Put([]byte(k), []byte(text))
	})
}

func (s *BoltStore) Load(viewerID, conversationID string) (string, error) {
	k, err := key(viewerID, conversationID)
	if err != nil {
		return "", err
	}
	var text string
	err = s.db.View(func(tx *bolt.Tx) error {
		// the value is only valid inside the transaction
		if v := tx.Bucket(draftsBucket).Get([]byte(k)); v != nil {
			text = string(v)
		}
		return nil
	})
	return text, err
}

func (s *BoltStore) Clear(viewerID, conversationID string) error {
	k, err := key(viewerID, conversationID)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Delete([]byte(k))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
