// Package draft keeps unsent composer text per viewer and conversation.
package draft

import (
	"errors"
	"strings"
	"sync"
)

var ErrInvalidKey = errors.New("draft: viewer and conversation are required")

type Store interface {
	Save(viewerID, conversationID, text string) error
	Load(viewerID, conversationID string) (string, error)
	Clear(viewerID, conversationID string) error
}

func key(viewerID, conversationID string) (string, error) {
	if viewerID == "" || conversationID == "" {
		return "", ErrInvalidKey
	}
	return viewerID + "/" + conversationID, nil
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]string)}
}

// Save stores text as typed. Whitespace-only text clears the draft.
func (s *MemoryStore) Save(viewerID, conversationID, text string) error {
	k, err := key(viewerID, conversationID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(text) == "" {
		delete(s.drafts, k)
		return nil
	}
	s.drafts[k] = text
	return nil
}

func (s *MemoryStore) Load(viewerID, conversationID string) (string, error) {
	k, err := key(viewerID, conversationID)
	if err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drafts[k], nil
}

func (s *MemoryStore) Clear(viewerID, conversationID string) error {
	k, err := key(viewerID, conversationID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, k)
	return nil
}
