package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gomarket/internal/chat/message"
	"gomarket/internal/dbmysql"
)

// fakeBackend keeps conversations in memory and records calls.
type fakeBackend struct {
	mu            sync.Mutex
	conversations map[string]Conversation
	inserted      []message.Message
	insertErr     error
	marks         []readJob
	markErr       error
	markStarted   chan struct{}
	markGate      chan struct{}
	findCalls     int
	findStarted   chan struct{}
	findGate      chan struct{}
	findCtxErr    error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{conversations: make(map[string]Conversation)}
}

func (f *fakeBackend) InsertMessage(ctx context.Context, m message.Message) (message.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return message.Message{}, f.insertErr
	}
	m.ID = uuid.NewString()
	f.inserted = append(f.inserted, m)
	return m, nil
}

func (f *fakeBackend) History(ctx context.Context, conversationID string, offset, limit int) ([]message.Message, error) {
	return nil, nil
}

func (f *fakeBackend) MarkRead(ctx context.Context, conversationID, viewerID string) (int64, error) {
	if f.markStarted != nil {
		f.markStarted <- struct{}{}
	}
	if f.markGate != nil {
		<-f.markGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marks = append(f.marks, readJob{conversationID: conversationID, viewerID: viewerID})
	return 1, f.markErr
}

func (f *fakeBackend) FindOrCreateConversation(ctx context.Context, buyerID, sellerID, contractID string) (Conversation, error) {
	if f.findStarted != nil {
		f.findStarted <- struct{}{}
	}
	if f.findGate != nil {
		<-f.findGate
	}
	f.mu.Lock()
	f.findCtxErr = ctx.Err()
	defer f.mu.Unlock()
	f.findCalls++
	low, high := dbmysql.OrderedPair(buyerID, sellerID)
	key := low + "|" + high
	if c, ok := f.conversations[key]; ok {
		return c, nil
	}
	c := Conversation{ID: uuid.NewString(), BuyerID: buyerID, SellerID: sellerID, ContractID: contractID}
	f.conversations[key] = c
	return c, nil
}

func (f *fakeBackend) GetConversation(ctx context.Context, conversationID string) (Conversation, error) {
	return Conversation{}, nil
}

func (f *fakeBackend) markCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.marks)
}
