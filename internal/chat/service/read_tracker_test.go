package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gomarket/internal/config"
)

func trackerConfig(workers, queue int) *config.Config {
	return &config.Config{Chat: config.ChatConfig{ReadWorkers: workers, ReadQueueSize: queue, ReadTimeout: 1}}
}

func TestReadTracker_ShutdownDrainsQueue(t *testing.T) {
	backend := newFakeBackend()
	rt := NewReadTracker(backend, trackerConfig(2, 16))

	for i := 0; i < 5; i++ {
		assert.True(t, rt.MarkRead("conv-1", "buyer-1"))
	}
	rt.Shutdown()

	assert.Equal(t, 5, backend.markCount())
	assert.False(t, rt.MarkRead("conv-1", "buyer-1"), "closed tracker refuses work")
	rt.Shutdown()
}

func TestReadTracker_FullQueueDrops(t *testing.T) {
	backend := newFakeBackend()
	backend.markStarted = make(chan struct{}, 4)
	backend.markGate = make(chan struct{})
	rt := NewReadTracker(backend, trackerConfig(1, 1))

	assert.True(t, rt.MarkRead("conv-1", "buyer-1"))
	select {
	case <-backend.markStarted:
	case <-time.After(time.Second):
		t.Fatal("worker did not pick up the job")
	}

	assert.True(t, rt.MarkRead("conv-1", "buyer-1"), "fills the queue")
	assert.False(t, rt.MarkRead("conv-1", "buyer-1"), "dropped")

	close(backend.markGate)
	rt.Shutdown()
	assert.Equal(t, 2, backend.markCount())
}

func TestReadTracker_ErrorsAreSwallowed(t *testing.T) {
	backend := newFakeBackend()
	backend.markErr = errors.New("db down")
	rt := NewReadTracker(backend, trackerConfig(1, 4))

	assert.True(t, rt.MarkRead("conv-1", "buyer-1"))
	rt.Shutdown()
	assert.Equal(t, 1, backend.markCount())
}

func TestReadTracker_IgnoresIncompleteJobs(t *testing.T) {
	rt := NewReadTracker(newFakeBackend(), trackerConfig(1, 4))
	defer rt.Shutdown()

	assert.False(t, rt.MarkRead("", "buyer-1"))
	assert.False(t, rt.MarkRead("conv-1", ""))
}
