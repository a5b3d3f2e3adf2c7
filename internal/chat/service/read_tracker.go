package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"gomarket/internal/config"
	"gomarket/internal/metrics"
)

type readJob struct {
	conversationID string
	viewerID       string
}

// ReadTracker marks conversations read in the background. Callers never see
// the outcome; a failed or dropped job is repaired by the next trigger.
type ReadTracker struct {
	backend Backend
	jobs    chan readJob
	timeout time.Duration
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
}

func NewReadTracker(backend Backend, cfg *config.Config) *ReadTracker {
	workers := cfg.Chat.ReadWorkers
	if workers <= 0 {
		workers = 1
	}
	queue := cfg.Chat.ReadQueueSize
	if queue <= 0 {
		queue = 64
	}
	timeout := time.Duration(cfg.Chat.ReadTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	rt := &ReadTracker{
		backend: backend,
		jobs:    make(chan readJob, queue),
		timeout: timeout,
	}
	for i := 0; i < workers; i++ {
		rt.wg.Add(1)
		go rt.processJobs()
	}
	return rt
}

// MarkRead reports whether the job was queued.
func (rt *ReadTracker) MarkRead(conversationID, viewerID string) bool {
	if conversationID == "" || viewerID == "" {
		return false
	}

	rt.mu.RLock()
	defer rt.mu.RUnlock()
	if rt.closed {
		return false
	}

	select {
	case rt.jobs <- readJob{conversationID: conversationID, viewerID: viewerID}:
		return true
	default:
		metrics.ReadMarks.WithLabelValues("dropped").Inc()
		glog.Warningf("read tracker: queue full, dropping mark-read for %s", conversationID)
		return false
	}
}

func (rt *ReadTracker) processJobs() {
	defer rt.wg.Done()
	for job := range rt.jobs {
		rt.process(job)
	}
}

func (rt *ReadTracker) process(job readJob) {
	ctx, cancel := context.WithTimeout(context.Background(), rt.timeout)
	defer cancel()

	n, err := rt.backend.MarkRead(ctx, job.conversationID, job.viewerID)
	if err != nil {
		metrics.ReadMarks.WithLabelValues("failed").Inc()
		glog.Errorf("read tracker: mark read %s for %s failed: %v", job.conversationID, job.viewerID, err)
		return
	}
	metrics.ReadMarks.WithLabelValues("ok").Inc()
	glog.V(2).Infof("read tracker: %d messages read in %s by %s", n, job.conversationID, job.viewerID)
}

// Shutdown stops accepting jobs and waits for queued ones to finish.
func (rt *ReadTracker) Shutdown() {
	rt.mu.Lock()
	if rt.closed {
		rt.mu.Unlock()
		return
	}
	rt.closed = true
	close(rt.jobs)
	rt.mu.Unlock()

	rt.wg.Wait()
	glog.Info("read tracker: shutdown complete")
}
