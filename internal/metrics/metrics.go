// Package metrics holds the Prometheus collectors of the chat core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "gomarket"
	subsystem = "chat"
)

var (
	// StoreIngest counts Message Store appends by result (applied, duplicate, stale).
	StoreIngest = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_ingest_total",
		Help:      "Messages offered to a conversation store, by result.",
	}, []string{"result"})

	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "events_dropped_total",
		Help:      "Realtime events dropped before reaching a store.",
	}, []string{"reason"})

	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "attachment_uploads_total",
		Help:      "Attachment uploads by result.",
	}, []string{"result"})

	UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "attachment_bytes",
		Help:      "Size of uploaded attachments.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
	})

	Sends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sends_total",
		Help:      "Send pipeline outcomes.",
	}, []string{"result"})

	ReadMarks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "read_marks_total",
		Help:      "Read tracker jobs by result.",
	}, []string{"result"})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "push_subscribers",
		Help:      "Live push channel subscriptions on this node.",
	})
)
