package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	kafka "github.com/segmentio/kafka-go"

	"gomarket/internal/config"
	"gomarket/internal/metrics"
)

const (
	kafkaWriteTimeout = 3 * time.Second

	BackoffMinInterval = 1 * time.Second
	BackoffMaxInterval = 60 * time.Second
	BackoffMultiplier  = 1.5
)

type IKafkaReader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

type IKafkaWriter interface {
	WriteMessages(context.Context, ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafkaReader joins a consumer group private to nodeID: every chat node
// must see every event.
func NewKafkaReader(cfg *config.Config, nodeID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Kafka.Brokers,
		Topic:       cfg.Kafka.Topic,
		GroupID:     fmt.Sprintf("%s-%s", cfg.Kafka.GroupID, nodeID),
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
}

// KafkaPublisher writes envelopes keyed by conversation id, so one
// conversation stays on one partition and keeps its order.
type KafkaPublisher struct {
	writer IKafkaWriter
}

func NewKafkaPublisher(writer IKafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	value, err := ev.Encode()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, kafkaWriteTimeout)
	defer cancel()
	km := kafka.Message{
		Key:   []byte(ev.ConversationID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, km); err != nil {
		return fmt.Errorf("error write to kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Relay consumes the event topic and feeds the local hub.
type Relay struct {
	reader IKafkaReader
	hub    *Hub
	wg     sync.WaitGroup
}

func NewRelay(reader IKafkaReader, hub *Hub) *Relay {
	return &Relay{reader: reader, hub: hub}
}

// Run blocks until ctx is done, then closes the reader.
func (r *Relay) Run(ctx context.Context) {
	glog.Info("relay: starting")

	r.wg.Add(1)
	go r.consumeLoop(ctx)

	<-ctx.Done()

	glog.Info("relay: stopping")
	_ = r.reader.Close()
	r.wg.Wait()
	glog.Info("relay: stopped")
}

func (r *Relay) consumeLoop(ctx context.Context) {
	defer func() {
		glog.Info("relay: consume loop exited")
		r.wg.Done()
	}()

	var sleep time.Duration
	for {
		msg, err := r.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			glog.Errorf("relay: fetch from kafka err: %v", err)
			if !wait(ctx, &sleep) {
				return
			}
			continue
		}
		sleep = 0

		r.deliver(msg)

		for {
			err := r.reader.CommitMessages(ctx, msg)
			if err == nil {
				sleep = 0
				break
			}
			// uncommitted messages are fetched again; the store dedups them
			glog.Errorf("relay: commit to kafka err: %v", err)
			if errors.Is(err, context.Canceled) || !wait(ctx, &sleep) {
				return
			}
		}
	}
}

func (r *Relay) deliver(msg kafka.Message) {
	if len(msg.Key) == 0 {
		metrics.EventsDropped.WithLabelValues("unkeyed").Inc()
		glog.Warningf("relay: skipping unkeyed message at offset %d", msg.Offset)
		return
	}
	n := r.hub.Deliver(string(msg.Key), msg.Value)
	glog.V(2).Infof("relay: offset %d for %s reached %d subscribers", msg.Offset, msg.Key, n)
}

func wait(ctx context.Context, d *time.Duration) bool {
	backoff(d)
	select {
	case <-time.After(*d):
		return true
	case <-ctx.Done():
		return false
	}
}

func backoff(d *time.Duration) {
	if *d == 0 {
		*d = BackoffMinInterval
	} else {
		*d = time.Duration(float64(*d) * BackoffMultiplier).Truncate(time.Millisecond)
		if *d > BackoffMaxInterval {
			*d = BackoffMaxInterval
		}
	}
}
