package outbox

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/souqpay/souqpay/internal/domain"
)

const (
	maxAttempts   = 3
	retryInterval = time.Second * 1
)

// inFlight guards against the same event being published by two overlapping
// ticks; MarkPublished is the durable dedup, this just avoids wasted sends.
var inFlight sync.Map

type Repo interface {
	FindUnpublished(ctx context.Context, limit uint32) ([]domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, evt domain.OutboxEvent) error
}

// Dispatcher drains the transactional outbox: every committed ledger, payment
// and settlement event is eventually published at least once; consumers dedup
// on the event id.
type Dispatcher struct {
	repo         Repo
	publisher    Publisher
	limit        uint32
	pool         TaskPool
	pollInterval time.Duration
}

func New(repo Repo, publisher Publisher) *Dispatcher {
	return &Dispatcher{
		repo:         repo,
		publisher:    publisher,
		limit:        1000,
		pool:         newPublishPool(10),
		pollInterval: time.Second * 5,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("Outbox dispatcher started")
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()
	// Close drains queued publish tasks before the workers exit
	defer d.pool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			return
		case <-ticker.C:
			d.drain(ctx)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	events, err := d.repo.FindUnpublished(ctx, atomic.LoadUint32(&d.limit))
	if err != nil {
		zap.L().Error("Failed to fetch unpublished events", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, evt := range events {
		evt := evt

		if _, loaded := inFlight.LoadOrStore(evt.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.pool.Submit(ctx, func() error {
				defer inFlight.Delete(evt.ID)
				return d.handleEvent(ctx, evt)
			})
			if err != nil {
				inFlight.Delete(evt.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching events", zap.Error(err))
	}
}

func (d *Dispatcher) handleEvent(ctx context.Context, evt domain.OutboxEvent) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err = d.publisher.Publish(ctx, evt); err != nil {
				if attempt < maxAttempts {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to publish event %s after %d attempts: %w", evt.ID, maxAttempts, err)
			}

			if err := d.repo.MarkPublished(ctx, evt.ID); err != nil {
				// the event stays unpublished and will be re-sent next tick
				return fmt.Errorf("failed to mark event %s published: %w", evt.ID, err)
			}
			zap.L().Info("Event published",
				zap.String("eventID", evt.ID), zap.String("eventType", evt.EventType))
			return nil
		}
	}
	return nil
}

// KafkaPublisher writes outbox events to a Kafka topic keyed by aggregate id
// so per-aggregate ordering survives partitioning.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt domain.OutboxEvent) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%d", evt.Aggregate, evt.AggregateID)),
		Value: evt.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(evt.ID)},
			{Key: "event_type", Value: []byte(evt.EventType)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
