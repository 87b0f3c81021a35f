package outboxrepo

import (
	"context"

	"github.com/souqpay/souqpay/internal/domain"
	"github.com/souqpay/souqpay/internal/pg"
	"go.uber.org/zap"
)

// Repository stores integration events in the same database transaction as
// the state change they describe. The dispatcher drains unpublished rows.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, evt *domain.OutboxEvent) error {
	query := `
		INSERT INTO event_outbox (id, aggregate, aggregate_id, event_type, payload)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, evt.ID, evt.Aggregate, evt.AggregateID, evt.EventType, evt.Payload)
	if err != nil {
		zap.L().Error("can't append outbox event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnpublished(ctx context.Context, limit uint32) ([]domain.OutboxEvent, error) {
	query := `
        SELECT id, aggregate, aggregate_id, event_type, payload, published, published_at, created_at
        FROM event_outbox
        WHERE NOT published
        ORDER BY created_at
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't fetch outbox events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var evt domain.OutboxEvent
		err := rows.Scan(&evt.ID, &evt.Aggregate, &evt.AggregateID, &evt.EventType,
			&evt.Payload, &evt.Published, &evt.PublishedAt, &evt.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan outbox row", zap.Error(err))
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, id string) error {
	query := `
		UPDATE event_outbox
		SET published = true, published_at = now()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark outbox event published", zap.Error(err))
		return err
	}
	return nil
}
