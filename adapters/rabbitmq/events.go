// Package rabbitmq publishes the domain events that supplement the
// synchronous command results: downstream recall-notification and
// conflict-triage consumers subscribe to these instead of polling the core.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/common/mrabbitmq"
)

// EventPublisher sends best-effort domain-event notifications. A publish
// failure is logged and swallowed: it never unwinds the transaction that
// already committed the event it is reporting.
type EventPublisher struct {
	conn *mrabbitmq.RabbitMQConnection
}

func NewEventPublisher(conn *mrabbitmq.RabbitMQConnection) *EventPublisher {
	return &EventPublisher{conn: conn}
}

// LotQuarantinedBulk is the lot.quarantined.bulk payload: the root lot that
// triggered the forward quarantine walk and how many descendants it reached.
type LotQuarantinedBulk struct {
	RootLotID        int64     `json:"root_lot_id"`
	QuarantinedCount int       `json:"quarantined_count"`
	Reason           string    `json:"reason"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// PublishLotQuarantinedBulk is called once the quarantine-forward
// transaction has committed.
func (p *EventPublisher) PublishLotQuarantinedBulk(ctx context.Context, evt LotQuarantinedBulk) {
	p.publish(ctx, "lot.quarantined.bulk", evt)
}

// OfflineConflictNotice is the offline.conflict payload reported after a
// reconciler group apply fails and its rows are marked conflict.
type OfflineConflictNotice struct {
	ClientTxnID    string    `json:"client_txn_id"`
	CorrelationID  string    `json:"correlation_id"`
	QueueIDs       []int64   `json:"queue_ids"`
	Reason         string    `json:"reason"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// PublishOfflineConflict is called once the SAVEPOINT rollback and conflict
// marking have committed.
func (p *EventPublisher) PublishOfflineConflict(ctx context.Context, evt OfflineConflictNotice) {
	p.publish(ctx, "offline.conflict", evt)
}

func (p *EventPublisher) publish(ctx context.Context, routingKey string, evt any) {
	if p == nil || p.conn == nil {
		return
	}

	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "rabbitmq.publish."+routingKey)
	defer span.End()

	body, err := json.Marshal(evt)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to marshal domain event", err)
		logger.Errorf("failed to marshal %s event: %v", routingKey, err)

		return
	}

	if err := p.conn.Publish(ctx, routingKey, body); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to publish domain event", err)
		logger.Warnf("failed to publish %s event: %v", routingKey, err)
	}
}
