package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "stay-marketplace/queue"

// tableCarrier adapts amqp.Table to TextMapCarrier for OpenTelemetry propagation
type tableCarrier struct {
	table amqp.Table
}

func (c tableCarrier) Get(key string) string {
	if val, ok := c.table[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
		return fmt.Sprintf("%v", val)
	}
	return ""
}

func (c tableCarrier) Set(key, value string) {
	c.table[key] = value
}

func (c tableCarrier) Keys() []string {
	keys := make([]string, 0, len(c.table))
	for k := range c.table {
		keys = append(keys, k)
	}
	return keys
}

// AMQPDispatcher publishes tasks as persistent JSON messages to a topic exchange.
// amqp channels are not safe for concurrent publishing, hence the mutex.
type AMQPDispatcher struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	mu         sync.Mutex
	exchange   string
	routingKey string
	timeout    time.Duration
}

func NewAMQPDispatcher(cfg config.TaskConfig) (*AMQPDispatcher, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to amqp broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open amqp channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare exchange %s", cfg.Exchange)
	}
	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare queue %s", cfg.Queue)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to bind queue %s", cfg.Queue)
	}

	return &AMQPDispatcher{
		conn:       conn,
		ch:         ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		timeout:    cfg.Timeout,
	}, nil
}

func (d *AMQPDispatcher) Dispatch(ctx context.Context, task shared.Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return errs.Wrapf(err, "failed to encode task %s", task.Name)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "rabbitmq.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination", d.exchange),
			attribute.String("messaging.rabbitmq.routing_key", d.routingKey),
			attribute.String("task.name", task.Name),
		))
	defer span.End()

	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, tableCarrier{table: headers})

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    task.ID.String(),
		Type:         task.Name,
		Timestamp:    task.CreatedAt,
		Body:         body,
		Headers:      headers,
	}

	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ch.PublishWithContext(ctx, d.exchange, d.routingKey, false, false, publishing); err != nil {
		span.RecordError(err)
		return errs.Wrapf(err, "failed to publish task %s", task.Name)
	}
	return nil
}

func (d *AMQPDispatcher) Close() error {
	if err := d.ch.Close(); err != nil && !d.conn.IsClosed() {
		_ = d.conn.Close()
		return err
	}
	return d.conn.Close()
}
