package mq

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"vg-ms-user/config"
)

// "Rely on metrics, not guesses."
const bufferSize = 128

// Routing keys. The topic bindings below cover both aggregates.
const (
	EventUserCreated            = "user.created"
	EventUserUpdated            = "user.updated"
	EventUserActivated          = "user.activated"
	EventUserDeactivated        = "user.deactivated"
	EventUserPermissionsChanged = "user.permissions_changed"

	EventUserSedeCreated   = "user_sede.created"
	EventUserSedeUpdated   = "user_sede.updated"
	EventUserSedeDeleted   = "user_sede.deleted"
	EventUserSedeActivated = "user_sede.activated"
)

var BindingKeys = []string{"user.*", "user_sede.*"}

type (
	InputCh  = chan Event
	RabbitMQ struct {
		cfg   config.MQ
		log   *zap.Logger
		conn  *amqp091.Connection
		pubCh *amqp091.Channel
		in    InputCh
	}
	Event struct {
		Id          uuid.UUID `json:"event_id"`
		TS          time.Time `json:"time_stamp"`
		Action      string    `json:"event_action"`
		AggregateID string    `json:"aggregate_id"`
		Payload     any       `json:"payload"`
	}
)

func NewEvent(action, aggregateID string, payload any) Event {
	return Event{
		Id:          uuid.New(),
		TS:          time.Now().UTC(),
		Action:      action,
		AggregateID: aggregateID,
		Payload:     payload,
	}
}

func New(cfg config.MQ, logger *zap.Logger) *RabbitMQ {
	return &RabbitMQ{
		cfg: cfg,
		log: logger,
		in:  make(chan Event, bufferSize),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	amqpCfg := amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": "vgmsuser",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}

	var err error
	r.conn, err = amqp091.DialConfig(dsn, amqpCfg)
	if err != nil {
		return err
	}
	r.pubCh, err = r.conn.Channel()
	if err != nil {
		_ = r.conn.Close()
		return err
	}

	r.log.Info("rabbitmq connected successfully")

	return nil
}

func (r *RabbitMQ) Init() error {
	if err := r.pubCh.ExchangeDeclare(
		r.cfg.Exchange,
		r.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = r.pubCh.Close()
		return err
	}
	q, err := r.pubCh.QueueDeclare(
		r.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	for _, key := range BindingKeys {
		if err = r.pubCh.QueueBind(q.Name, key, r.cfg.Exchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}

func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker")

	defer func() {
		r.log.Info("publisher worker gracefully stopped")
	}()

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				// alert
				r.log.Error("mq publish error", zap.Error(err), zap.String("event_action", e.Action))
			}
		case <-ctx.Done():
			r.drain()
			_ = r.pubCh.Close()
			return
		}
	}
}

// drain flushes whatever is already buffered; the channel stays open because
// in-flight requests may still send to it.
func (r *RabbitMQ) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				r.log.Error("mq publish on shutdown error", zap.Error(err), zap.String("event_action", e.Action))
			}
		default:
			return
		}
	}
}

func (r *RabbitMQ) publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		// alert
		return err
	}

	pub := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.Id.String(),
		Timestamp:    e.TS,
		Type:         e.Action,
		Body:         b,
	}

	return r.pubCh.PublishWithContext(
		ctx,
		r.cfg.Exchange,
		e.Action,
		false,
		false,
		pub,
	)
}

func (r *RabbitMQ) GetInputChan() chan Event     { return r.in }
func (r *RabbitMQ) GetConn() *amqp091.Connection { return r.conn }
