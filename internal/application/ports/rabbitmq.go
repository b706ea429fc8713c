package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"vg-ms-user/internal/infrastructure/mq"
)

type RabbitMQ interface {
	EventSink
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetConn() *amqp091.Connection
}

// EventSink is the part of the broker the services write to.
type EventSink interface {
	GetInputChan() chan mq.Event
}
