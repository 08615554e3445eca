package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"shop-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeType = "topic"

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Connect dials the broker, opens a channel and declares the durable topic exchange.
func Connect(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,     // name
		exchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}
	return conn, ch, nil
}

// RabbitPublisher serialises publishes on one channel.
type RabbitPublisher struct {
	mu       sync.Mutex
	ch       channel
	exchange string
	log      *zap.SugaredLogger
}

func NewRabbitPublisher(ch *amqp.Channel, exchange string, log *zap.SugaredLogger) *RabbitPublisher {
	return newRabbitPublisher(ch, exchange, log)
}

func newRabbitPublisher(ch channel, exchange string, log *zap.SugaredLogger) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, exchange: exchange, log: logger.OrNop(log).With("component", "events")}
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, evt OrderPlaced) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		RoutingKeyOrderPlaced,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    evt.OrderTrackingNumber,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", RoutingKeyOrderPlaced, err)
	}
	p.log.Debugw("published", "routingKey", RoutingKeyOrderPlaced, "trackingNumber", evt.OrderTrackingNumber)
	return nil
}
