// Package broker delivers outbox jobs to RabbitMQ.
package broker

import (
	"context"
	"sync"
	"time"

	"hotel-reservation/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Message ID is the outbox job id; redeliveries reuse it.
type Message struct {
	ID      string
	Topic   string
	Payload []byte
}

// Confirmation resolves once the broker has taken responsibility for a
// message (ack) or refused it (nack). *amqp.DeferredConfirmation satisfies it.
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// Publisher hands a message to the broker. A nil error only means the frame
// was written; delivery is settled by the returned Confirmation.
type Publisher interface {
	Publish(ctx context.Context, msg Message) (Confirmation, error)
	Close() error
}

// AMQPPublisher keeps one connection and a confirm-mode channel open and
// reopens them on the next publish after a failure.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) (Confirmation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return nil, err
	}

	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			MessageId:    msg.ID,
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         msg.Topic,
			Timestamp:    time.Now().UTC(),
			Body:         msg.Payload,
		},
	)
	if err != nil {
		p.reset()
		return nil, errs.Wrap(err, "amqp publish failed")
	}
	if dc == nil {
		// only happens when the channel is not in confirm mode
		p.reset()
		return nil, errs.New("amqp channel returned no confirmation")
	}
	return dc, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "amqp channel open failed")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "amqp confirm mode failed")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "amqp queue declare failed")
	}

	p.conn, p.ch = conn, ch
	return nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
