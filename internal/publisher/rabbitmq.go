package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"library_landing/internal/domain"
)

// RabbitMQ broadcasts acquired snapshots on a fanout exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	// QueueName, when set, declares and binds a queue so snapshots are
	// kept for consumers that connect later.
	QueueName  string
	MessageTTL time.Duration
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("exchange", cfg.Exchange)
	logger.Info("snapshot publisher ready", "queue", cfg.QueueName)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if cfg.QueueName == "" {
		return nil
	}

	var args amqp.Table
	if cfg.MessageTTL > 0 {
		args = amqp.Table{"x-message-ttl": cfg.MessageTTL.Milliseconds()}
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// StatsMessage is the body published for every acquired snapshot.
type StatsMessage struct {
	Origin         domain.Origin `json:"origin"`
	BooksTotal     int64         `json:"total_books"`
	StudentsTotal  int64         `json:"total_students"`
	BooksIssued    int64         `json:"books_issued"`
	BooksAvailable int64         `json:"available_books"`
	AcquiredAt     time.Time     `json:"acquired_at"`
	Timestamp      time.Time     `json:"timestamp"`
}

func NewStatsMessage(snapshot *domain.Snapshot) StatsMessage {
	return StatsMessage{
		Origin:         snapshot.Origin,
		BooksTotal:     snapshot.Stats.BooksTotal,
		StudentsTotal:  snapshot.Stats.StudentsTotal,
		BooksIssued:    snapshot.Stats.BooksIssued,
		BooksAvailable: snapshot.Stats.BooksAvailable,
		AcquiredAt:     snapshot.AcquiredAt.UTC(),
		Timestamp:      time.Now().UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, snapshot *domain.Snapshot) error {
	body, err := json.Marshal(NewStatsMessage(snapshot))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
			Type:        "stats." + string(snapshot.Origin),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published snapshot", "origin", snapshot.Origin)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
