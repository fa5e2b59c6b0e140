package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alimikegami/velvet-storefront/config"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxRetries = 3

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	return kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
}

// Publisher writes order events to the configured topic.
type Publisher struct {
	mu   sync.Mutex
	conn *kafka.Conn
	wait func(attempt int) time.Duration
}

func CreatePublisher(conn *kafka.Conn) *Publisher {
	return &Publisher{
		conn: conn,
		wait: func(attempt int) time.Duration { return time.Second * time.Duration(attempt+1) },
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		err = p.writeKafkaMessage(jsonMsg)
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Warn().Err(err).Str("component", "Publish").Int("attempt", i+1).Msg("failed to write Kafka message")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.wait(i)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
}

func (p *Publisher) writeKafkaMessage(msg []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.conn.WriteMessages(kafka.Message{Value: msg})
	return err
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

// NoopPublisher stands in when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", eventType).Msg("broker not configured, event dropped")
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
