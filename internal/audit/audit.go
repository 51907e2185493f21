package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/example/giro-certo-ops/internal/observability"
)

// Event is one administrative mutation: who did what to which entity.
type Event struct {
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}

// Producer publishes audit events to Kafka. A nil Producer is valid and
// drops events, so deployments without brokers configured simply run silent.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	w := kafka.NewWriter(kafka.WriterConfig{Brokers: brokers, Topic: topic, Balancer: &kafka.LeastBytes{}})
	return &Producer{writer: w}
}

// Record publishes one event, keyed by entity id. Emission is best-effort:
// the mutation already happened upstream and a broker hiccup must not fail
// the operator's request.
func (p *Producer) Record(actor, action, entity, entityID, detail string) error {
	if p == nil {
		return nil
	}
	ev := Event{Actor: actor, Action: action, Entity: entity, EntityID: entityID, Detail: detail, At: time.Now().UTC()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	b, _ := json.Marshal(ev)
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(entityID), Value: b}); err != nil {
		return err
	}
	observability.AuditEventsTotal.Inc()
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
