package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the JSON published for every audit event.
type Envelope struct {
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   *uint     `json:"entity_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaSink publishes audit events keyed by entity so one appointment's
// history stays ordered within a partition.
type KafkaSink struct {
	w   messageWriter
	log *slog.Logger
}

func NewKafkaSink(brokers, topic string, log *slog.Logger) *KafkaSink {
	w := &kafka.Writer{
		Addr:         kafka.TCP(splitBrokers(brokers)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer", "msg", msg, "args", args)
		}),
	}
	return &KafkaSink{w: w, log: log}
}

func (s *KafkaSink) Write(ctx context.Context, ev audit.Event) error {
	value, err := json.Marshal(Envelope{
		Action:     ev.Action,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		ActorID:    ev.ActorID,
		Metadata:   ev.Metadata,
		OccurredAt: ev.At,
	})
	if err != nil {
		return err
	}

	return s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(messageKey(ev)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(ev.Action)},
		},
		Time: ev.At,
	})
}

func (s *KafkaSink) Close() error {
	return s.w.Close()
}

func messageKey(ev audit.Event) string {
	if ev.EntityID == nil {
		return ev.Entity
	}
	return ev.Entity + ":" + strconv.FormatUint(uint64(*ev.EntityID), 10)
}

func splitBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

var _ audit.Sink = (*KafkaSink)(nil)
