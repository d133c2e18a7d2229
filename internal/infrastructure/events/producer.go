package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	TopicLedgerUpdated = "job.ledger.updated"

	EventLedgerUpdated = "LedgerUpdated"
)

// Envelope is the versioned wrapper every published event travels in.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type LedgerUpdatedPayload struct {
	JobID  string `json:"job_id"`
	Reason string `json:"reason"`
}

// Producer publishes ledger-updated notifications through a buffered inbox
// so request handlers never block on the broker. Messages are keyed by job
// id to keep per-job ordering.
type Producer struct {
	w         *kafka.Writer
	inbox     chan kafka.Message
	closeCh   chan struct{}
	closeOnce sync.Once
	service   string
}

var _ interfaces.ILedgerEventPublisher = (*Producer)(nil)

func NewProducer(brokers []string, service string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicLedgerUpdated,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
		service: service,
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		for m := range p.inbox {
			p.write(m)
		}
		_ = p.w.Close()
		close(p.closeCh)
	}()
	go func() {
		<-ctx.Done()
		p.Close()
	}()
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		log.Warn().Err(err).Msg("ledger event publish failed")
	}
}

// LedgerUpdated enqueues a LedgerUpdated event. The write that triggered it
// has already committed, so a full inbox drops the event rather than stall
// the request.
func (p *Producer) LedgerUpdated(jobID, reason string) {
	payload, err := json.Marshal(LedgerUpdatedPayload{JobID: jobID, Reason: reason})
	if err != nil {
		return
	}
	ev := Envelope{
		EventID:      uuid.NewString(),
		EventType:    EventLedgerUpdated,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     p.service,
		Payload:      payload,
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	m := kafka.Message{Key: []byte(jobID), Value: b, Time: time.Now()}
	select {
	case p.inbox <- m:
	default:
		log.Warn().Str("job_id", jobID).Msg("ledger event inbox full, event dropped")
	}
}

// Close stops accepting events and flushes what is queued.
func (p *Producer) Close() { p.closeOnce.Do(func() { close(p.inbox) }) }

// WaitClosed blocks until the flush goroutine exits.
func (p *Producer) WaitClosed() { <-p.closeCh }
