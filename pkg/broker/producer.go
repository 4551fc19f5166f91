package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type Producer struct {
	l          *slog.Logger
	w          *kafka.Writer
	auditTopic string
}

func NewProducer(l *slog.Logger, brokers []string, auditTopic string) *Producer {
	l = l.WithGroup("kafka").With("topic", auditTopic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:          l,
		w:          w,
		auditTopic: auditTopic,
	}
}

// SendAccessDenied publishes a rejected-request record to the audit
// stream. Failures are logged, never surfaced: auditing must not turn
// a denial into a 500.
func (p *Producer) SendAccessDenied(ctx context.Context, event entity.AccessDenied) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: b,
		Topic: p.auditTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

type UserRegisteredEvent struct {
	Kind   string    `json:"kind"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	At     time.Time `json:"at"`
}

func (p *Producer) SendUserRegistered(ctx context.Context, user entity.User) {
	event := UserRegisteredEvent{
		Kind:   "user.registered",
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		At:     time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(user.ID.String()),
		Value: b,
		Topic: p.auditTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (il *infoLogger) Printf(format string, args ...any) {
	il.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (el *errorLogger) Printf(format string, args ...any) {
	el.l.Error(fmt.Sprintf(format, args...))
}
