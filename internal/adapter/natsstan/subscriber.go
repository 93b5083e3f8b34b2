package natsstan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/customer-page-service/internal/domain"
	stan "github.com/nats-io/stan.go"
)

const (
	queueGroup     = "customer-page-workers"
	handlerTimeout = 5 * time.Second
	ackWait        = 10 * time.Second
)

type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
	Logger    *slog.Logger
}

func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("customer-page-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return fmt.Errorf("stan connect: %w", err)
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, queueGroup, func(m *stan.Msg) {
		hCtx, cancel := context.WithTimeout(ctx, handlerTimeout)
		defer cancel()
		if err := handler(hCtx, m.Data); err != nil {
			// не подтверждаем, даём сообщению переотправиться
			s.Logger.Warn("order message rejected", "subject", s.Subject, "sequence", m.Sequence, "error", err)
			return
		}
		if err := m.Ack(); err != nil {
			s.Logger.Error("ack failed", "sequence", m.Sequence, "error", err)
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(ackWait), stan.DeliverAllAvailable())
	if err != nil {
		sc.Close()
		return fmt.Errorf("stan subscribe: %w", err)
	}
	s.Logger.Info("subscribed to order feed", "feed", "stan", "subject", s.Subject)
	return nil
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)

// Publisher отправляет сообщения заказов в канал STAN.
type Publisher struct {
	conn    stan.Conn
	subject string
}

func NewPublisher(clusterID, clientID, url, subject string) (*Publisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, fmt.Errorf("stan connect: %w", err)
	}
	return &Publisher{conn: sc, subject: subject}, nil
}

func (p *Publisher) Publish(_ context.Context, _ []byte, raw []byte) error {
	return p.conn.Publish(p.subject, raw)
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}
