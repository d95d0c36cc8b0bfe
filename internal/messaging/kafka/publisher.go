package kafka

import (
	"context"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/baobabplus/application-agent-services/internal/events"
)

// Publisher emits login events. Publishing is best-effort: a broker
// outage must never fail a login, so errors are logged and dropped.
type Publisher struct {
	writer *kafkago.Writer
	now    func() time.Time
}

func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        events.TopicLogins,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireOne,
			Async:        true,
		},
		now: time.Now,
	}
}

func (p *Publisher) LoginSucceeded(ctx context.Context, employeeID int, phoneNumber string) {
	payload, err := json.Marshal(events.LoginSucceeded{
		EmployeeID:  employeeID,
		PhoneNumber: phoneNumber,
		At:          p.now().UTC(),
	})
	if err != nil {
		return
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(strconv.Itoa(employeeID)),
		Value: payload,
	})
	if err != nil {
		zap.L().Warn("login event publish failed",
			zap.Int("employee_id", employeeID),
			zap.Error(err))
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
