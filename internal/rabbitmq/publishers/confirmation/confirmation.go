package confirmation

import (
	"context"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/rabbitmq"
	"reemind/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ enqueues confirmation emails through the default exchange. The
// routing key equals the queue name.
type RabbitMQ struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (p *RabbitMQ) EnqueueConfirmation(ctx context.Context, r reminder.Reminder) error {
	message := schema.Confirmation{
		ReminderID: int64(r.ID),
		Email:      string(r.Email),
		Name:       r.Name,
		Month:      r.Month,
		Day:        r.Day,
		LeadDays:   int(r.LeadDays),
	}
	body, err := message.Marshal()
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", p.queue),
		logging.Entry("reminderID", r.ID),
	)
	return nil
}
