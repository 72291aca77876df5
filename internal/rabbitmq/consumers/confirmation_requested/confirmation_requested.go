package confirmationrequested

import (
	"context"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/core/services"
	sendconfirmation "reemind/internal/core/services/send_confirmation"
	"reemind/internal/rabbitmq"
	"reemind/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[sendconfirmation.Input, sendconfirmation.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[sendconfirmation.Input, sendconfirmation.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			message := &schema.Confirmation{}
			if err := message.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal confirmation.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got confirmation request.",
				logging.Entry("confirmation", message),
			)
			_, err := c.service.Run(
				context.Background(),
				sendconfirmation.Input{Reminder: toReminder(message)},
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not send confirmation, service returned an error.",
					logging.Entry("confirmation", message),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func toReminder(message *schema.Confirmation) reminder.Reminder {
	return reminder.Reminder{
		ID:       reminder.ID(message.ReminderID),
		Email:    c.NewEmail(message.Email),
		Name:     message.Name,
		Month:    message.Month,
		Day:      message.Day,
		LeadDays: reminder.LeadDays(message.LeadDays),
	}
}
