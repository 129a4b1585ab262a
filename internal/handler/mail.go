package handler

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

// queueMail 把邮件消息序列化后投递到消息队列，真正的发送由 mail worker 完成
func (h *Handler) queueMail(mailMessage domain.MailMessage) error {
	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
