package service

import (
	"context"
	"encoding/json"

	"meetease/core/logger"
	"meetease/core/utils"

	"github.com/hibiken/asynq"
)

// TypeEmailDelivery is the task type for outbound email delivery.
const TypeEmailDelivery = "email:deliver"

const QueueEmail = "email"

type EmailDeliveryPayload struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	IsHTML  bool     `json:"is_html"`
}

func NewEmailDeliveryTask(payload EmailDeliveryPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailDelivery, data, asynq.Queue(QueueEmail), asynq.MaxRetry(3)), nil
}

// HandleEmailDeliveryTask runs on the worker and sends the email over SMTP.
func HandleEmailDeliveryTask(ctx context.Context, t *asynq.Task) error {
	var payload EmailDeliveryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("EmailDeliveryTask:Unmarshal", err)
		return err
	}

	conf := utils.GetEmailConfig()
	msg := utils.EmailMessage{
		To:      payload.To,
		Subject: payload.Subject,
		Body:    payload.Body,
		IsHTML:  payload.IsHTML,
	}

	if err := utils.SendEmailTLS(*conf, msg); err != nil {
		logger.Error("EmailDeliveryTask:Send", "to", payload.To, "error", err)
		return err
	}

	logger.Info("EmailDeliveryTask:Sent", "to", payload.To, "subject", payload.Subject)
	return nil
}
