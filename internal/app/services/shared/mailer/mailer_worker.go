package mailer

import (
	"context"
	"fmt"
	"medibook-service/internal/app/drivers/mailer"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"medibook-service/internal/pkg/dto/requests"
)

// Worker drains the mailer queue and delivers each email job over SMTP.
// Delivery is best-effort: failures are logged and the job is dropped, never
// retried into the appointment flow.
type Worker struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewWorker(rabbitMQConnection *amqp091.Connection, client *mailer.SMTPClient, queue string, logger *zap.Logger) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return &Worker{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

// Start consumes until ctx is cancelled. Call in its own goroutine.
func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.Channel.Consume(w.Queue, "", true, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(delivery.Body)
		}
	}
}

func (w *Worker) handle(body []byte) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		w.Log.Error("mailer worker cannot decode email job", zap.Error(err))
		return
	}

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
	if err := smtp.SendMail(addr, w.Client.Auth, w.Client.EmailSender, []string{payload.To}, msg); err != nil {
		w.Log.Error("mailer worker failed to send email",
			zap.String("recipient", payload.To),
			zap.Error(err),
		)
	}
}
