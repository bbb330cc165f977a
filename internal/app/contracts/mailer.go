package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail enqueues an email job for asynchronous delivery.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
