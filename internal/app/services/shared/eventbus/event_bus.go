package eventbus

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

// Bus is a single-process publish/subscribe channel. Delivery is synchronous
// and in subscription order, so events for the same appointment reach every
// subscriber in the order the engine emitted them. Handler errors are joined
// and handed back to the publisher; they never undo the mutation that
// produced the event.
type Bus struct {
	mu       sync.RWMutex
	handlers map[models.AppointmentEventKind][]contracts.EventHandler
	Log      *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[models.AppointmentEventKind][]contracts.EventHandler),
		Log:      logger,
	}
}

func (b *Bus) Subscribe(kind models.AppointmentEventKind, handler contracts.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

func (b *Bus) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	b.mu.RLock()
	handlers := b.handlers[event.Kind]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.Log.Error("eventbus handler failed",
				zap.String(constvars.LoggingEventKindKey, string(event.Kind)),
				zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
