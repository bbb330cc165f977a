package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type EventHandler func(ctx context.Context, event *models.AppointmentEvent) error

// EventBus is the in-process channel between the lifecycle engine and the
// notification dispatcher. One instance is constructed at startup and injected
// into both sides; there is no package-level bus.
type EventBus interface {
	Subscribe(kind models.AppointmentEventKind, handler EventHandler)
	// Publish delivers the event to every subscriber of its kind, in
	// subscription order, and returns the joined handler errors. A failed
	// handler never undoes the store mutation that produced the event.
	Publish(ctx context.Context, event *models.AppointmentEvent) error
}
