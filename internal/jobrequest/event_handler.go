package jobrequest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/frahmantamala/ops-dashboard/internal/core/events"
)

var createdTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ops_dashboard",
	Subsystem: "job_requests",
	Name:      "created_total",
	Help:      "Job requests created, by status.",
}, []string{"status"})

type EventHandler struct {
	logger *slog.Logger
}

func NewEventHandler(logger *slog.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) HandleJobRequestCreated(ctx context.Context, event events.Event) error {
	created, ok := event.(*events.JobRequestCreatedEvent)
	if !ok {
		h.logger.Error("invalid event type for job request created handler", "event_type", event.EventType())
		return fmt.Errorf("expected JobRequestCreatedEvent, got %T", event)
	}

	createdTotal.WithLabelValues(created.Status).Inc()
	h.logger.InfoContext(ctx, "job request audit",
		"event_id", created.EventID(),
		"job_request_id", created.JobRequestID,
		"company_id", created.CompanyID,
		"job_title", created.JobTitle,
		"occurred_at", created.OccurredAt())
	return nil
}

func (h *EventHandler) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypeJobRequestCreated, h.HandleJobRequestCreated)

	h.logger.Info("job request event handlers registered",
		"handlers", []string{events.EventTypeJobRequestCreated})
}
