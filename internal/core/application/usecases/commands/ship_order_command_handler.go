package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
)

// ShipOrderCommandHandler runs the shipping workflow and publishes to
// shipping.shipped or shipping.failed.
type ShipOrderCommandHandler struct {
	workflow ShipOrderWorkflow
	outcome  outcome
}

func NewShipOrderCommandHandler(
	workflow ShipOrderWorkflow,
	publisher ports.EventPublisher,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		workflow: workflow,
		outcome:  newOutcome(publisher, recorder, logger),
	}
}

func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (shipping.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	event := h.workflow.Execute(ctx, cmd)

	switch e := event.(type) {
	case shipping.OrderShipped:
		h.outcome.report(ctx, WorkflowShipOrder, ports.TopicOrderShipped, e.OrderID, true, nil, e)
	case shipping.ShippingFailed:
		h.outcome.report(ctx, WorkflowShipOrder, ports.TopicShippingFailed, e.OrderID, false, e.Reasons, e)
	}

	return event, nil
}
