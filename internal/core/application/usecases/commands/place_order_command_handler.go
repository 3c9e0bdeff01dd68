package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// PlaceOrderCommandHandler runs the place order workflow and publishes its
// event to orders.pending_payment, orders.placed or orders.failed.
type PlaceOrderCommandHandler struct {
	workflow PlaceOrderWorkflow
	outcome  outcome
}

func NewPlaceOrderCommandHandler(
	workflow PlaceOrderWorkflow,
	publisher ports.EventPublisher,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		workflow: workflow,
		outcome:  newOutcome(publisher, recorder, logger),
	}
}

// Handle returns the workflow's event. A business failure is an
// OrderPlacementFailed event, not an error; the error is reserved for a
// command that was not built with its constructor.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	event := h.workflow.Execute(ctx, cmd)

	switch e := event.(type) {
	case order.OrderPendingPayment:
		h.outcome.report(ctx, WorkflowPlaceOrder, ports.TopicOrderPendingPayment, e.OrderID, true, nil, e)
	// OrderPlaced comes only from a workflow that confirms pending orders.
	case order.OrderPlaced:
		h.outcome.report(ctx, WorkflowPlaceOrder, ports.TopicOrderPlaced, e.OrderID, true, nil, e)
	case order.OrderPlacementFailed:
		h.outcome.report(ctx, WorkflowPlaceOrder, ports.TopicOrderFailed, "", false, e.Reasons, e)
	}

	return event, nil
}
