package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/payment"
	"shop/internal/core/ports"
)

// ProcessPaymentCommandHandler runs the payment workflow and publishes to
// payments.processed or payments.failed.
type ProcessPaymentCommandHandler struct {
	workflow ProcessPaymentWorkflow
	outcome  outcome
}

func NewProcessPaymentCommandHandler(
	workflow ProcessPaymentWorkflow,
	publisher ports.EventPublisher,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		workflow: workflow,
		outcome:  newOutcome(publisher, recorder, logger),
	}
}

func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (payment.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	event := h.workflow.Execute(ctx, cmd)

	switch e := event.(type) {
	case payment.PaymentProcessed:
		h.outcome.report(ctx, WorkflowProcessPayment, ports.TopicPaymentProcessed, e.OrderID, true, nil, e)
	case payment.PaymentFailed:
		h.outcome.report(ctx, WorkflowProcessPayment, ports.TopicPaymentFailed, e.OrderID, false, e.Reasons, e)
	}

	return event, nil
}
