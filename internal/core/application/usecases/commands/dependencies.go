// Package commands contains business operations that modify system state.
// Each command carries raw client input. Its handler runs the matching
// workflow, records the outcome and publishes the resulting event.
package commands

import (
	"context"
	"log/slog"
	"strings"

	"shop/internal/core/ports"
)

// Workflow names used for outcome recording and logs.
const (
	WorkflowPlaceOrder     = "place_order"
	WorkflowProcessPayment = "process_payment"
	WorkflowShipOrder      = "ship_order"
)

// OutcomeRecorder counts how workflows ended.
type OutcomeRecorder interface {
	RecordOutcome(workflow string, succeeded bool)
}

// NopRecorder discards outcomes.
type NopRecorder struct{}

func (NopRecorder) RecordOutcome(string, bool) {}

// outcome is the part every handler does after its workflow returns.
type outcome struct {
	publisher ports.EventPublisher
	recorder  OutcomeRecorder
	logger    *slog.Logger
}

func newOutcome(publisher ports.EventPublisher, recorder OutcomeRecorder, logger *slog.Logger) outcome {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return outcome{publisher: publisher, recorder: recorder, logger: logger}
}

// report records, logs and publishes one workflow result. A failed publish is
// logged and does not change the result.
func (o outcome) report(
	ctx context.Context,
	workflow, topic, key string,
	succeeded bool,
	reasons []string,
	event any,
) {
	o.recorder.RecordOutcome(workflow, succeeded)

	if succeeded {
		o.logger.InfoContext(ctx, "workflow succeeded", "workflow", workflow, "key", key, "topic", topic)
	} else {
		o.logger.WarnContext(ctx, "workflow failed",
			"workflow", workflow,
			"key", key,
			"reasons", strings.Join(reasons, "; "))
	}

	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(ctx, topic, key, event); err != nil {
		o.logger.ErrorContext(ctx, "failed to publish event",
			"workflow", workflow,
			"topic", topic,
			"key", key,
			"error", err)
	}
}
