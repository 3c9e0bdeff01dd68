package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	everySecond             = "* * * * * *"
	DefaultOutboxBatchSize  = 100
	outboxRelayJobComponent = "outbox_relay_job"
)

// OutboxRelayJob moves pending outbox messages to the broker.
type OutboxRelayJob struct {
	outbox    ports.Outbox
	writer    ports.MessageWriter
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(
	outbox ports.Outbox,
	writer ports.MessageWriter,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = DefaultOutboxBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OutboxRelayJob{
		outbox:    outbox,
		writer:    writer,
		batchSize: batchSize,
		// SkipIfStillRunning keeps two ticks from sending the same batch.
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", outboxRelayJobComponent),
	}
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay"
}

// Start begins relaying every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(everySecond, func() {
		ctx := context.Background()
		if _, err := j.RelayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// RelayOnce delivers one batch and returns how many messages were sent. It
// stops at the first delivery failure so that messages keep their order.
func (j *OutboxRelayJob) RelayOnce(ctx context.Context) (int, error) {
	pending, err := j.outbox.FetchPending(ctx, j.batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, msg := range pending {
		if err = j.writer.Write(ctx, msg.Topic, msg.Key, msg.Payload); err != nil {
			j.logger.WarnContext(ctx, "Outbox message not delivered, will retry",
				"message_id", msg.ID.String(), "topic", msg.Topic, "error", err)
			return sent, nil
		}
		if err = j.outbox.MarkSent(ctx, msg.ID); err != nil {
			return sent, err
		}
		sent++
	}

	if sent > 0 {
		j.logger.DebugContext(ctx, "Outbox messages delivered", "count", sent)
	}
	return sent, nil
}
