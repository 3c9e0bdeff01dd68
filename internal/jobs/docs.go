// Package jobs provides scheduled background tasks for the shop.
//
// Jobs use github.com/robfig/cron/v3 with second resolution.
//
// # Available Jobs
//
// OutboxRelayJob runs every second. It reads undelivered events from the
// database outbox, writes each one to Kafka and marks it sent. A message that
// fails to deliver stays pending and is retried on the next tick, so delivery
// is at least once.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(store.Outbox(), publisher, 100, logger)
//	manager := jobs.NewJobManager(relay)
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A job never stops because of a failed run. Failures are logged and the
// next tick starts over. A job that fails to start stops the jobs already
// started.
package jobs
