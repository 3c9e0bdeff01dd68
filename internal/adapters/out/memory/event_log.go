package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// PublishedEvent is one event as the log received it.
type PublishedEvent struct {
	Topic   string
	Key     string
	Payload json.RawMessage
}

// EventLog is an EventPublisher that keeps every event in memory, grouped
// by topic.
type EventLog struct {
	mu     sync.Mutex
	events []PublishedEvent
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Publish(_ context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, PublishedEvent{Topic: topic, Key: key, Payload: data})
	return nil
}

// Topic returns the events published to topic in publication order.
func (l *EventLog) Topic(topic string) []PublishedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	selected := make([]PublishedEvent, 0)
	for _, e := range l.events {
		if e.Topic == topic {
			selected = append(selected, e)
		}
	}
	return selected
}

func (l *EventLog) All() []PublishedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]PublishedEvent(nil), l.events...)
}
