// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

// Package notify fans content change events out to admin clients over SSE
// and builds the inquiry notification feed.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// historySize bounds the replay buffer used for Last-Event-ID catch-up.
const historySize = 64

// Event is a single change notification.
type Event struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"record_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Broker distributes change events to subscribed clients. Events pass
// through a queue drained by a single worker so publishers never block on
// slow subscribers.
type Broker struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	history     []Event
	nextID      int64
	running     bool

	queue chan Event
	done  chan struct{}
	wg    sync.WaitGroup
}

// NewBroker creates a new event broker.
func NewBroker(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		logger:      logger,
		subscribers: make(map[chan Event]struct{}),
		queue:       make(chan Event, 100),
		done:        make(chan struct{}),
		nextID:      1,
	}
}

// Start starts the fan-out worker.
func (b *Broker) Start(ctx context.Context) {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.mu.Unlock()

	b.logger.Info("starting notification broker")

	b.wg.Add(1)
	go b.worker(ctx)
}

// Stop stops the broker and waits for the worker to finish.
func (b *Broker) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
	b.logger.Info("notification broker stopped")
}

func (b *Broker) worker(ctx context.Context) {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case <-ctx.Done():
			return
		case evt := <-b.queue:
			b.fanOut(evt)
		}
	}
}

func (b *Broker) fanOut(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
			// Subscriber is not keeping up; it can catch up via
			// Last-Event-ID on reconnect.
		}
	}
}

// Publish queues a change event for distribution. The event id is assigned
// here and recorded in the replay buffer.
func (b *Broker) Publish(eventType, collection, recordID string) {
	b.mu.Lock()
	evt := Event{
		ID:         b.nextID,
		Type:       eventType,
		Collection: collection,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
	}
	b.nextID++

	b.history = append(b.history, evt)
	if len(b.history) > historySize {
		b.history = b.history[len(b.history)-historySize:]
	}
	b.mu.Unlock()

	select {
	case b.queue <- evt:
	default:
		b.logger.Warn("notification queue full, dropping event",
			"type", evt.Type, "collection", evt.Collection)
	}
}

// Subscribe registers a new subscriber. The returned cancel function must
// be called when the subscriber disconnects.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subscribers, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// Since returns buffered events with an id greater than lastID, oldest
// first. Used to replay missed events after a reconnect.
func (b *Broker) Since(lastID int64) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Event
	for _, evt := range b.history {
		if evt.ID > lastID {
			out = append(out, evt)
		}
	}
	return out
}

// SubscriberCount returns the number of connected subscribers.
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
