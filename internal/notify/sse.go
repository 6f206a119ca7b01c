// Copyright (c) 2025-2026 Fountain Gate Academy
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// keepAliveInterval is how often an SSE comment is written to hold idle
// connections open through proxies.
const keepAliveInterval = 30 * time.Second

// SSEHandler streams change events to the client as server-sent events.
// A Last-Event-ID header replays events the client missed while
// disconnected, as far back as the broker's buffer reaches.
func (b *Broker) SSEHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		var lastID int64
		if raw := r.Header.Get("Last-Event-ID"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				lastID = id
			}
		}

		for _, evt := range b.Since(lastID) {
			writeSSE(w, evt)
		}
		flusher.Flush()

		events, cancel := b.Subscribe()
		defer cancel()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-keepAlive.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				flusher.Flush()
			case evt, ok := <-events:
				if !ok {
					return
				}
				writeSSE(w, evt)
				flusher.Flush()
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data)
}
