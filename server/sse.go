package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
)

// streamHandler serves an ingestion run as server-sent events. Stored
// matches stream first, then one event per newly ingested article, then a
// single complete or error event. A dropped client stops the stream but
// the ingestion itself runs to completion.
func (s *Server) streamHandler(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		renderError(w, r, fmt.Errorf("topic is required"), http.StatusBadRequest)
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		renderError(w, r, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := s.ingester.Stream(r.Context(), topic, limit)
	clientGone := false
	for event := range events {
		if clientGone {
			continue // keep draining so the producer can finish
		}
		data, err := json.Marshal(event)
		if err != nil {
			lgr.Printf("[ERROR] marshal stream event: %v", err)
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
			lgr.Printf("[DEBUG] stream client for %q disconnected: %v", topic, err)
			clientGone = true
			continue
		}
		flusher.Flush()
	}
}
