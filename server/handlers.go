package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
)

// inboundMessage is a chat message relayed by the platform connector
type inboundMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// messageHandler feeds a relayed chat message into the command dispatcher.
// Replies go back through the notification channel, not this response.
func (s *Server) messageHandler(w http.ResponseWriter, r *http.Request) {
	var msg inboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		RenderJSON(w, r, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg.Channel == "" || msg.Text == "" {
		RenderJSON(w, r, http.StatusBadRequest, map[string]string{"error": "channel and text are required"})
		return
	}

	s.dispatcher.OnMessage(r.Context(), msg.Channel, msg.Text)
	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// statusHandler returns the bot status and the non-hidden configuration
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{}
	for _, p := range s.store.Params() {
		params[p.Key] = p.Value
	}

	searches := 0
	for _, e := range s.store.SearchEntries() {
		searches += len(e.Queries)
	}

	status := map[string]interface{}{
		"status":       "ok",
		"version":      s.version,
		"time":         time.Now().UTC(),
		"config":       params,
		"categories":   len(s.store.SearchEntries()),
		"searches":     searches,
		"known_papers": len(s.store.KnownPapers()),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// papersHandler serves the announcement history, newest first
func (s *Server) papersHandler(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 50)
	offset := intQuery(r, "offset", 0)
	category := r.URL.Query().Get("category")

	var err error
	var papers interface{}
	if category != "" {
		papers, err = s.archive.ListByCategory(r.Context(), category, limit, offset)
	} else {
		papers, err = s.archive.List(r.Context(), limit, offset)
	}
	if err != nil {
		log.Printf("[ERROR] failed to list announcements: %v", err)
		RenderJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "can't list announcements"})
		return
	}

	total, err := s.archive.Count(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to count announcements: %v", err)
		RenderJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "can't count announcements"})
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"total": total, "papers": papers})
}

// intQuery reads a non-negative integer query parameter with a default
func intQuery(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
