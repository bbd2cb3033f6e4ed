package handlers

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Routes registers the bot endpoints. A nil limiter disables rate limiting.
func (h *Handler) Routes(limiter *rate.Limiter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", h.HandleInteraction)
	mux.HandleFunc("PATCH /subscribe_command", h.HandleSubscribe)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	if limiter == nil {
		return mux
	}
	return RateLimit(limiter, mux)
}

// HandleSubscribe registers the slash commands in the configured guild.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Subscribe.SubscribeCommand(r.Context()); err != nil {
		h.log.Error("failed to subscribe commands", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RateLimit answers 429 once the limiter's bucket is empty.
func RateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
