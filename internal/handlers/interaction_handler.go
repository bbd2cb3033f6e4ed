package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/service"
	"github.com/diegoclair/discord-schedule-bot/pkg/models"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/httpserver"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	services  *service.Instance
	publicKey httpserver.PublicKey
	log       *slog.Logger
}

func New(services *service.Instance, publicKey httpserver.PublicKey, log *slog.Logger) *Handler {
	return &Handler{
		services:  services,
		publicKey: publicKey,
		log:       log,
	}
}

// HandleInteraction is the interactions endpoint. Failures after signature verification are
// answered with HTTP 200 and an ephemeral error message.
func (h *Handler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if !httpserver.VerifyRequest(httpserver.DefaultVerifier{}, r, h.publicKey) {
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var interaction models.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if interaction.Type == discord.InteractionTypePing {
		h.writeJSON(w, http.StatusOK, interactionResponse{Type: discord.InteractionResponseTypePong})
		return
	}

	resp, err := h.dispatch(r.Context(), interaction)
	if err != nil {
		h.log.Warn("interaction failed", "type", interaction.Type, "user", interaction.UserID(), "error", err)
		resp = reply.Error(domain.UserMessage(err))
	}

	encoded, err := encodeResponse(resp)
	if err != nil {
		h.log.Error("failed to encode response", "error", err)
		encoded, _ = encodeResponse(reply.Error(domain.UserMessage(err)))
	}
	h.writeJSON(w, http.StatusOK, encoded)
}

func (h *Handler) dispatch(ctx context.Context, interaction models.Interaction) (reply.Response, error) {
	kind, err := Classify(interaction)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindSlashCommand:
		var data models.CommandData
		if err := decodeData(interaction.Data, &data); err != nil {
			return nil, err
		}
		return h.services.Command.HandleCommand(ctx, data)

	case KindMessageComponent:
		var data models.ComponentData
		if err := decodeData(interaction.Data, &data); err != nil {
			return nil, err
		}
		return h.services.Interaction.HandleInteraction(ctx, data)

	default:
		var data models.ModalData
		if err := decodeData(interaction.Data, &data); err != nil {
			return nil, err
		}
		return h.services.Modal.HandleModal(ctx, data)
	}
}

func decodeData(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing data", domain.ErrInvalidRequest)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to write response", "error", err)
	}
}
