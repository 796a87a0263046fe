package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillswap/skillswap/internal/common"
)

type createSwapRequest struct {
	RecipientID string `json:"recipient_id"`
	Message     string `json:"message"`
}

type updateSwapRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleCreateSwapRequest(w http.ResponseWriter, r *http.Request) {
	var req createSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RecipientID == "" {
		s.respondError(w, http.StatusBadRequest, "Recipient required")
		return
	}

	swap, err := s.swaps.Create(r.Context(), callerID(r.Context()), req.RecipientID, req.Message)
	if err != nil {
		s.logger.Error(r.Context(), "swap request creation failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"request_id": swap.ID,
	})
}

func (s *Server) handleUpdateSwapRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req updateSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.swaps.UpdateStatus(r.Context(), callerID(r.Context()), requestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "Request not found")
		case errors.Is(err, common.ErrForbidden):
			s.respondError(w, http.StatusForbidden, "Unauthorized")
		default:
			s.logger.Error(r.Context(), "swap request update failed", "error", err)
			s.respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
