package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/server/models"
)

type addSkillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req addSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		s.respondError(w, http.StatusBadRequest, "Skill name required")
		return
	}
	role := models.SkillRole(req.Type)
	if !role.Valid() {
		s.respondError(w, http.StatusBadRequest, "Invalid skill type")
		return
	}

	skill, err := s.skills.Add(r.Context(), callerID(r.Context()), req.Name, req.Description, req.Category, role)
	if err != nil {
		s.logger.Error(r.Context(), "skill creation failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"skill_id": skill.ID,
	})
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	skillID := chi.URLParam(r, "id")

	err := s.skills.Delete(r.Context(), callerID(r.Context()), skillID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "Skill not found")
		case errors.Is(err, common.ErrForbidden):
			s.respondError(w, http.StatusForbidden, "Unauthorized")
		default:
			s.logger.Error(r.Context(), "skill deletion failed", "error", err)
			s.respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
