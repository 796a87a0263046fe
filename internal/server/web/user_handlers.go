package web

import (
	"net/http"

	"github.com/skillswap/skillswap/internal/server/services"
)

type profileResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Bio         string   `json:"bio"`
	Rating      float64  `json:"rating"`
	SkillsTeach []string `json:"skills_teach"`
	SkillsLearn []string `json:"skills_learn"`
	CreatedAt   *string  `json:"created_at"`
}

// userSummary is the public view of another user: no email, no
// registration date.
type userSummary struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Bio         string   `json:"bio"`
	Rating      float64  `json:"rating"`
	SkillsTeach []string `json:"skills_teach"`
	SkillsLearn []string `json:"skills_learn"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.users.Profile(r.Context(), callerID(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "profile lookup failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.respondJSON(w, http.StatusOK, profileResponse{
		ID:          p.User.ID,
		Username:    p.User.Username,
		Email:       p.User.Email,
		Bio:         p.User.Bio,
		Rating:      p.User.Rating,
		SkillsTeach: p.SkillsTeach,
		SkillsLearn: p.SkillsLearn,
		CreatedAt:   isoTime(p.User.CreatedAt),
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.users.ListOthers(r.Context(), callerID(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "user listing failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.respondJSON(w, http.StatusOK, toSummaries(profiles))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	profiles, err := s.users.Search(r.Context(), callerID(r.Context()), query)
	if err != nil {
		s.logger.Error(r.Context(), "user search failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.respondJSON(w, http.StatusOK, toSummaries(profiles))
}

func toSummaries(profiles []*services.UserProfile) []userSummary {
	result := make([]userSummary, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, userSummary{
			ID:          p.User.ID,
			Username:    p.User.Username,
			Bio:         p.User.Bio,
			Rating:      p.User.Rating,
			SkillsTeach: p.SkillsTeach,
			SkillsLearn: p.SkillsLearn,
		})
	}
	return result
}
