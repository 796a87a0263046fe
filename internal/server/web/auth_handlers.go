package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillswap/skillswap/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
}

// handleRegister creates an account and logs the caller in: the session
// cookie is set on the registration response.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		s.respondError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			s.respondError(w, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, common.ErrUsernameTaken):
			s.respondError(w, http.StatusBadRequest, "Username already taken")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			s.respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.setSessionCookie(w, token)
	s.respondJSON(w, http.StatusOK, authResponse{Success: true, UserID: user.ID})
}

// handleLogin verifies credentials and sets the session cookie. Unknown
// email and wrong password produce the same generic 401.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.setSessionCookie(w, token)
	s.respondJSON(w, http.StatusOK, authResponse{Success: true, UserID: user.ID})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
