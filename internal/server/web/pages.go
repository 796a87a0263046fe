package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates *template.Template

// loadTemplates parses all embedded page templates once, at server
// construction time, so a broken template fails startup instead of the
// first request.
func loadTemplates() error {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("error parsing templates: %w", err)
	}
	pageTemplates = t
	return nil
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "template render failed", "template", name, "error", err)
	}
}

// pageData carries the small amount of state pages need: whether the
// visitor has a session, to switch navigation links.
type pageData struct {
	LoggedIn bool
}

func (s *Server) pageData(r *http.Request) pageData {
	_, ok := s.sessionUserID(r)
	return pageData{LoggedIn: ok}
}

func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "index.html", s.pageData(r))
}

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "register.html", s.pageData(r))
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "login.html", s.pageData(r))
}

func (s *Server) browsePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "browse.html", s.pageData(r))
}

func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "dashboard.html", s.pageData(r))
}

func (s *Server) messagesPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "messages.html", s.pageData(r))
}
