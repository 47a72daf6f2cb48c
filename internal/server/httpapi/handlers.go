package httpapi

import (
	"net/http"
	"time"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/models"
)

type userResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}

type pageResponse struct {
	ID              string             `json:"id"`
	Slug            string             `json:"slug"`
	Title           string             `json:"title"`
	Content         models.PageContent `json:"content"`
	MetaDescription string             `json:"meta_description"`
	Published       bool               `json:"published"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func toPageResponse(p *models.Page) pageResponse {
	return pageResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Content:         p.Content,
		MetaDescription: p.MetaDescription,
		Published:       p.Published,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type townshipResponse struct {
	ID        string                `json:"id"`
	Slug      string                `json:"slug"`
	Name      string                `json:"name"`
	Summary   string                `json:"summary"`
	Cards     []models.TownshipCard `json:"cards"`
	Published bool                  `json:"published"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func toTownshipResponse(tw *models.Township) townshipResponse {
	return townshipResponse{
		ID:        tw.ID,
		Slug:      tw.Slug,
		Name:      tw.Name,
		Summary:   tw.Summary,
		Cards:     tw.Cards,
		Published: tw.Published,
		UpdatedAt: tw.UpdatedAt,
	}
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, user, err := s.users.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "editor signed in", "email", user.Email)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"user":         toUserResponse(user),
	})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, toUserResponse(userFrom(r.Context())))
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewPassword string `json:"new_password"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.users.UpdatePassword(r.Context(), userFrom(r.Context()).ID, req.NewPassword); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetPage is the public read path. Unpublished pages are only visible
// to authenticated editors and look absent to everyone else.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if !page.Published && !s.isAuthenticated(r) {
		s.writeError(w, r, common.ErrNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, toPageResponse(page))
}

func (s *Server) handleUpdatePageContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content models.PageContent `json:"content"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.pages.UpdateContent(r.Context(), r.PathValue("id"), req.Content); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTownships(w http.ResponseWriter, r *http.Request) {
	list, err := s.townships.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]townshipResponse, 0, len(list))
	for i := range list {
		if !list[i].Published && !s.isAuthenticated(r) {
			continue
		}
		resp = append(resp, toTownshipResponse(&list[i]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTownship(w http.ResponseWriter, r *http.Request) {
	township, err := s.townships.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if !township.Published && !s.isAuthenticated(r) {
		s.writeError(w, r, common.ErrNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, toTownshipResponse(township))
}

func (s *Server) handleUpdateTownshipCards(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cards []models.TownshipCard `json:"cards"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.townships.UpdateCards(r.Context(), r.PathValue("id"), req.Cards); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitContribution(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	c, err := s.contributions.Submit(r.Context(), &models.Contribution{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"id": c.ID})
}

// isAuthenticated checks the session without failing the request; used on
// public paths that include extra rows for editors.
func (s *Server) isAuthenticated(r *http.Request) bool {
	token := r.Header.Get(common.AccessTokenHeaderName)
	if token == "" {
		return false
	}
	_, err := s.users.GetCurrentUser(r.Context(), token)
	return err == nil
}
