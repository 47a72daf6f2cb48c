package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/models"
)

// registerAdminRoutes mounts the CRUD surface used by the curator tooling.
// Everything here requires a session; user management requires the admin
// flag on top.
func (s *Server) registerAdminRoutes(mux *http.ServeMux) {
	auth := func(h http.HandlerFunc) http.Handler { return s.requireAuth(h) }
	admin := func(h http.HandlerFunc) http.Handler { return s.requireAdmin(h) }

	mux.Handle("GET /api/admin/pages", auth(s.handleListPages))
	mux.Handle("POST /api/admin/pages", auth(s.handleCreatePage))
	mux.Handle("GET /api/admin/pages/{id}", auth(s.handleGetPageByID))
	mux.Handle("PUT /api/admin/pages/{id}", auth(s.handleUpdatePage))
	mux.Handle("DELETE /api/admin/pages/{id}", auth(s.handleDeletePage))

	mux.Handle("POST /api/admin/townships", auth(s.handleCreateTownship))
	mux.Handle("PUT /api/admin/townships/{id}", auth(s.handleUpdateTownship))
	mux.Handle("DELETE /api/admin/townships/{id}", auth(s.handleDeleteTownship))

	mux.Handle("GET /api/admin/people", auth(s.handleListPeople))
	mux.Handle("POST /api/admin/people", auth(s.handleCreatePerson))
	mux.Handle("PUT /api/admin/people/{id}", auth(s.handleUpdatePerson))
	mux.Handle("DELETE /api/admin/people/{id}", auth(s.handleDeletePerson))

	mux.Handle("GET /api/admin/buildings", auth(s.handleListBuildings))
	mux.Handle("POST /api/admin/buildings", auth(s.handleCreateBuilding))
	mux.Handle("PUT /api/admin/buildings/{id}", auth(s.handleUpdateBuilding))
	mux.Handle("DELETE /api/admin/buildings/{id}", auth(s.handleDeleteBuilding))

	mux.Handle("GET /api/admin/events", auth(s.handleListEvents))
	mux.Handle("POST /api/admin/events", auth(s.handleCreateEvent))
	mux.Handle("PUT /api/admin/events/{id}", auth(s.handleUpdateEvent))
	mux.Handle("DELETE /api/admin/events/{id}", auth(s.handleDeleteEvent))

	mux.Handle("GET /api/admin/photographs", auth(s.handleListPhotographs))
	mux.Handle("POST /api/admin/photographs", auth(s.handleUploadPhotograph))
	mux.Handle("DELETE /api/admin/photographs/{id}", auth(s.handleDeletePhotograph))

	mux.Handle("GET /api/admin/maps", auth(s.handleListMaps))
	mux.Handle("POST /api/admin/maps", auth(s.handleUploadMap))
	mux.Handle("DELETE /api/admin/maps/{id}", auth(s.handleDeleteMap))

	mux.Handle("GET /api/admin/media", auth(s.handleListMedia))
	mux.Handle("POST /api/admin/media", auth(s.handleUploadMedia))
	mux.Handle("DELETE /api/admin/media/{id}", auth(s.handleDeleteMedia))

	mux.Handle("GET /api/admin/contributions", auth(s.handleListContributions))
	mux.Handle("POST /api/admin/contributions/{id}/reviewed", auth(s.handleReviewContribution))
	mux.Handle("DELETE /api/admin/contributions/{id}", auth(s.handleDeleteContribution))

	mux.Handle("GET /api/admin/users", admin(s.handleListUsers))
	mux.Handle("POST /api/admin/users", admin(s.handleInviteUser))
	mux.Handle("DELETE /api/admin/users/{id}", admin(s.handleDeleteUser))
}

// pages

type pageRequest struct {
	Slug            string             `json:"slug"`
	Title           string             `json:"title"`
	Content         models.PageContent `json:"content"`
	MetaDescription string             `json:"meta_description"`
	Published       bool               `json:"published"`
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	list, err := s.pages.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]pageResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toPageResponse(&list[i]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPageByID(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPageResponse(page))
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	page, err := s.pages.Create(r.Context(), &models.Page{
		Slug:            req.Slug,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPageResponse(page))
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	err := s.pages.Update(r.Context(), &models.Page{
		ID:              r.PathValue("id"),
		Slug:            req.Slug,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.pages.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// townships

type townshipRequest struct {
	Slug      string                `json:"slug"`
	Name      string                `json:"name"`
	Summary   string                `json:"summary"`
	Cards     []models.TownshipCard `json:"cards"`
	Published bool                  `json:"published"`
}

func (s *Server) handleCreateTownship(w http.ResponseWriter, r *http.Request) {
	var req townshipRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	township, err := s.townships.Create(r.Context(), &models.Township{
		Slug:      req.Slug,
		Name:      req.Name,
		Summary:   req.Summary,
		Cards:     req.Cards,
		Published: req.Published,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toTownshipResponse(township))
}

func (s *Server) handleUpdateTownship(w http.ResponseWriter, r *http.Request) {
	var req townshipRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	err := s.townships.Update(r.Context(), &models.Township{
		ID:        r.PathValue("id"),
		Slug:      req.Slug,
		Name:      req.Name,
		Summary:   req.Summary,
		Cards:     req.Cards,
		Published: req.Published,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTownship(w http.ResponseWriter, r *http.Request) {
	if err := s.townships.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// people

type personRequest struct {
	Surname    string `json:"surname"`
	Forenames  string `json:"forenames"`
	BirthYear  int    `json:"birth_year"`
	DeathYear  int    `json:"death_year"`
	Residence  string `json:"residence"`
	Occupation string `json:"occupation"`
	Notes      string `json:"notes"`
}

func (req *personRequest) model(id string) *models.Person {
	return &models.Person{
		ID:         id,
		Surname:    req.Surname,
		Forenames:  req.Forenames,
		BirthYear:  req.BirthYear,
		DeathYear:  req.DeathYear,
		Residence:  req.Residence,
		Occupation: req.Occupation,
		Notes:      req.Notes,
	}
}

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	list, err := s.people.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	person, err := s.people.Create(r.Context(), req.model(""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, person)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.people.Update(r.Context(), req.model(r.PathValue("id"))); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := s.people.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// buildings

type buildingRequest struct {
	Name          string `json:"name"`
	BuildingType  string `json:"building_type"`
	GridReference string `json:"grid_reference"`
	BuiltYear     int    `json:"built_year"`
	ListedGrade   string `json:"listed_grade"`
	Description   string `json:"description"`
}

func (req *buildingRequest) model(id string) *models.Building {
	return &models.Building{
		ID:            id,
		Name:          req.Name,
		BuildingType:  req.BuildingType,
		GridReference: req.GridReference,
		BuiltYear:     req.BuiltYear,
		ListedGrade:   req.ListedGrade,
		Description:   req.Description,
	}
}

func (s *Server) handleListBuildings(w http.ResponseWriter, r *http.Request) {
	list, err := s.buildings.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateBuilding(w http.ResponseWriter, r *http.Request) {
	var req buildingRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	building, err := s.buildings.Create(r.Context(), req.model(""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, building)
}

func (s *Server) handleUpdateBuilding(w http.ResponseWriter, r *http.Request) {
	var req buildingRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.buildings.Update(r.Context(), req.model(r.PathValue("id"))); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteBuilding(w http.ResponseWriter, r *http.Request) {
	if err := s.buildings.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// events

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

func (req *eventRequest) model(id string) *models.Event {
	return &models.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.events.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	event, err := s.events.Create(r.Context(), req.model(""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.events.Update(r.Context(), req.model(r.PathValue("id"))); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.events.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// photographs

type photographResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	Year      int       `json:"year"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) toPhotographResponse(p *models.Photograph) photographResponse {
	return photographResponse{
		ID:        p.ID,
		Title:     p.Title,
		Caption:   p.Caption,
		Year:      p.Year,
		URL:       s.photographs.PublicURL(p),
		CreatedAt: p.CreatedAt,
	}
}

func (s *Server) handleListPhotographs(w http.ResponseWriter, r *http.Request) {
	list, err := s.photographs.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]photographResponse, 0, len(list))
	for i := range list {
		resp = append(resp, s.toPhotographResponse(&list[i]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleUploadPhotograph accepts a multipart form with the image under
// "file" and metadata in plain fields.
func (s *Server) handleUploadPhotograph(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	defer file.Close()

	year := 0
	if v := r.FormValue("year"); v != "" {
		if year, err = parseYear(v); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	contentType := header.Header.Get("Content-Type")
	photo, err := s.photographs.Upload(r.Context(), &models.Photograph{
		Title:   r.FormValue("title"),
		Caption: r.FormValue("caption"),
		Year:    year,
	}, file, contentType)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, s.toPhotographResponse(photo))
}

func (s *Server) handleDeletePhotograph(w http.ResponseWriter, r *http.Request) {
	if err := s.photographs.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// maps

type mapResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Scale       string    `json:"scale"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) toMapResponse(m *models.Map) mapResponse {
	return mapResponse{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Scale:       m.Scale,
		Description: m.Description,
		URL:         s.maps.PublicURL(m),
		CreatedAt:   m.CreatedAt,
	}
}

func (s *Server) handleListMaps(w http.ResponseWriter, r *http.Request) {
	list, err := s.maps.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]mapResponse, 0, len(list))
	for i := range list {
		resp = append(resp, s.toMapResponse(&list[i]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUploadMap(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	defer file.Close()

	year := 0
	if v := r.FormValue("year"); v != "" {
		if year, err = parseYear(v); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	m, err := s.maps.Upload(r.Context(), &models.Map{
		Title:       r.FormValue("title"),
		Year:        year,
		Scale:       r.FormValue("scale"),
		Description: r.FormValue("description"),
	}, file, header.Header.Get("Content-Type"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, s.toMapResponse(m))
}

func (s *Server) handleDeleteMap(w http.ResponseWriter, r *http.Request) {
	if err := s.maps.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// media files

type mediaResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	MimeType  string    `json:"mime_type"`
	SizeBytes int64     `json:"size_bytes"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) toMediaResponse(f *models.MediaFile) mediaResponse {
	return mediaResponse{
		ID:        f.ID,
		FileName:  f.FileName,
		MimeType:  f.MimeType,
		SizeBytes: f.SizeBytes,
		URL:       s.media.PublicURL(f),
		CreatedAt: f.CreatedAt,
	}
}

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	list, err := s.media.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]mediaResponse, 0, len(list))
	for i := range list {
		resp = append(resp, s.toMediaResponse(&list[i]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	defer file.Close()

	media, err := s.media.Upload(r.Context(), &models.MediaFile{
		FileName:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		SizeBytes: header.Size,
	}, file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, s.toMediaResponse(media))
}

func (s *Server) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.media.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// contributions

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	list, err := s.contributions.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleReviewContribution(w http.ResponseWriter, r *http.Request) {
	if err := s.contributions.MarkReviewed(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := s.contributions.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// users

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := make([]userResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toUserResponse(&list[i]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInviteUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	user, password, err := s.users.InviteUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// The temporary password is returned once, to the inviting admin only.
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"user":               toUserResponse(user),
		"temporary_password": password,
	})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("id") == userFrom(r.Context()).ID {
		s.writeError(w, r, common.ErrValidation)
		return
	}
	if err := s.users.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseYear(v string) (int, error) {
	year, err := strconv.Atoi(v)
	if err != nil || year < 1000 || year > time.Now().Year() {
		return 0, common.ErrValidation
	}
	return year, nil
}
