package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

// pathID parses a numeric URL parameter. Anything non-numeric yields 0,
// which the service layer rejects as a validation failure.
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req requests.CreateContact
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	result, err := s.contacts.Create(r.Context(), user.Username, &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	result, err := s.contacts.Get(r.Context(), user.Username, pathID(r, "contactId"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req requests.UpdateContact
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	req.ID = pathID(r, "contactId")

	result, err := s.contacts.Update(r.Context(), user.Username, &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleRemoveContact(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	if err := s.contacts.Remove(r.Context(), user.Username, pathID(r, "contactId")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, "OK")
}

func (s *Server) handleSearchContacts(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	q := r.URL.Query()
	req := requests.SearchContact{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
	}
	// absent or malformed numbers fall back to the defaults
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = page
	}
	if size, err := strconv.Atoi(q.Get("size")); err == nil {
		req.Size = size
	}

	result, err := s.contacts.Search(r.Context(), user.Username, &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	// search replies carry paging next to data, not nested inside it
	s.writeJSON(r.Context(), w, http.StatusOK, result)
}
