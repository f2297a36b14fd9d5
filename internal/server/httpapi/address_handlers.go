package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req requests.CreateAddress
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	result, err := s.addresses.Create(r.Context(), user.Username, pathID(r, "contactId"), &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	result, err := s.addresses.Get(r.Context(), user.Username, pathID(r, "contactId"), pathID(r, "addressId"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req requests.UpdateAddress
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	req.ID = pathID(r, "addressId")

	result, err := s.addresses.Update(r.Context(), user.Username, pathID(r, "contactId"), &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleRemoveAddress(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	if err := s.addresses.Remove(r.Context(), user.Username, pathID(r, "contactId"), pathID(r, "addressId")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, "OK")
}

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	result, err := s.addresses.List(r.Context(), user.Username, pathID(r, "contactId"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}
