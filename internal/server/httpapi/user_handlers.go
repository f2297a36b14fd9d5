package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req requests.RegisterUser
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	result, err := s.users.Register(r.Context(), &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", result.Username)
	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req requests.LoginUser
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	result, err := s.users.Login(r.Context(), &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	result, err := s.users.GetCurrent(r.Context(), user.Username)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleUpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req requests.UpdateUser
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	result, err := s.users.UpdateCurrent(r.Context(), user.Username, &req)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	if err := s.users.Logout(r.Context(), user.Username); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeData(r.Context(), w, http.StatusOK, "OK")
}
