// Package httpapi exposes the contactbook services over a JSON/HTTP
// surface: a chi router, the bearer-token auth gate, and one handler per
// operation. Success bodies are wrapped in {"data": ...}, failures in
// {"errors": ...}.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

type userSvc interface {
	Register(ctx context.Context, req *requests.RegisterUser) (*requests.UserResponse, error)
	Login(ctx context.Context, req *requests.LoginUser) (*requests.TokenResponse, error)
	GetCurrent(ctx context.Context, username string) (*requests.UserResponse, error)
	UpdateCurrent(ctx context.Context, username string, req *requests.UpdateUser) (*requests.UserResponse, error)
	Logout(ctx context.Context, username string) error
	GetByToken(ctx context.Context, token string) (*models.User, error)
}

type contactSvc interface {
	Create(ctx context.Context, username string, req *requests.CreateContact) (*requests.ContactResponse, error)
	Get(ctx context.Context, username string, contactID int64) (*requests.ContactResponse, error)
	Update(ctx context.Context, username string, req *requests.UpdateContact) (*requests.ContactResponse, error)
	Remove(ctx context.Context, username string, contactID int64) error
	Search(ctx context.Context, username string, req *requests.SearchContact) (*requests.SearchContactResponse, error)
}

type addressSvc interface {
	Create(ctx context.Context, username string, contactID int64, req *requests.CreateAddress) (*requests.AddressResponse, error)
	Get(ctx context.Context, username string, contactID, addressID int64) (*requests.AddressResponse, error)
	Update(ctx context.Context, username string, contactID int64, req *requests.UpdateAddress) (*requests.AddressResponse, error)
	Remove(ctx context.Context, username string, contactID, addressID int64) error
	List(ctx context.Context, username string, contactID int64) ([]*requests.AddressResponse, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     userSvc
	contacts  contactSvc
	addresses addressSvc
}

func NewServer(address string, l logging.Logger, us userSvc, cs contactSvc, as addressSvc) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		contacts:  cs,
		addresses: as,
	}
}

// Router builds the full route tree. Everything except registration,
// login, and the health probe sits behind the auth gate.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		s.writeData(req.Context(), w, http.StatusOK, "OK")
	})

	r.Post("/api/users", s.handleRegister)
	r.Post("/api/users/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.withAuth)

		r.Get("/api/users/current", s.handleGetCurrentUser)
		r.Patch("/api/users/current", s.handleUpdateCurrentUser)
		r.Delete("/api/users/logout", s.handleLogout)

		r.Route("/api/contacts", func(r chi.Router) {
			r.Post("/", s.handleCreateContact)
			r.Get("/", s.handleSearchContacts)

			r.Route("/{contactId}", func(r chi.Router) {
				r.Get("/", s.handleGetContact)
				r.Put("/", s.handleUpdateContact)
				r.Delete("/", s.handleRemoveContact)

				r.Route("/addresses", func(r chi.Router) {
					r.Post("/", s.handleCreateAddress)
					r.Get("/", s.handleListAddresses)
					r.Get("/{addressId}", s.handleGetAddress)
					r.Put("/{addressId}", s.handleUpdateAddress)
					r.Delete("/{addressId}", s.handleRemoveAddress)
				})
			})
		})
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		return err
	}
}
