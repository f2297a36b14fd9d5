package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/dbx"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
	contactsrepo "github.com/dmitrijs2005/contactbook/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactbook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

// ContactService provides CRUD and paginated search over a user's
// contacts. Every operation except Create and Search first binds the
// contact to its owner.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// resolveOwnedContact checks that exactly one contact exists with the
// given id owned by username. The count-equals-one guard makes the
// ownership invariant explicit even though id is a unique key.
func resolveOwnedContact(ctx context.Context, repo contactsrepo.Repository, username string, contactID int64) error {
	if contactID <= 0 {
		return requests.NewValidationError("contactId", "must be a positive integer")
	}

	count, err := repo.CountByIDAndOwner(ctx, contactID, username)
	if err != nil {
		return fmt.Errorf("error counting contacts: %w", err)
	}
	if count != 1 {
		return common.ErrorNotFound
	}

	return nil
}

func contactResponse(contact *models.Contact) *requests.ContactResponse {
	return &requests.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// Create validates the request, stamps the owner, and persists a new
// contact.
func (s *ContactService) Create(ctx context.Context, username string, req *requests.CreateContact) (*requests.ContactResponse, error) {
	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	contact, err := s.repomanager.Contacts(s.db).Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}

	return contactResponse(contact), nil
}

// Get returns a contact owned by username, or ErrorNotFound — including
// when the id exists but belongs to someone else.
func (s *ContactService) Get(ctx context.Context, username string, contactID int64) (*requests.ContactResponse, error) {
	if contactID <= 0 {
		return nil, requests.NewValidationError("contactId", "must be a positive integer")
	}

	contact, err := s.repomanager.Contacts(s.db).GetByIDAndOwner(ctx, contactID, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching contact: %w", err)
	}

	return contactResponse(contact), nil
}

// Update persists the whitelisted contact fields after re-checking
// ownership, both inside one transaction.
func (s *ContactService) Update(ctx context.Context, username string, req *requests.UpdateContact) (*requests.ContactResponse, error) {
	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		ID:        req.ID,
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Contacts(tx)
		if err := resolveOwnedContact(ctx, repoTx, username, req.ID); err != nil {
			return err
		}
		return repoTx.Update(ctx, contact)
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		var verr *requests.ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating contact: %w", err)
	}

	return contactResponse(contact), nil
}

// Remove deletes a contact after re-checking ownership, both inside one
// transaction.
func (s *ContactService) Remove(ctx context.Context, username string, contactID int64) error {
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Contacts(tx)
		if err := resolveOwnedContact(ctx, repoTx, username, contactID); err != nil {
			return err
		}
		return repoTx.Delete(ctx, contactID)
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		var verr *requests.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		return fmt.Errorf("error deleting contact: %w", err)
	}

	return nil
}

// Search returns one page of the user's contacts under the conjunctive
// filter set, plus paging metadata computed from a count under the same
// filters. Results are ordered by id, so repeated calls with no
// intervening writes return identical pages.
func (s *ContactService) Search(ctx context.Context, username string, req *requests.SearchContact) (*requests.SearchContactResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Size == 0 {
		req.Size = 10
	}
	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	filter := &contactsrepo.SearchFilter{
		Username: username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Offset:   (req.Page - 1) * req.Size,
		Limit:    req.Size,
	}

	repo := s.repomanager.Contacts(s.db)

	found, err := repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching contacts: %w", err)
	}

	total, err := repo.CountSearch(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error counting contacts: %w", err)
	}

	data := make([]*requests.ContactResponse, 0, len(found))
	for _, contact := range found {
		data = append(data, contactResponse(contact))
	}

	size := int64(req.Size)
	return &requests.SearchContactResponse{
		Data: data,
		Paging: requests.Paging{
			Page:      req.Page,
			TotalItem: total,
			TotalPage: (total + size - 1) / size,
		},
	}, nil
}
