package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/dbx"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
	"github.com/dmitrijs2005/contactbook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

// AddressService provides CRUD over a contact's addresses. Ownership is
// transitive: every operation first binds the contact to the requesting
// user, then the address to the contact.
type AddressService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAddressService(db *sql.DB, m repomanager.RepositoryManager) *AddressService {
	return &AddressService{db: db, repomanager: m}
}

func addressResponse(address *models.Address) *requests.AddressResponse {
	return &requests.AddressResponse{
		ID:         address.ID,
		ContactID:  address.ContactID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

// Create persists a new address under the contact after resolving the
// contact's ownership.
func (s *AddressService) Create(ctx context.Context, username string, contactID int64, req *requests.CreateAddress) (*requests.AddressResponse, error) {
	if err := resolveOwnedContact(ctx, s.repomanager.Contacts(s.db), username, contactID); err != nil {
		return nil, err
	}

	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	address := &models.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	address, err := s.repomanager.Addresses(s.db).Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("error creating address: %w", err)
	}

	return addressResponse(address), nil
}

// Get returns an address under the contact, or ErrorNotFound — including
// when the address id exists but hangs off a different contact.
func (s *AddressService) Get(ctx context.Context, username string, contactID, addressID int64) (*requests.AddressResponse, error) {
	if err := resolveOwnedContact(ctx, s.repomanager.Contacts(s.db), username, contactID); err != nil {
		return nil, err
	}

	if addressID <= 0 {
		return nil, requests.NewValidationError("addressId", "must be a positive integer")
	}

	address, err := s.repomanager.Addresses(s.db).GetByIDAndContact(ctx, addressID, contactID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching address: %w", err)
	}

	return addressResponse(address), nil
}

// Update persists the whitelisted address fields after re-checking that
// the address belongs to the contact, both inside one transaction.
func (s *AddressService) Update(ctx context.Context, username string, contactID int64, req *requests.UpdateAddress) (*requests.AddressResponse, error) {
	if err := resolveOwnedContact(ctx, s.repomanager.Contacts(s.db), username, contactID); err != nil {
		return nil, err
	}

	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	address := &models.Address{
		ID:         req.ID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Addresses(tx)
		count, err := repoTx.CountByIDAndContact(ctx, req.ID, contactID)
		if err != nil {
			return fmt.Errorf("error counting addresses: %w", err)
		}
		if count != 1 {
			return common.ErrorNotFound
		}
		return repoTx.Update(ctx, address)
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating address: %w", err)
	}

	return addressResponse(address), nil
}

// Remove deletes an address. The existence check is scoped by both id
// and contact id, so an address that belongs to a different contact is
// NotFound rather than a silent no-op.
func (s *AddressService) Remove(ctx context.Context, username string, contactID, addressID int64) error {
	if err := resolveOwnedContact(ctx, s.repomanager.Contacts(s.db), username, contactID); err != nil {
		return err
	}

	if addressID <= 0 {
		return requests.NewValidationError("addressId", "must be a positive integer")
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Addresses(tx)
		count, err := repoTx.CountByIDAndContact(ctx, addressID, contactID)
		if err != nil {
			return fmt.Errorf("error counting addresses: %w", err)
		}
		if count != 1 {
			return common.ErrorNotFound
		}
		return repoTx.DeleteByIDAndContact(ctx, addressID, contactID)
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting address: %w", err)
	}

	return nil
}

// List returns every address of the contact, ordered by id.
func (s *AddressService) List(ctx context.Context, username string, contactID int64) ([]*requests.AddressResponse, error) {
	if err := resolveOwnedContact(ctx, s.repomanager.Contacts(s.db), username, contactID); err != nil {
		return nil, err
	}

	found, err := s.repomanager.Addresses(s.db).ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("error listing addresses: %w", err)
	}

	result := make([]*requests.AddressResponse, 0, len(found))
	for _, address := range found {
		result = append(result, addressResponse(address))
	}

	return result, nil
}
