package requests

// CreateAddress is the body of POST /api/contacts/{contactId}/addresses.
type CreateAddress struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddress is the body of PUT .../addresses/{addressId}. The ID is
// taken from the URL, not the body.
type UpdateAddress struct {
	ID         int64  `json:"-" validate:"required,gt=0"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	ContactID  int64  `json:"contact_id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}
