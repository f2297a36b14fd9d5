package requests

// CreateContact is the body of POST /api/contacts.
type CreateContact struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateContact is the body of PUT /api/contacts/{contactId}. The ID is
// taken from the URL, not the body.
type UpdateContact struct {
	ID        int64   `json:"-" validate:"required,gt=0"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// SearchContact carries the query parameters of GET /api/contacts.
// Page and Size are defaulted (1 and 10) before validation; the text
// filters are optional substrings combined conjunctively.
type SearchContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  int    `json:"page" validate:"min=1"`
	Size  int    `json:"size" validate:"min=1,max=100"`
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Paging describes one page of search results.
type Paging struct {
	Page      int   `json:"page"`
	TotalItem int64 `json:"total_item"`
	TotalPage int64 `json:"total_page"`
}

// SearchContactResponse is the body of a search reply: the page of
// matches plus paging metadata.
type SearchContactResponse struct {
	Data   []*ContactResponse `json:"data"`
	Paging Paging             `json:"paging"`
}
