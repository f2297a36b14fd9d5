package models

// Contact belongs to exactly one user; Username is set on creation and
// never changes. Optional fields are nil when absent.
type Contact struct {
	ID        int64
	Username  string
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
}
