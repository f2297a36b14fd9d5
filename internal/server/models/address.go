package models

// Address belongs to exactly one contact; ContactID is set on creation
// and never changes.
type Address struct {
	ID         int64
	ContactID  int64
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}
