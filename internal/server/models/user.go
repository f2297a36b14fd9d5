// Package models defines the persistent entities of the contactbook
// server and the patch structs enumerating their mutable fields.
package models

// User is an account row. Username is the primary identity and is
// immutable. Password holds a one-way bcrypt hash and is never returned
// to clients. Token is the opaque session credential, nil when the user
// is logged out.
type User struct {
	Username string
	Name     string
	Password string
	Token    *string
}

// UserPatch lists the fields a profile update may change. Nil fields are
// left untouched. Password must already be hashed by the caller.
type UserPatch struct {
	Name     *string
	Password *string
}
