package requests

// RegisterUser is the body of POST /api/users.
type RegisterUser struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUser is the body of POST /api/users/login.
type LoginUser struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUser is the body of PATCH /api/users/current. Both fields are
// optional; present fields must be non-empty. The target username comes
// from the session, never from the client.
type UpdateUser struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=100"`
}

// UserResponse is the public view of a user. The password hash is never
// part of any response.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse carries the opaque session token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}
