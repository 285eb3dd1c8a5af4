package models

// SessionUser is the profile slice of the login response that is retained for
// the lifetime of a session. It is stored alongside the bearer token and the
// two are always cleared together.
type SessionUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// User is one row of the admin user listing.
type User struct {
	UserID    string   `json:"user_id"`
	UserCode  string   `json:"user_code"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Status    string   `json:"status"`
	CreatedAt FlexTime `json:"created_at"`
}

// IntelKey returns the identifier used to pivot from a user row into the
// intelligence page: user code first, then email, then the internal ID.
func (u User) IntelKey() string {
	if u.UserCode != "" {
		return u.UserCode
	}
	if u.Email != "" {
		return u.Email
	}
	return u.UserID
}

// LoginResponse is the body of POST /auth/login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        SessionUser `json:"user"`
	Detail      string      `json:"detail"`
}

// RegisterResponse is the body of POST /auth/register. A populated Detail
// field signals a business failure even on a 2xx transport status.
type RegisterResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserCode string `json:"user_code"`
	Detail   string `json:"detail"`
}
