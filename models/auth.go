package models

// LoginCredentials is the body of POST /auth/login/.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterData is the body of POST /auth/register/.
type RegisterData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

// PasswordChange is the body of POST /auth/password/change/.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ProfileUpdate is the partial body of PUT /auth/profile/. Nil fields are
// omitted so the backend leaves them untouched.
type ProfileUpdate struct {
	Nickname *string `json:"nickname,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Gender   *Gender `json:"gender,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
}

// LoginResponse is the payload of a successful login: a bearer token and the
// authenticated user.
type LoginResponse struct {
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// RegisterResponse is the raw payload of a successful registration.
// Registration does not sign the user in, so no token is returned.
type RegisterResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// ProfileResponse is the payload of a successful profile update.
type ProfileResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// MessageResponse is the generic `{"message": "..."}` acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
