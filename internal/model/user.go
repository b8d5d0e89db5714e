package model

import "time"

// User represents a user in the database.
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	Token          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	FavoriteCampaign []string
	CreatedCampaign  []string
}

// Requester is the authenticated user a request acts on behalf of.
type Requester struct {
	ID    string
	Email string
	Name  string
}

// Credentials is the body of sign-up and sign-in requests.
type Credentials struct {
	Name                 string `json:"name" validate:"max=255"`
	Email                string `json:"email" validate:"required,notblank,max=255"`
	Password             string `json:"password" validate:"required,max=255"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

// CredentialsEnvelope wraps Credentials under the "credentials" key.
type CredentialsEnvelope struct {
	Credentials Credentials `json:"credentials"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email"`
	Token            string    `json:"token,omitempty"`
	FavoriteCampaign []string  `json:"favoriteCampaign"`
	CreatedCampaign  []string  `json:"createdCampaign"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserRef is the populated form of a user reference.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToResponse strips the password hash and session token.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		FavoriteCampaign: nonNil(u.FavoriteCampaign),
		CreatedCampaign:  nonNil(u.CreatedCampaign),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// PasswordChange is the body of a change-password request.
type PasswordChange struct {
	Old string `json:"old"`
	New string `json:"new" validate:"required,notblank,max=255"`
}

type PasswordChangeEnvelope struct {
	Passwords PasswordChange `json:"passwords"`
}
