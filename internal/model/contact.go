package model

import "time"

// Contact is a contact form submission left on a campaign.
type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Campaign  string    `json:"campaign"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactWithCampaign is a contact whose campaign reference is populated.
type ContactWithCampaign struct {
	Contact
	Campaign Campaign `json:"campaign"`
}

type ContactInput struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=255"`
	LastName  string `json:"lastName" validate:"required,notblank,max=255"`
	Email     string `json:"email" validate:"required,notblank,max=255"`
	Message   string `json:"message" validate:"required,notblank,max=4000"`
}

type ContactEnvelope struct {
	Contact ContactInput `json:"contact"`
}
