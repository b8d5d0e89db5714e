package model

import "time"

// Comment is a user's comment on a campaign.
type Comment struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	Commented  string    `json:"commented"`
	CampaignID string    `json:"campaignId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c *Comment) OwnerID() string { return c.Owner }

// CommentWithOwner is a comment whose owner is populated with the user's name.
type CommentWithOwner struct {
	Comment
	Owner UserRef `json:"owner"`
}

// CommentWithCampaign is a comment whose campaign reference is populated.
type CommentWithCampaign struct {
	Comment
	CampaignID CampaignRef `json:"campaignId"`
}

// CampaignRef is the id-only populated form of a campaign reference.
type CampaignRef struct {
	ID string `json:"id"`
}

// CommentInput is the body of a comment create or update request. Any owner
// or campaign field the client sends is ignored.
type CommentInput struct {
	Commented string `json:"commented" validate:"required,notblank,max=4000"`
}

type CommentEnvelope struct {
	Comment CommentInput `json:"comment"`
}
