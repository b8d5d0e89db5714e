package model

import "time"

// Campaign is a donation campaign. Comment and Contact hold the ids of its
// comments and contact submissions in insertion order.
type Campaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cause     string    `json:"cause"`
	Location  string    `json:"location"`
	Item      string    `json:"item"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	Owner     string    `json:"owner"`
	Comment   []string  `json:"comment"`
	Contact   []string  `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Campaign) OwnerID() string { return c.Owner }

// CampaignDetail is a campaign with its comments populated.
type CampaignDetail struct {
	Campaign
	Comment []Comment `json:"comment"`
}

// CampaignInput is the body of a campaign create request.
type CampaignInput struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Cause    string `json:"cause" validate:"required,notblank,max=255"`
	Location string `json:"location" validate:"required,notblank,max=255"`
	Item     string `json:"item" validate:"required,notblank,max=255"`
	Image    string `json:"image" validate:"max=2048"`
	Category string `json:"category" validate:"max=255"`
}

// CampaignPatch is the body of a campaign update request. Nil fields are
// left unchanged. The owner cannot be patched.
type CampaignPatch struct {
	Name     *string `json:"name"`
	Cause    *string `json:"cause"`
	Location *string `json:"location"`
	Item     *string `json:"item"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
}

// StripBlanks drops empty-string fields so they are treated as omitted.
func (p *CampaignPatch) StripBlanks() {
	p.Name = stripBlank(p.Name)
	p.Cause = stripBlank(p.Cause)
	p.Location = stripBlank(p.Location)
	p.Item = stripBlank(p.Item)
	p.Image = stripBlank(p.Image)
	p.Category = stripBlank(p.Category)
}

// Apply copies the set fields onto c.
func (p CampaignPatch) Apply(c *Campaign) {
	applyString(&c.Name, p.Name)
	applyString(&c.Cause, p.Cause)
	applyString(&c.Location, p.Location)
	applyString(&c.Item, p.Item)
	applyString(&c.Image, p.Image)
	applyString(&c.Category, p.Category)
}

type CampaignEnvelope struct {
	Campaign CampaignInput `json:"campaign"`
}

type CampaignPatchEnvelope struct {
	Campaign CampaignPatch `json:"campaign"`
}

func stripBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
