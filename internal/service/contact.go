package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
)

// ContactService handles contact form submissions. Submitting a contact does
// not require authentication.
type ContactService struct {
	store        *repository.Store
	detachOnRead bool
}

// NewContactService creates a ContactService. With detachOnRead set, Get also
// removes the contact from its campaign's contact list.
func NewContactService(store *repository.Store, detachOnRead bool) *ContactService {
	return &ContactService{store: store, detachOnRead: detachOnRead}
}

// Create stores a contact submission for an existing campaign and appends it
// to the campaign's contact list.
func (s *ContactService) Create(ctx context.Context, campaignID string, in model.ContactInput) (model.Contact, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return model.Contact{}, err
	}

	contact := &model.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Message:   in.Message,
		Campaign:  campaignID,
	}

	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if _, err := findCampaign(ctx, tx, campaignID); err != nil {
			return err
		}
		if err := tx.Contacts.Create(ctx, contact); err != nil {
			return err
		}
		return syncInverseList(ctx, tx, repository.CampaignContacts, campaignID, contact.ID, repository.ListAdd)
	})
	if err != nil {
		return model.Contact{}, err
	}

	slog.InfoContext(ctx, "contact submitted", "contact_id", contact.ID, "campaign_id", campaignID)
	return *contact, nil
}

// Get returns one contact of a campaign with the full campaign populated.
func (s *ContactService) Get(ctx context.Context, campaignID, contactID string) (model.ContactWithCampaign, error) {
	var result model.ContactWithCampaign
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		campaign, err := findCampaign(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		contact, err := findContact(ctx, tx, contactID)
		if err != nil {
			return err
		}
		if contact.Campaign != campaignID {
			return &NotFoundError{Resource: "contact", ID: contactID}
		}

		if s.detachOnRead {
			if err := syncInverseList(ctx, tx, repository.CampaignContacts, campaignID, contactID, repository.ListRemove); err != nil {
				return err
			}
		}
		if err := attachCampaignLists(ctx, tx, campaign); err != nil {
			return err
		}

		result = model.ContactWithCampaign{Contact: *contact, Campaign: *campaign}
		return nil
	})
	return result, err
}
