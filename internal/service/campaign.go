package service

import (
	"context"
	"log/slog"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
)

// CampaignService handles campaign business logic.
type CampaignService struct {
	store *repository.Store
}

func NewCampaignService(store *repository.Store) *CampaignService {
	return &CampaignService{store: store}
}

// List returns every campaign with its comment and contact id lists.
func (s *CampaignService) List(ctx context.Context) ([]model.Campaign, error) {
	campaigns, err := s.store.Campaigns.List(ctx)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*model.Campaign, len(campaigns))
	for i := range campaigns {
		ptrs[i] = &campaigns[i]
	}
	if err := attachCampaignLists(ctx, s.store, ptrs...); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Get returns one campaign with its comments populated.
func (s *CampaignService) Get(ctx context.Context, id string) (model.CampaignDetail, error) {
	campaign, err := findCampaign(ctx, s.store, id)
	if err != nil {
		return model.CampaignDetail{}, err
	}
	if err := attachCampaignLists(ctx, s.store, campaign); err != nil {
		return model.CampaignDetail{}, err
	}

	comments, err := s.store.Comments.FindByIDs(ctx, campaign.Comment)
	if err != nil {
		return model.CampaignDetail{}, err
	}
	return model.CampaignDetail{Campaign: *campaign, Comment: comments}, nil
}

// Create stores a new campaign owned by the requester and records it in the
// requester's createdCampaign list.
func (s *CampaignService) Create(ctx context.Context, requester model.Requester, in model.CampaignInput) (model.Campaign, error) {
	if err := validateStruct(in); err != nil {
		return model.Campaign{}, err
	}

	campaign := &model.Campaign{
		Name:     in.Name,
		Cause:    in.Cause,
		Location: in.Location,
		Item:     in.Item,
		Image:    in.Image,
		Category: in.Category,
		Owner:    requester.ID,
		Comment:  []string{},
		Contact:  []string{},
	}

	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := tx.Campaigns.Create(ctx, campaign); err != nil {
			return err
		}
		return syncInverseList(ctx, tx, repository.UserCreatedCampaigns, requester.ID, campaign.ID, repository.ListAdd)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	slog.InfoContext(ctx, "campaign created", "campaign_id", campaign.ID, "owner_id", requester.ID)
	return *campaign, nil
}

// Update applies patch to a campaign the requester owns. Empty-string fields
// in patch are treated as omitted and the owner can never change.
func (s *CampaignService) Update(ctx context.Context, requester model.Requester, id string, patch model.CampaignPatch) error {
	patch.StripBlanks()

	return s.store.InTx(ctx, func(tx *repository.Store) error {
		campaign, err := findCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := requireOwnership(requester, campaign); err != nil {
			return err
		}

		patch.Apply(campaign)
		if err := validateStruct(campaignInput(campaign)); err != nil {
			return err
		}
		return tx.Campaigns.Update(ctx, campaign)
	})
}

// Delete removes a campaign the requester owns. The campaign is first taken
// out of the owner's createdCampaign list and its own comment and contact
// lists are emptied. Comment and contact records are kept.
func (s *CampaignService) Delete(ctx context.Context, requester model.Requester, id string) error {
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		campaign, err := findCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := requireOwnership(requester, campaign); err != nil {
			return err
		}

		if err := syncInverseList(ctx, tx, repository.UserCreatedCampaigns, campaign.Owner, campaign.ID, repository.ListRemove); err != nil {
			return err
		}
		if err := tx.Lists.Clear(ctx, repository.CampaignComments, campaign.ID); err != nil {
			return err
		}
		if err := tx.Lists.Clear(ctx, repository.CampaignContacts, campaign.ID); err != nil {
			return err
		}
		return tx.Campaigns.Delete(ctx, campaign.ID)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "campaign deleted", "campaign_id", id, "owner_id", requester.ID)
	return nil
}

// Favorite adds an existing campaign to the requester's favoriteCampaign list.
func (s *CampaignService) Favorite(ctx context.Context, requester model.Requester, id string) error {
	return s.store.InTx(ctx, func(tx *repository.Store) error {
		if _, err := findCampaign(ctx, tx, id); err != nil {
			return err
		}
		return syncInverseList(ctx, tx, repository.UserFavoriteCampaigns, requester.ID, id, repository.ListAdd)
	})
}

// Unfavorite removes a campaign id from the requester's favoriteCampaign
// list. The campaign does not need to exist any more.
func (s *CampaignService) Unfavorite(ctx context.Context, requester model.Requester, id string) error {
	return syncInverseList(ctx, s.store, repository.UserFavoriteCampaigns, requester.ID, id, repository.ListRemove)
}

func attachCampaignLists(ctx context.Context, store *repository.Store, campaigns ...*model.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	ids := make([]string, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}

	comments, err := store.Lists.Children(ctx, repository.CampaignComments, ids...)
	if err != nil {
		return err
	}
	contacts, err := store.Lists.Children(ctx, repository.CampaignContacts, ids...)
	if err != nil {
		return err
	}

	for _, c := range campaigns {
		c.Comment = comments[c.ID]
		c.Contact = contacts[c.ID]
	}
	return nil
}
