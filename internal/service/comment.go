package service

import (
	"context"
	"log/slog"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
)

// CommentService handles comment business logic.
type CommentService struct {
	store        *repository.Store
	detachOnRead bool
}

// NewCommentService creates a CommentService. With detachOnRead set, Get also
// removes the comment from its campaign's comment list.
func NewCommentService(store *repository.Store, detachOnRead bool) *CommentService {
	return &CommentService{store: store, detachOnRead: detachOnRead}
}

// ListForCampaign returns the comments on a campaign with owner names.
func (s *CommentService) ListForCampaign(ctx context.Context, campaignID string) ([]model.CommentWithOwner, error) {
	if _, err := findCampaign(ctx, s.store, campaignID); err != nil {
		return nil, err
	}
	return s.store.Comments.ListByCampaign(ctx, campaignID)
}

// Get returns one comment of a campaign with the campaign reference populated.
func (s *CommentService) Get(ctx context.Context, campaignID, commentID string) (model.CommentWithCampaign, error) {
	var comment *model.Comment
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		var err error
		comment, err = s.findCampaignComment(ctx, tx, campaignID, commentID)
		if err != nil {
			return err
		}
		if s.detachOnRead {
			return syncInverseList(ctx, tx, repository.CampaignComments, campaignID, commentID, repository.ListRemove)
		}
		return nil
	})
	if err != nil {
		return model.CommentWithCampaign{}, err
	}

	return model.CommentWithCampaign{
		Comment:    *comment,
		CampaignID: model.CampaignRef{ID: comment.CampaignID},
	}, nil
}

// Create adds a comment by the requester to an existing campaign and appends
// it to the campaign's comment list.
func (s *CommentService) Create(ctx context.Context, requester model.Requester, campaignID string, in model.CommentInput) (model.Comment, error) {
	if err := validateStruct(in); err != nil {
		return model.Comment{}, err
	}

	comment := &model.Comment{
		Owner:      requester.ID,
		Commented:  in.Commented,
		CampaignID: campaignID,
	}
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if _, err := findCampaign(ctx, tx, campaignID); err != nil {
			return err
		}
		if err := tx.Comments.Create(ctx, comment); err != nil {
			return err
		}
		return syncInverseList(ctx, tx, repository.CampaignComments, campaignID, comment.ID, repository.ListAdd)
	})
	if err != nil {
		return model.Comment{}, err
	}

	slog.InfoContext(ctx, "comment created", "comment_id", comment.ID, "campaign_id", campaignID)
	return *comment, nil
}

// Update replaces the text of a comment the requester owns. An empty text
// leaves the comment unchanged.
func (s *CommentService) Update(ctx context.Context, requester model.Requester, commentID string, in model.CommentInput) error {
	return s.store.InTx(ctx, func(tx *repository.Store) error {
		comment, err := findComment(ctx, tx, commentID)
		if err != nil {
			return err
		}
		if err := requireOwnership(requester, comment); err != nil {
			return err
		}
		if in.Commented == "" {
			return nil
		}

		if err := validateStruct(in); err != nil {
			return err
		}
		comment.Commented = in.Commented
		return tx.Comments.UpdateText(ctx, comment)
	})
}

// Delete removes a comment the requester owns from a campaign: the id leaves
// the campaign's list first, then the record is deleted.
func (s *CommentService) Delete(ctx context.Context, requester model.Requester, campaignID, commentID string) error {
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		comment, err := s.findCampaignComment(ctx, tx, campaignID, commentID)
		if err != nil {
			return err
		}
		if err := requireOwnership(requester, comment); err != nil {
			return err
		}

		if err := syncInverseList(ctx, tx, repository.CampaignComments, campaignID, commentID, repository.ListRemove); err != nil {
			return err
		}
		return tx.Comments.Delete(ctx, commentID)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "comment deleted", "comment_id", commentID, "campaign_id", campaignID)
	return nil
}

// findCampaignComment looks up a comment through its campaign. A comment that
// belongs to another campaign is reported as not found.
func (s *CommentService) findCampaignComment(ctx context.Context, store *repository.Store, campaignID, commentID string) (*model.Comment, error) {
	if _, err := findCampaign(ctx, store, campaignID); err != nil {
		return nil, err
	}
	comment, err := findComment(ctx, store, commentID)
	if err != nil {
		return nil, err
	}
	if comment.CampaignID != campaignID {
		return nil, &NotFoundError{Resource: "comment", ID: commentID}
	}
	return comment, nil
}
