package service

import (
	"context"
	"log/slog"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
)

// Owned is a resource that a single user may mutate.
type Owned interface {
	OwnerID() string
}

// requireOwnership fails with an *AuthorizationError unless requester owns
// resource.
func requireOwnership(requester model.Requester, resource Owned) error {
	if requester.ID == "" || resource.OwnerID() != requester.ID {
		return &AuthorizationError{RequesterID: requester.ID, OwnerID: resource.OwnerID()}
	}
	return nil
}

// requireFound turns the (nil, nil) absence result of a repository lookup
// into a *NotFoundError. Every single-entity lookup goes through it before
// any field of the result is read.
func requireFound[T any](resource, id string, v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &NotFoundError{Resource: resource, ID: id}
	}
	return v, nil
}

// syncInverseList adds childID to or removes it from the parent's list and
// persists the parent. It is one write of a multi-write operation; callers
// that need both writes to land together run it inside Store.InTx.
func syncInverseList(ctx context.Context, store *repository.Store, list repository.InverseList, parentID, childID string, op repository.ListOp) error {
	if err := store.Lists.Sync(ctx, list, parentID, childID, op); err != nil {
		return err
	}
	slog.DebugContext(ctx, "inverse list synced",
		"list", list.Name, "op", op.String(), "parent_id", parentID, "child_id", childID)
	return nil
}

func findUser(ctx context.Context, store *repository.Store, id string) (*model.User, error) {
	u, err := store.Users.FindByID(ctx, id)
	return requireFound("user", id, u, err)
}

func findCampaign(ctx context.Context, store *repository.Store, id string) (*model.Campaign, error) {
	c, err := store.Campaigns.FindByID(ctx, id)
	return requireFound("campaign", id, c, err)
}

func findComment(ctx context.Context, store *repository.Store, id string) (*model.Comment, error) {
	c, err := store.Comments.FindByID(ctx, id)
	return requireFound("comment", id, c, err)
}

func findContact(ctx context.Context, store *repository.Store, id string) (*model.Contact, error) {
	c, err := store.Contacts.FindByID(ctx, id)
	return requireFound("contact", id, c, err)
}
