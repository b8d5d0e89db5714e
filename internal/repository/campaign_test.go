package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
	"github.com/donatehub/donatehub-go/internal/testing/testdb"
)

func TestCampaignRepository_CRUD(t *testing.T) {
	store := testdb.NewStore(t)
	ctx := context.Background()
	owner := testdb.CreateUser(t, store, "Ada", "ada@example.com")

	c := &model.Campaign{
		Name: "Coats", Cause: "Winter", Location: "Oslo", Item: "coat",
		Image: "https://img.example.com/coat.png", Owner: owner.ID,
	}
	require.NoError(t, store.Campaigns.Create(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := store.Campaigns.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Coats", got.Name)
	assert.Equal(t, owner.ID, got.Owner)
	assert.Equal(t, "https://img.example.com/coat.png", got.Image)
	assert.Empty(t, got.Category)

	got.Name = "Warm coats"
	got.Category = "clothing"
	got.Owner = "someone-else"
	require.NoError(t, store.Campaigns.Update(ctx, got))

	updated, err := store.Campaigns.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Warm coats", updated.Name)
	assert.Equal(t, "clothing", updated.Category)
	assert.Equal(t, owner.ID, updated.Owner, "update must never change owner")

	require.NoError(t, store.Campaigns.Delete(ctx, c.ID))
	gone, err := store.Campaigns.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCampaignRepository_List(t *testing.T) {
	store := testdb.NewStore(t)
	ctx := context.Background()

	empty, err := store.Campaigns.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	owner := testdb.CreateUser(t, store, "Ada", "ada@example.com")
	newCampaign(t, store, owner.ID)
	newCampaign(t, store, owner.ID)

	all, err := store.Campaigns.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCommentRepository_Lifecycle(t *testing.T) {
	store := testdb.NewStore(t)
	ctx := context.Background()
	owner := testdb.CreateUser(t, store, "Ada", "ada@example.com")
	campaign := newCampaign(t, store, owner.ID)

	first := &model.Comment{Owner: owner.ID, Commented: "first", CampaignID: campaign.ID}
	second := &model.Comment{Owner: "ghost-user", Commented: "second", CampaignID: campaign.ID}
	require.NoError(t, store.Comments.Create(ctx, first))
	require.NoError(t, store.Comments.Create(ctx, second))

	listed, err := store.Comments.ListByCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	byID := map[string]model.CommentWithOwner{}
	for _, c := range listed {
		byID[c.ID] = c
	}
	assert.Equal(t, model.UserRef{ID: owner.ID, Name: "Ada"}, byID[first.ID].Owner)
	assert.Equal(t, model.UserRef{ID: "ghost-user", Name: ""}, byID[second.ID].Owner)

	found, err := store.Comments.FindByIDs(ctx, []string{second.ID, "missing", first.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, second.ID, found[0].ID)
	assert.Equal(t, first.ID, found[1].ID)

	first.Commented = "edited"
	require.NoError(t, store.Comments.UpdateText(ctx, first))
	got, err := store.Comments.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Commented)
	assert.Equal(t, campaign.ID, got.CampaignID)

	require.NoError(t, store.Comments.Delete(ctx, first.ID))
	got, err = store.Comments.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContactRepository_CreateAndFind(t *testing.T) {
	store := testdb.NewStore(t)
	ctx := context.Background()
	owner := testdb.CreateUser(t, store, "Ada", "ada@example.com")
	campaign := newCampaign(t, store, owner.ID)

	c := &model.Contact{FirstName: "A", LastName: "B", Email: "a@b.com", Message: "hi", Campaign: campaign.ID}
	require.NoError(t, store.Contacts.Create(ctx, c))

	got, err := store.Contacts.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.FirstName)
	assert.Equal(t, "B", got.LastName)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "hi", got.Message)
	assert.Equal(t, campaign.ID, got.Campaign)

	missing, err := store.Contacts.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, repository.Migrate(db, "sqlite3"))
}
