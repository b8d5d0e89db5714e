package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/donatehub/donatehub-go/internal/crypto"
	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
	"github.com/donatehub/donatehub-go/internal/service"
	"github.com/donatehub/donatehub-go/internal/testing/testdb"
)

type fixture struct {
	db        *sql.DB
	store     *repository.Store
	auth      *service.AuthService
	campaigns *service.CampaignService
	comments  *service.CommentService
	contacts  *service.ContactService
}

func newFixture(t *testing.T, detachOnRead bool) *fixture {
	t.Helper()

	db := testdb.Open(t)
	store := repository.NewStore(db)
	hasher := crypto.NewPasswordHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	tokens := crypto.NewTokenIssuer("test-secret", time.Hour)

	return &fixture{
		db:        db,
		store:     store,
		auth:      service.NewAuthService(store, hasher, tokens),
		campaigns: service.NewCampaignService(store),
		comments:  service.NewCommentService(store, detachOnRead),
		contacts:  service.NewContactService(store, detachOnRead),
	}
}

func (f *fixture) requester(t *testing.T, name string) model.Requester {
	t.Helper()
	u := testdb.CreateUser(t, f.store, name, name+"@example.com")
	return model.Requester{ID: u.ID, Email: u.Email, Name: u.Name}
}

func (f *fixture) createCampaign(t *testing.T, owner model.Requester) model.Campaign {
	t.Helper()
	c, err := f.campaigns.Create(t.Context(), owner, model.CampaignInput{
		Name:     "Winter coats",
		Cause:    "Keep kids warm",
		Location: "Boston",
		Item:     "coats",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) createComment(t *testing.T, owner model.Requester, campaignID, text string) model.Comment {
	t.Helper()
	c, err := f.comments.Create(t.Context(), owner, campaignID, model.CommentInput{Commented: text})
	require.NoError(t, err)
	return c
}

func ptr(s string) *string { return &s }
