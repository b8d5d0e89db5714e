package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/donatehub/donatehub-go/internal/crypto"
	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
)

// AuthService handles account and session business logic.
type AuthService struct {
	store  *repository.Store
	hasher *crypto.PasswordHasher
	tokens *crypto.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *repository.Store, hasher *crypto.PasswordHasher, tokens *crypto.TokenIssuer) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens}
}

// SignUp creates a new account. The password must be repeated in
// PasswordConfirmation.
func (s *AuthService) SignUp(ctx context.Context, creds model.Credentials) (model.UserResponse, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validateStruct(creds); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{Name: creds.Name, Email: creds.Email, HashedPassword: hash}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	slog.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return user.ToResponse(), nil
}

// SignIn verifies the credentials and starts a new session, replacing any
// previous one. The returned response carries the bearer token.
func (s *AuthService) SignIn(ctx context.Context, creds model.Credentials) (model.UserResponse, error) {
	user, err := s.store.Users.FindByEmail(ctx, strings.TrimSpace(creds.Email))
	if err != nil {
		return model.UserResponse{}, err
	}
	if user == nil {
		return model.UserResponse{}, ErrInvalidCredentials
	}

	match, err := s.hasher.Verify(creds.Password, user.HashedPassword)
	if err != nil {
		return model.UserResponse{}, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return model.UserResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, uuid.NewString())
	if err != nil {
		return model.UserResponse{}, err
	}
	if err := s.store.Users.SetToken(ctx, user.ID, token); err != nil {
		return model.UserResponse{}, err
	}

	if err := s.attachUserLists(ctx, user); err != nil {
		return model.UserResponse{}, err
	}

	resp := user.ToResponse()
	resp.Token = token
	return resp, nil
}

// SignOut ends the requester's session.
func (s *AuthService) SignOut(ctx context.Context, requester model.Requester) error {
	return s.store.Users.SetToken(ctx, requester.ID, "")
}

// ChangePassword replaces the requester's password after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, requester model.Requester, change model.PasswordChange) error {
	if err := validateStruct(change); err != nil {
		return err
	}

	user, err := findUser(ctx, s.store, requester.ID)
	if err != nil {
		return err
	}

	match, err := s.hasher.Verify(change.Old, user.HashedPassword)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(change.New)
	if err != nil {
		return err
	}
	return s.store.Users.SetPassword(ctx, user.ID, hash)
}

// Authenticate resolves a bearer token to the user it was issued to. A token
// is only accepted while it is the user's current session token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (model.Requester, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return model.Requester{}, ErrUnauthenticated
	}

	user, err := s.store.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		return model.Requester{}, err
	}
	if user == nil || user.Token == "" || subtle.ConstantTimeCompare([]byte(user.Token), []byte(token)) != 1 {
		return model.Requester{}, ErrUnauthenticated
	}

	return model.Requester{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Me returns the requester's account with its campaign lists.
func (s *AuthService) Me(ctx context.Context, requester model.Requester) (model.UserResponse, error) {
	user, err := findUser(ctx, s.store, requester.ID)
	if err != nil {
		return model.UserResponse{}, err
	}
	if err := s.attachUserLists(ctx, user); err != nil {
		return model.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

func (s *AuthService) attachUserLists(ctx context.Context, user *model.User) error {
	favorites, err := s.store.Lists.Children(ctx, repository.UserFavoriteCampaigns, user.ID)
	if err != nil {
		return err
	}
	created, err := s.store.Lists.Children(ctx, repository.UserCreatedCampaigns, user.ID)
	if err != nil {
		return err
	}
	user.FavoriteCampaign = favorites[user.ID]
	user.CreatedCampaign = created[user.ID]
	return nil
}
