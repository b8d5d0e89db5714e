package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/donatehub/donatehub-go/internal/model"
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	q Querier
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(q Querier) *UserRepository {
	return &UserRepository{q: q}
}

const userColumns = `id, name, email, hashed_password, token, created_at, updated_at`

// Create inserts a new user, assigning its ID and timestamps. A taken email
// yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = timestamp()
	user.UpdatedAt = user.CreatedAt

	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.HashedPassword, user.Token, user.CreatedAt, user.UpdatedAt,
	)
	return mapError(err)
}

// FindByEmail retrieves a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// FindByID retrieves a user by their ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// SetToken replaces the user's current session token. An empty token signs
// the user out.
func (r *UserRepository) SetToken(ctx context.Context, id, token string) error {
	_, err := r.q.ExecContext(ctx, `UPDATE users SET token = ?, updated_at = ? WHERE id = ?`, token, timestamp(), id)
	return err
}

// SetPassword replaces the user's password hash.
func (r *UserRepository) SetPassword(ctx context.Context, id, hashedPassword string) error {
	_, err := r.q.ExecContext(ctx, `UPDATE users SET hashed_password = ?, updated_at = ? WHERE id = ?`, hashedPassword, timestamp(), id)
	return err
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Token, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
