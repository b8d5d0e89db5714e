package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/donatehub/donatehub-go/internal/model"
)

// ContactRepository handles contact submission persistence operations.
type ContactRepository struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepository {
	return &ContactRepository{q: q}
}

const contactColumns = `id, first_name, last_name, email, message, campaign_id, created_at, updated_at`

// Create inserts c, assigning its ID and timestamps.
func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	c.ID = uuid.NewString()
	c.CreatedAt = timestamp()
	c.UpdatedAt = c.CreatedAt

	query := `INSERT INTO contacts (` + contactColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Message, c.Campaign, c.CreatedAt, c.UpdatedAt,
	)
	return mapError(err)
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	c := &model.Contact{}
	err := r.q.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Message, &c.Campaign, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}
