package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/donatehub/donatehub-go/internal/model"
)

// CampaignRepository handles campaign persistence operations. The Comment
// and Contact lists are not loaded here; see InverseListRepository.
type CampaignRepository struct {
	q Querier
}

func NewCampaignRepository(q Querier) *CampaignRepository {
	return &CampaignRepository{q: q}
}

const campaignColumns = `id, name, cause, location, item, image, category, owner_id, created_at, updated_at`

// Create inserts c, assigning its ID and timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	c.ID = uuid.NewString()
	c.CreatedAt = timestamp()
	c.UpdatedAt = c.CreatedAt

	query := `INSERT INTO campaigns (` + campaignColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		c.ID, c.Name, c.Cause, c.Location, c.Item, c.Image, c.Category, c.Owner, c.CreatedAt, c.UpdatedAt,
	)
	return mapError(err)
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*model.Campaign, error) {
	c := &model.Campaign{}
	err := r.q.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id).Scan(
		&c.ID, &c.Name, &c.Cause, &c.Location, &c.Item, &c.Image, &c.Category, &c.Owner, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// List returns every campaign, oldest first.
func (r *CampaignRepository) List(ctx context.Context) ([]model.Campaign, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Cause, &c.Location, &c.Item, &c.Image, &c.Category, &c.Owner, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// Update writes the descriptive fields of c. owner_id is never written.
func (r *CampaignRepository) Update(ctx context.Context, c *model.Campaign) error {
	c.UpdatedAt = timestamp()

	query := `UPDATE campaigns
		SET name = ?, cause = ?, location = ?, item = ?, image = ?, category = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.q.ExecContext(ctx, query,
		c.Name, c.Cause, c.Location, c.Item, c.Image, c.Category, c.UpdatedAt, c.ID,
	)
	return err
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	return err
}
