package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/donatehub/donatehub-go/internal/model"
)

// CommentRepository handles comment persistence operations.
type CommentRepository struct {
	q Querier
}

func NewCommentRepository(q Querier) *CommentRepository {
	return &CommentRepository{q: q}
}

const commentColumns = `id, owner_id, commented, campaign_id, created_at, updated_at`

// Create inserts c, assigning its ID and timestamps.
func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	c.ID = uuid.NewString()
	c.CreatedAt = timestamp()
	c.UpdatedAt = c.CreatedAt

	query := `INSERT INTO comments (` + commentColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query, c.ID, c.Owner, c.Commented, c.CampaignID, c.CreatedAt, c.UpdatedAt)
	return mapError(err)
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	c := &model.Comment{}
	err := r.q.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = ?`, id).Scan(
		&c.ID, &c.Owner, &c.Commented, &c.CampaignID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// FindByIDs returns the comments with the given ids in the order of ids.
// Ids with no matching row are skipped.
func (r *CommentRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Comment, error) {
	comments := []model.Comment{}
	if len(ids) == 0 {
		return comments, nil
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id IN (`+placeholders(len(ids))+`)`,
		stringArgs(ids)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]model.Comment, len(ids))
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Owner, &c.Commented, &c.CampaignID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range ids {
		if c, ok := byID[id]; ok {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// ListByCampaign returns the comments whose campaignId is campaignID, oldest
// first, with each owner's name populated.
func (r *CommentRepository) ListByCampaign(ctx context.Context, campaignID string) ([]model.CommentWithOwner, error) {
	query := `SELECT c.id, c.owner_id, c.commented, c.campaign_id, c.created_at, c.updated_at, COALESCE(u.name, '')
		FROM comments c
		LEFT JOIN users u ON u.id = c.owner_id
		WHERE c.campaign_id = ?
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.q.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.CommentWithOwner{}
	for rows.Next() {
		var c model.CommentWithOwner
		if err := rows.Scan(
			&c.Comment.ID, &c.Comment.Owner, &c.Commented, &c.CampaignID, &c.CreatedAt, &c.UpdatedAt, &c.Owner.Name,
		); err != nil {
			return nil, err
		}
		c.Owner.ID = c.Comment.Owner
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// UpdateText rewrites the comment body. Owner and campaign are immutable.
func (r *CommentRepository) UpdateText(ctx context.Context, c *model.Comment) error {
	c.UpdatedAt = timestamp()
	_, err := r.q.ExecContext(ctx, `UPDATE comments SET commented = ?, updated_at = ? WHERE id = ?`,
		c.Commented, c.UpdatedAt, c.ID)
	return err
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	return err
}
