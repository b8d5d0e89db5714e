package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// InverseList describes a denormalized parent -> children id list stored as
// a link table. Every mutation is a single INSERT or DELETE, so concurrent
// writers on the same parent cannot lose each other's updates.
type InverseList struct {
	Name         string
	table        string
	parentTable  string
	parentColumn string
	childColumn  string
}

var (
	CampaignComments = InverseList{
		Name: "campaign.comment", table: "campaign_comments",
		parentTable: "campaigns", parentColumn: "campaign_id", childColumn: "comment_id",
	}
	CampaignContacts = InverseList{
		Name: "campaign.contact", table: "campaign_contacts",
		parentTable: "campaigns", parentColumn: "campaign_id", childColumn: "contact_id",
	}
	UserCreatedCampaigns = InverseList{
		Name: "user.createdCampaign", table: "user_created_campaigns",
		parentTable: "users", parentColumn: "user_id", childColumn: "campaign_id",
	}
	UserFavoriteCampaigns = InverseList{
		Name: "user.favoriteCampaign", table: "user_favorite_campaigns",
		parentTable: "users", parentColumn: "user_id", childColumn: "campaign_id",
	}
)

// ListOp selects the mutation applied by Sync.
type ListOp int

const (
	ListAdd ListOp = iota + 1
	ListRemove
)

func (op ListOp) String() string {
	switch op {
	case ListAdd:
		return "add"
	case ListRemove:
		return "remove"
	default:
		return fmt.Sprintf("ListOp(%d)", int(op))
	}
}

// InverseListRepository maintains the inverse lists.
type InverseListRepository struct {
	q Querier
}

func NewInverseListRepository(q Querier) *InverseListRepository {
	return &InverseListRepository{q: q}
}

// Sync adds childID to or removes it from the parent's list, then persists
// the parent by bumping its updated_at. Adding an id that is already present
// and removing one that is absent are both no-ops.
func (r *InverseListRepository) Sync(ctx context.Context, list InverseList, parentID, childID string, op ListOp) error {
	var err error
	switch op {
	case ListAdd:
		query := fmt.Sprintf(`INSERT INTO %s (%s, %s, added_at) VALUES (?, ?, ?)`,
			list.table, list.parentColumn, list.childColumn)
		_, err = r.q.ExecContext(ctx, query, parentID, childID, time.Now().UnixNano())
		if err = mapError(err); errors.Is(err, ErrDuplicate) {
			err = nil
		}
	case ListRemove:
		query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s = ?`,
			list.table, list.parentColumn, list.childColumn)
		_, err = r.q.ExecContext(ctx, query, parentID, childID)
	default:
		return fmt.Errorf("%s: unknown list operation %v", list.Name, op)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", list.Name, op, err)
	}

	touch := fmt.Sprintf(`UPDATE %s SET updated_at = ? WHERE id = ?`, list.parentTable)
	if _, err := r.q.ExecContext(ctx, touch, timestamp(), parentID); err != nil {
		return fmt.Errorf("%s touch parent: %w", list.Name, err)
	}
	return nil
}

// Contains reports whether childID is in the parent's list.
func (r *InverseListRepository) Contains(ctx context.Context, list InverseList, parentID, childID string) (bool, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ? AND %s = ?`,
		list.table, list.parentColumn, list.childColumn)

	var n int
	if err := r.q.QueryRowContext(ctx, query, parentID, childID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Children returns the ordered child ids of each requested parent. Parents
// with an empty list map to an empty, non-nil slice.
func (r *InverseListRepository) Children(ctx context.Context, list InverseList, parentIDs ...string) (map[string][]string, error) {
	result := make(map[string][]string, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}
	for _, id := range parentIDs {
		result[id] = []string{}
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s IN (%s) ORDER BY added_at ASC, %s ASC`,
		list.parentColumn, list.childColumn, list.table, list.parentColumn,
		placeholders(len(parentIDs)), list.childColumn)

	rows, err := r.q.QueryContext(ctx, query, stringArgs(parentIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parentID, childID string
		if err := rows.Scan(&parentID, &childID); err != nil {
			return nil, err
		}
		result[parentID] = append(result[parentID], childID)
	}

	return result, rows.Err()
}

// Clear empties the parent's list. Used when the parent itself is deleted.
func (r *InverseListRepository) Clear(ctx context.Context, list InverseList, parentID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, list.table, list.parentColumn)
	_, err := r.q.ExecContext(ctx, query, parentID)
	return err
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func stringArgs(ss []string) []any {
	args := make([]any, len(ss))
	for i, s := range ss {
		args[i] = s
	}
	return args
}
