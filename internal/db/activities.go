package db

import (
	"context"
	"time"
)

const activityColumns = `id, organization_id, case_id, activity_type, title, notes, status,
	due_at, assigned_to, reminded_at, created_by, created_at, updated_at`

func scanActivity(row interface{ Scan(dest ...any) error }) (CaseActivity, error) {
	var a CaseActivity
	err := row.Scan(
		&a.ID, &a.OrganizationID, &a.CaseID, &a.ActivityType, &a.Title, &a.Notes, &a.Status,
		&a.DueAt, &a.AssignedTo, &a.RemindedAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

type CreateActivityParams struct {
	OrganizationID int64
	CaseID         int64
	ActivityType   string
	Title          string
	Notes          *string
	DueAt          *time.Time
	AssignedTo     *int64
	CreatedBy      int64
}

func (q *Queries) CreateActivity(ctx context.Context, arg CreateActivityParams) (CaseActivity, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO case_activities
			(organization_id, case_id, activity_type, title, notes, status, due_at, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, 'open', $6, $7, $8)
		RETURNING `+activityColumns,
		arg.OrganizationID, arg.CaseID, arg.ActivityType, arg.Title, arg.Notes,
		arg.DueAt, arg.AssignedTo, arg.CreatedBy,
	)
	return scanActivity(row)
}

type GetActivityParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetActivity(ctx context.Context, arg GetActivityParams) (CaseActivity, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+activityColumns+` FROM case_activities
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanActivity(row)
}

type ListActivitiesParams struct {
	OrganizationID int64
	CaseID         int64
}

func (q *Queries) ListActivities(ctx context.Context, arg ListActivitiesParams) ([]CaseActivity, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+activityColumns+` FROM case_activities
		WHERE organization_id = $1 AND case_id = $2
		ORDER BY due_at NULLS LAST, created_at`,
		arg.OrganizationID, arg.CaseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]CaseActivity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

type UpdateActivityParams struct {
	OrganizationID int64
	ID             int64
	Title          string
	Notes          *string
	DueAt          *time.Time
	AssignedTo     *int64
}

func (q *Queries) UpdateActivity(ctx context.Context, arg UpdateActivityParams) (CaseActivity, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE case_activities
		SET title = $3, notes = $4, due_at = $5, assigned_to = $6, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+activityColumns,
		arg.OrganizationID, arg.ID, arg.Title, arg.Notes, arg.DueAt, arg.AssignedTo,
	)
	return scanActivity(row)
}

type SetActivityStatusParams struct {
	OrganizationID int64
	ID             int64
	Status         string
}

func (q *Queries) SetActivityStatus(ctx context.Context, arg SetActivityStatusParams) (CaseActivity, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE case_activities
		SET status = $3, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+activityColumns,
		arg.OrganizationID, arg.ID, arg.Status,
	)
	return scanActivity(row)
}

func (q *Queries) DeleteActivity(ctx context.Context, arg GetActivityParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM case_activities WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}

// ListOverdueUnreminded returns open tasks with an assignee whose due time
// has passed and which have not yet produced a reminder. Used by the worker.
func (q *Queries) ListOverdueUnreminded(ctx context.Context, now time.Time) ([]CaseActivity, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+activityColumns+` FROM case_activities
		WHERE activity_type = 'task'
		  AND status = 'open'
		  AND assigned_to IS NOT NULL
		  AND due_at IS NOT NULL AND due_at < $1
		  AND reminded_at IS NULL
		ORDER BY due_at`,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]CaseActivity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (q *Queries) MarkActivityReminded(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, `
		UPDATE case_activities SET reminded_at = now() WHERE id = $1`,
		id,
	)
	return err
}
