package db

import "context"

const notificationColumns = `id, organization_id, user_id, type, title, body, case_id, read, created_at`

func scanNotification(row interface{ Scan(dest ...any) error }) (Notification, error) {
	var n Notification
	err := row.Scan(
		&n.ID, &n.OrganizationID, &n.UserID, &n.Type, &n.Title, &n.Body, &n.CaseID, &n.Read, &n.CreatedAt,
	)
	return n, err
}

type InsertNotificationParams struct {
	OrganizationID int64
	UserID         int64
	Type           string
	Title          string
	Body           *string
	CaseID         *int64
}

func (q *Queries) InsertNotification(ctx context.Context, arg InsertNotificationParams) (Notification, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO notifications (organization_id, user_id, type, title, body, case_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+notificationColumns,
		arg.OrganizationID, arg.UserID, arg.Type, arg.Title, arg.Body, arg.CaseID,
	)
	return scanNotification(row)
}

type ListNotificationsParams struct {
	OrganizationID int64
	UserID         int64
	UnreadOnly     bool
}

func (q *Queries) ListNotifications(ctx context.Context, arg ListNotificationsParams) ([]Notification, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE organization_id = $1 AND user_id = $2
		  AND (NOT $3 OR NOT read)
		ORDER BY created_at DESC
		LIMIT 200`,
		arg.OrganizationID, arg.UserID, arg.UnreadOnly,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

type NotificationOwnerParams struct {
	OrganizationID int64
	UserID         int64
	ID             int64
}

func (q *Queries) MarkNotificationRead(ctx context.Context, arg NotificationOwnerParams) (Notification, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE notifications
		SET read = TRUE
		WHERE organization_id = $1 AND user_id = $2 AND id = $3
		RETURNING `+notificationColumns,
		arg.OrganizationID, arg.UserID, arg.ID,
	)
	return scanNotification(row)
}

type MarkAllNotificationsReadParams struct {
	OrganizationID int64
	UserID         int64
}

func (q *Queries) MarkAllNotificationsRead(ctx context.Context, arg MarkAllNotificationsReadParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE notifications
		SET read = TRUE
		WHERE organization_id = $1 AND user_id = $2 AND NOT read`,
		arg.OrganizationID, arg.UserID,
	)
	return err
}

func (q *Queries) DeleteNotification(ctx context.Context, arg NotificationOwnerParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM notifications
		WHERE organization_id = $1 AND user_id = $2 AND id = $3`,
		arg.OrganizationID, arg.UserID, arg.ID,
	)
	return err
}
