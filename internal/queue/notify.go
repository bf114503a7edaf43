package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/realtime"
	"github.com/emerginginv/traceaid/pkg/logger"
)

// ProcessNotifyMessage persists one notification event and fans it out to
// the recipient's live streams. Fan-out failure is not fatal; the stored row
// is the source of truth.
func ProcessNotifyMessage(ctx context.Context, pgConn *pgxpool.Pool, hub *realtime.Hub, body []byte) error {
	var event NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("invalid notification event: %w", err)
	}
	if event.OrganizationID == 0 || event.UserID == 0 {
		return fmt.Errorf("notification event missing recipient")
	}

	q := db.New(pgConn)

	var bodyText *string
	if event.Body != "" {
		bodyText = &event.Body
	}

	notification, err := q.InsertNotification(ctx, db.InsertNotificationParams{
		OrganizationID: event.OrganizationID,
		UserID:         event.UserID,
		Type:           event.Type,
		Title:          event.Title,
		Body:           bodyText,
		CaseID:         event.CaseID,
	})
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	if err := hub.Publish(event.OrganizationID, event.UserID, payload); err != nil {
		logger.Warn("Realtime fan-out failed", "notification", notification.ID, "err", err)
	}

	return nil
}
