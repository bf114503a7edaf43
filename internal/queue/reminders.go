package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/pkg/logger"
)

// ScanReminders emits one notification event per overdue open task that has
// not been reminded yet, then marks the task so it never reminds twice. The
// caller is expected to hold the reminder lease so only one worker scans.
func ScanReminders(ctx context.Context, pgConn *pgxpool.Pool, ch *amqp091.Channel) error {
	q := db.New(pgConn)

	overdue, err := q.ListOverdueUnreminded(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to list overdue tasks: %w", err)
	}

	for _, activity := range overdue {
		due := "was due " + activity.DueAt.Format("Jan 2, 15:04")
		err := PublishNotification(ch, NotificationEvent{
			OrganizationID: activity.OrganizationID,
			UserID:         *activity.AssignedTo,
			Type:           "activity.overdue",
			Title:          "Task overdue: " + activity.Title,
			Body:           due,
			CaseID:         &activity.CaseID,
		})
		if err != nil {
			logger.Error("Failed to publish reminder", "activity", activity.ID, "err", err)
			continue
		}
		if err := q.MarkActivityReminded(ctx, activity.ID); err != nil {
			logger.Error("Failed to mark activity reminded", "activity", activity.ID, "err", err)
		}
	}

	if len(overdue) > 0 {
		logger.Info("Reminder scan complete", "reminders", len(overdue))
	}
	return nil
}
