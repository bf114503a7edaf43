package queue

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/emerginginv/traceaid/internal/util"
)

const NotifyQueue = "notify_queue"

// NotificationEvent is the wire format on notify_queue. The worker persists
// it as a notifications row and fans it out over the realtime hub.
type NotificationEvent struct {
	EventID        string `json:"event_id"`
	OrganizationID int64  `json:"organization_id"`
	UserID         int64  `json:"user_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Body           string `json:"body,omitempty"`
	CaseID         *int64 `json:"case_id,omitempty"`
}

func PublishNotification(ch *amqp091.Channel, event NotificationEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return util.RetryErr(3, func() error {
		return PublishFIFO(ch, NotifyQueue, data)
	})
}
