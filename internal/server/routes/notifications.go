package routes

import (
	"fmt"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

func GetNotificationsHandler(c echo.Context) error {
	type getNotificationsParams struct {
		UnreadOnly bool `query:"unread_only"`
	}

	params := new(getNotificationsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	notifications, err := q.ListNotifications(c.Request().Context(), db.ListNotificationsParams{
		OrganizationID: user.OrganizationID,
		UserID:         user.UserID,
		UnreadOnly:     params.UnreadOnly,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, notifications)
}

func MarkNotificationReadHandler(c echo.Context) error {
	type markReadParams struct {
		NotificationID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(markReadParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	notification, err := q.MarkNotificationRead(c.Request().Context(), db.NotificationOwnerParams{
		OrganizationID: user.OrganizationID,
		UserID:         user.UserID,
		ID:             params.NotificationID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Notification not found"})
	}

	return c.JSON(http.StatusOK, notification)
}

func MarkAllNotificationsReadHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if err := q.MarkAllNotificationsRead(c.Request().Context(), db.MarkAllNotificationsReadParams{
		OrganizationID: user.OrganizationID,
		UserID:         user.UserID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "All notifications marked read"})
}

func DeleteNotificationHandler(c echo.Context) error {
	type deleteNotificationParams struct {
		NotificationID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteNotificationParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if err := q.DeleteNotification(c.Request().Context(), db.NotificationOwnerParams{
		OrganizationID: user.OrganizationID,
		UserID:         user.UserID,
		ID:             params.NotificationID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Notification deleted"})
}

// StreamNotificationsHandler holds an SSE connection open and forwards the
// caller's realtime notification payloads until the client disconnects.
func StreamNotificationsHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	events, err := app.Realtime.Subscribe(ctx, user.OrganizationID, user.UserID)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Realtime unavailable"})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case data := <-events:
			if _, err := fmt.Fprintf(res, "data: %s\n\n", data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
