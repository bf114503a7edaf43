package routes

import (
	"net/http"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/queue"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/pkg/logger"
)

func GetCaseActivitiesHandler(c echo.Context) error {
	type getActivitiesParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getActivitiesParams)
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

	activities, err := q.ListActivities(c.Request().Context(), db.ListActivitiesParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, activities)
}

// CreateActivityHandler records a task or event on a case. Assigning a task
// to someone else notifies them.
func CreateActivityHandler(c echo.Context) error {
	type createActivityParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type createActivityBody struct {
		ActivityType string     `json:"activity_type" validate:"required,oneof=task event"`
		Title        string     `json:"title" validate:"required"`
		Notes        *string    `json:"notes,omitempty"`
		DueAt        *time.Time `json:"due_at,omitempty"`
		AssignedTo   *int64     `json:"assigned_to,omitempty"`
	}

	type createActivityResponse struct {
		Message  string           `json:"message"`
		Activity *db.CaseActivity `json:"activity,omitempty"`
	}

	params := new(createActivityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, createActivityResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, createActivityResponse{
			Message: "Invalid request params",
		})
	}

	data := new(createActivityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createActivityResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createActivityResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createActivityResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	caseRow, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, createActivityResponse{
			Message: "Case not found",
		})
	}

	if data.AssignedTo != nil {
		count, err := q.IsOrganizationMember(ctx, db.IsOrganizationMemberParams{
			OrganizationID: user.OrganizationID,
			UserID:         *data.AssignedTo,
		})
		if err != nil || count == 0 {
			return c.JSON(http.StatusBadRequest, createActivityResponse{
				Message: "Assignee is not a member of this organization",
			})
		}
	}

	activity, err := q.CreateActivity(ctx, db.CreateActivityParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
		ActivityType:   data.ActivityType,
		Title:          data.Title,
		Notes:          data.Notes,
		DueAt:          data.DueAt,
		AssignedTo:     data.AssignedTo,
		CreatedBy:      user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createActivityResponse{
			Message: "Internal server error",
		})
	}

	if activity.AssignedTo != nil && *activity.AssignedTo != user.UserID {
		err = queue.PublishNotification(app.Queue, queue.NotificationEvent{
			OrganizationID: user.OrganizationID,
			UserID:         *activity.AssignedTo,
			Type:           "activity.assigned",
			Title:          "You were assigned: " + activity.Title,
			CaseID:         &caseRow.ID,
		})
		if err != nil {
			logger.Error("Failed to publish assignment notification", "activity", activity.ID, "err", err)
		}
	}

	return c.JSON(http.StatusOK, createActivityResponse{
		Message: "Activity created successfully",
		Activity: &activity,
	})
}

func UpdateActivityHandler(c echo.Context) error {
	type updateActivityParams struct {
		ActivityID int64 `param:"id" validate:"required,numeric"`
	}

	type updateActivityBody struct {
		Title      string     `json:"title" validate:"required"`
		Notes      *string    `json:"notes,omitempty"`
		DueAt      *time.Time `json:"due_at,omitempty"`
		AssignedTo *int64     `json:"assigned_to,omitempty"`
	}

	type updateActivityResponse struct {
		Message  string           `json:"message"`
		Activity *db.CaseActivity `json:"activity,omitempty"`
	}

	params := new(updateActivityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateActivityResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateActivityResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateActivityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateActivityResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateActivityResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateActivityResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	existing, err := q.GetActivity(ctx, db.GetActivityParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ActivityID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateActivityResponse{
			Message: "Activity not found",
		})
	}

	if data.AssignedTo != nil {
		count, err := q.IsOrganizationMember(ctx, db.IsOrganizationMemberParams{
			OrganizationID: user.OrganizationID,
			UserID:         *data.AssignedTo,
		})
		if err != nil || count == 0 {
			return c.JSON(http.StatusBadRequest, updateActivityResponse{
				Message: "Assignee is not a member of this organization",
			})
		}
	}

	activity, err := q.UpdateActivity(ctx, db.UpdateActivityParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ActivityID,
		Title:          data.Title,
		Notes:          data.Notes,
		DueAt:          data.DueAt,
		AssignedTo:     data.AssignedTo,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, updateActivityResponse{
			Message: "Internal server error",
		})
	}

	newAssignee := activity.AssignedTo != nil &&
		(existing.AssignedTo == nil || *existing.AssignedTo != *activity.AssignedTo)
	if newAssignee && *activity.AssignedTo != user.UserID {
		err = queue.PublishNotification(app.Queue, queue.NotificationEvent{
			OrganizationID: user.OrganizationID,
			UserID:         *activity.AssignedTo,
			Type:           "activity.assigned",
			Title:          "You were assigned: " + activity.Title,
			CaseID:         &activity.CaseID,
		})
		if err != nil {
			logger.Error("Failed to publish assignment notification", "activity", activity.ID, "err", err)
		}
	}

	return c.JSON(http.StatusOK, updateActivityResponse{
		Message:  "Activity updated successfully",
		Activity: &activity,
	})
}

func SetActivityStatusHandler(c echo.Context) error {
	type setActivityStatusParams struct {
		ActivityID int64 `param:"id" validate:"required,numeric"`
	}

	type setActivityStatusBody struct {
		Status string `json:"status" validate:"required,oneof=open completed"`
	}

	type setActivityStatusResponse struct {
		Message  string           `json:"message"`
		Activity *db.CaseActivity `json:"activity,omitempty"`
	}

	params := new(setActivityStatusParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, setActivityStatusResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, setActivityStatusResponse{
			Message: "Invalid request params",
		})
	}

	data := new(setActivityStatusBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, setActivityStatusResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, setActivityStatusResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, setActivityStatusResponse{
			Message: "Unauthorized",
		})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	activity, err := q.SetActivityStatus(c.Request().Context(), db.SetActivityStatusParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ActivityID,
		Status:         data.Status,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, setActivityStatusResponse{
			Message: "Activity not found",
		})
	}

	return c.JSON(http.StatusOK, setActivityStatusResponse{
		Message:  "Activity updated successfully",
		Activity: &activity,
	})
}

func DeleteActivityHandler(c echo.Context) error {
	type deleteActivityParams struct {
		ActivityID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteActivityParams)
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

	if err := q.DeleteActivity(c.Request().Context(), db.GetActivityParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ActivityID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Activity deleted successfully"})
}
