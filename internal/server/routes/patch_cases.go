package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/queue"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/pkg/logger"
)

func UpdateCaseHandler(c echo.Context) error {
	type updateCaseParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type updateCaseBody struct {
		Title       string  `json:"title" validate:"required"`
		Description *string `json:"description,omitempty"`
		CaseTypeID  *int64  `json:"case_type_id,omitempty"`
	}

	type updateCaseResponse struct {
		Message string   `json:"message"`
		Case    *db.Case `json:"case,omitempty"`
	}

	params := new(updateCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateCaseResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, updateCaseResponse{
			Message: "Invalid request params",
		})
	}

	data := new(updateCaseBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateCaseResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateCaseResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, updateCaseResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	caseRow, err := q.UpdateCase(ctx, db.UpdateCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
		Title:          data.Title,
		Description:    data.Description,
		CaseTypeID:     data.CaseTypeID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, updateCaseResponse{
			Message: "Case not found",
		})
	}

	return c.JSON(http.StatusOK, updateCaseResponse{
		Message: "Case updated successfully",
		Case:    &caseRow,
	})
}

// CloseCaseHandler closes a case and notifies whoever opened it.
func CloseCaseHandler(c echo.Context) error {
	type closeCaseParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type closeCaseResponse struct {
		Message string   `json:"message"`
		Case    *db.Case `json:"case,omitempty"`
	}

	params := new(closeCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, closeCaseResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, closeCaseResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, closeCaseResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	caseRow, err := q.CloseCase(ctx, db.CloseCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
		ClosedBy:       user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, closeCaseResponse{
			Message: "Case not found",
		})
	}

	if caseRow.CreatedBy != user.UserID {
		err = queue.PublishNotification(app.Queue, queue.NotificationEvent{
			OrganizationID: user.OrganizationID,
			UserID:         caseRow.CreatedBy,
			Type:           "case.closed",
			Title:          "Case " + caseRow.CaseNumber + " was closed",
			CaseID:         &caseRow.ID,
		})
		if err != nil {
			logger.Error("Failed to publish close notification", "case", caseRow.ID, "err", err)
		}
	}

	return c.JSON(http.StatusOK, closeCaseResponse{
		Message: "Case closed successfully",
		Case:    &caseRow,
	})
}

func ReopenCaseHandler(c echo.Context) error {
	type reopenCaseParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type reopenCaseResponse struct {
		Message string   `json:"message"`
		Case    *db.Case `json:"case,omitempty"`
	}

	params := new(reopenCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, reopenCaseResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, reopenCaseResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, reopenCaseResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	caseRow, err := q.ReopenCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, reopenCaseResponse{
			Message: "Case not found",
		})
	}

	return c.JSON(http.StatusOK, reopenCaseResponse{
		Message: "Case reopened successfully",
		Case:    &caseRow,
	})
}
