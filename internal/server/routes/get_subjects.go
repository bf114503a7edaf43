package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

func GetCaseSubjectsHandler(c echo.Context) error {
	type getCaseSubjectsParams struct {
		CaseID          int64 `param:"id" validate:"required,numeric"`
		IncludeArchived bool  `query:"include_archived"`
	}

	params := new(getCaseSubjectsParams)
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

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if _, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	}); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Case not found"})
	}

	subjects, err := q.ListSubjectsByCase(ctx, db.ListSubjectsByCaseParams{
		OrganizationID:  user.OrganizationID,
		CaseID:          params.CaseID,
		IncludeArchived: params.IncludeArchived,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, subjects)
}

func GetSubjectHandler(c echo.Context) error {
	type getSubjectParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getSubjectParams)
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

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	subject, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Subject not found"})
	}

	return c.JSON(http.StatusOK, subject)
}
