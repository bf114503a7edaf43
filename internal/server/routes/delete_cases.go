package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

func DeleteCaseHandler(c echo.Context) error {
	type deleteCaseParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteCaseParams)
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

	if err := q.DeleteCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Case deleted successfully"})
}

func DeleteCaseServiceHandler(c echo.Context) error {
	type deleteCaseServiceParams struct {
		ServiceID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteCaseServiceParams)
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

	if err := q.DeleteCaseService(ctx, db.DeleteCaseServiceParams{
		OrganizationID: user.OrganizationID,
		ID:             params.ServiceID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Service removed successfully"})
}
