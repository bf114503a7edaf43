package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

func GetCasesHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	res, err := q.ListCases(ctx, user.OrganizationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, res)
}

func GetCaseHandler(c echo.Context) error {
	type getCaseParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type getCaseResponse struct {
		Case     *db.Case         `json:"case,omitempty"`
		Services []db.CaseService `json:"services,omitempty"`
	}

	params := new(getCaseParams)
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

	caseRow, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Case not found"})
	}

	services, err := q.ListCaseServices(ctx, db.ListCaseServicesParams{
		OrganizationID: user.OrganizationID,
		CaseID:         caseRow.ID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, getCaseResponse{
		Case:     &caseRow,
		Services: services,
	})
}

func GetCaseTypesHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	res, err := q.ListCaseTypes(c.Request().Context(), user.OrganizationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, res)
}
