package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
)

// CreateCaseHandler opens a new case in the caller's organization.
func CreateCaseHandler(c echo.Context) error {
	type createCaseBody struct {
		CaseNumber  string  `json:"case_number" validate:"required"`
		Title       string  `json:"title" validate:"required"`
		Description *string `json:"description,omitempty"`
		CaseTypeID  *int64  `json:"case_type_id,omitempty"`
	}

	type createCaseResponse struct {
		Message string   `json:"message"`
		Case    *db.Case `json:"case,omitempty"`
	}

	data := new(createCaseBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCaseResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCaseResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createCaseResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	caseRow, err := q.CreateCase(ctx, db.CreateCaseParams{
		OrganizationID: user.OrganizationID,
		CaseNumber:     data.CaseNumber,
		Title:          data.Title,
		Description:    data.Description,
		CaseTypeID:     data.CaseTypeID,
		CreatedBy:      user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, createCaseResponse{
			Message: "Case number already in use",
		})
	}

	return c.JSON(http.StatusOK, createCaseResponse{
		Message: "Case created successfully",
		Case:    &caseRow,
	})
}

func AddCaseServiceHandler(c echo.Context) error {
	type addCaseServiceParams struct {
		CaseID int64 `param:"id" validate:"required,numeric"`
	}

	type addCaseServiceBody struct {
		Name      string `json:"name" validate:"required"`
		RateCents *int64 `json:"rate_cents,omitempty"`
	}

	type addCaseServiceResponse struct {
		Message string          `json:"message"`
		Service *db.CaseService `json:"service,omitempty"`
	}

	params := new(addCaseServiceParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, addCaseServiceResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, addCaseServiceResponse{
			Message: "Invalid request params",
		})
	}

	data := new(addCaseServiceBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, addCaseServiceResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, addCaseServiceResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, addCaseServiceResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if _, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: user.OrganizationID,
		ID:             params.CaseID,
	}); err != nil {
		return c.JSON(http.StatusNotFound, addCaseServiceResponse{
			Message: "Case not found",
		})
	}

	service, err := q.AddCaseService(ctx, db.AddCaseServiceParams{
		OrganizationID: user.OrganizationID,
		CaseID:         params.CaseID,
		Name:           data.Name,
		RateCents:      data.RateCents,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, addCaseServiceResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, addCaseServiceResponse{
		Message: "Service added successfully",
		Service: &service,
	})
}
